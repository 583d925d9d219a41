package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"castnet/internal/util"
	"castnet/pkg/logger"
	"castnet/pkg/logger/console"
	"castnet/pkg/script"
)

func main() {
	output := flag.String("o", "episodes.json", "path for the episode JSON snapshot")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-o episodes.json] <transcript>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	path := flag.Arg(0)
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("Failed to read transcript", "path", path, "err", err)
	}

	result := script.Segment(string(content))

	logger.Info("Segmented transcript", "episodes", len(result.Episodes), "scenes", len(result.Scenes))
	for _, code := range result.Order {
		episode := result.Episodes[code]
		logger.Info(fmt.Sprintf("%s: %s (%d scenes)", code, episode.Title, len(episode.Scenes)))
	}

	snapshot, err := json.MarshalIndent(result.Episodes, "", "  ")
	if err != nil {
		logger.Fatal("Failed to encode episode snapshot", "err", err)
	}

	if err := os.WriteFile(*output, snapshot, 0o644); err != nil {
		logger.Fatal("Failed to write episode snapshot", "path", *output, "err", err)
	}

	logger.Info("Wrote episode snapshot", "path", *output)
}
