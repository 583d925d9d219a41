package main

import (
	"os"

	"castnet/internal/server"
	"castnet/internal/util"
	csvloader "castnet/pkg/loader/csv"
	"castnet/pkg/logger"
	"castnet/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	path := util.GetEnvString("COAPPEARANCE_FILE", "coappearance_list.csv")
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("Failed to read co-appearance file", "path", path, "err", err)
	}

	records, err := csvloader.ParseTable(content)
	if err != nil {
		logger.Fatal("Failed to parse co-appearance file", "path", path, "err", err)
	}

	logger.Info("Loaded co-appearance records", "count", len(records), "path", path)

	server.Init(records)
}
