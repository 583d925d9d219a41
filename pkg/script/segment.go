package script

import (
	"regexp"
	"strings"
)

const (
	sceneOpenMarker  = "==="
	sceneCloseMarker = "---"
)

// episodePattern matches episode header lines such as "1x02 The Bicycle
// Thief". The match is anchored at the start of the trimmed line; the
// remainder after the season/episode digits is the title.
var episodePattern = regexp.MustCompile(`^(\d+)x(\d+)\s*(.*)`)

// Episode holds one episode's title and its scenes in encounter order.
type Episode struct {
	Title  string   `json:"title"`
	Scenes []string `json:"scenes"`
}

// Scene is one committed scene together with the episode context that was
// active when its closing marker was reached.
type Scene struct {
	Episode string `json:"episode"`
	Title   string `json:"title"`
	Scene   string `json:"scene"`
}

// Result is the output of segmenting a transcript.
type Result struct {
	// Episodes maps episode codes (e.g. "S1E02") to their scenes.
	Episodes map[string]*Episode
	// Order lists episode codes in first-seen order.
	Order []string
	// Scenes lists every committed scene in encounter order.
	Scenes []Scene
}

// Segment splits a raw transcript into scenes and groups them by episode.
//
// A trimmed line starting with "===" and containing the word "Scene" opens a
// scene; a line starting with "---" closes it. Lines inside a scene are
// buffered verbatim (the opening marker included) and, once the scene closes,
// joined by newlines and committed to the episode that is active at that
// moment. Episode header lines ("1x02 Title") inside a scene switch the
// active episode without touching scene boundaries; the first title seen for
// an episode code is kept even if a later header repeats the code with
// different text. A scene closed before any episode header has been seen is
// dropped, as is a scene still open when the input ends.
func Segment(text string) *Result {
	result := &Result{
		Episodes: make(map[string]*Episode),
	}

	var (
		sceneBuffer    []string
		inScene        bool
		currentEpisode string
		currentTitle   string
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		// An opening marker starts a fresh buffer even when a previous
		// scene never closed.
		if strings.HasPrefix(line, sceneOpenMarker) && strings.Contains(line, "Scene") {
			inScene = true
			sceneBuffer = []string{line}
			continue
		}

		if inScene && strings.HasPrefix(line, sceneCloseMarker) {
			inScene = false
			if len(sceneBuffer) > 0 && currentEpisode != "" {
				content := strings.Join(sceneBuffer, "\n")
				episode := result.Episodes[currentEpisode]
				episode.Scenes = append(episode.Scenes, content)
				result.Scenes = append(result.Scenes, Scene{
					Episode: currentEpisode,
					Title:   currentTitle,
					Scene:   content,
				})
			}
			sceneBuffer = nil
			continue
		}

		if !inScene {
			continue
		}

		sceneBuffer = append(sceneBuffer, line)

		match := episodePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		season, number, title := match[1], match[2], strings.TrimSpace(match[3])
		code := "S" + season + "E" + zeroPad(number, 2)
		currentEpisode = code
		currentTitle = title

		if _, ok := result.Episodes[code]; !ok {
			result.Episodes[code] = &Episode{Title: title}
			result.Order = append(result.Order, code)
		}
	}

	return result
}

// zeroPad left-pads digits with zeros to at least the given width.
func zeroPad(digits string, width int) string {
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}
