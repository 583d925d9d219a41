package routes

// Threshold and limit defaults mirror the dashboard controls: connections
// below min_scenes shared scenes are hidden, and top-N lists are bounded.
const (
	defaultMinScenes = 50
	defaultLimit     = 5
)
