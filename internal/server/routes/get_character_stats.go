package routes

import (
	"errors"
	"net/http"

	"castnet/internal/server/middleware"
	"castnet/pkg/graph"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// GetCharacterStatsHandler returns a single character's aggregate stats at
// the requested threshold.
func GetCharacterStatsHandler(c echo.Context) error {
	type statsQuery struct {
		MinScenes int `query:"min_scenes" validate:"omitempty,oneof=1 10 30 50 100"`
	}

	type statsResponse struct {
		Message string       `json:"message,omitempty"`
		Stats   *graph.Stats `json:"stats,omitempty"`
	}

	name := c.Param("name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, statsResponse{
			Message: "Missing character name",
		})
	}

	query := new(statsQuery)
	if err := c.Bind(query); err != nil {
		return c.JSON(http.StatusBadRequest, statsResponse{
			Message: "Invalid query parameters",
		})
	}
	if err := c.Validate(query); err != nil {
		return c.JSON(http.StatusBadRequest, statsResponse{
			Message: "Invalid query parameters",
		})
	}
	if query.MinScenes == 0 {
		query.MinScenes = defaultMinScenes
	}

	graphs := c.(*middleware.AppContext).App.Graphs
	g := graphs.Get(query.MinScenes)

	stats, err := g.CharacterStats(name)
	if err != nil {
		if errors.Is(err, graph.ErrNotFound) {
			return c.JSON(http.StatusNotFound, statsResponse{
				Message: "Character has no connections at this threshold",
			})
		}
		return c.JSON(http.StatusInternalServerError, statsResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, statsResponse{
		Stats: &stats,
	})
}
