package routes

import (
	"net/http"

	"castnet/internal/server/middleware"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// GetCharactersHandler lists every character in the graph at the requested
// threshold, sorted alphabetically.
func GetCharactersHandler(c echo.Context) error {
	type charactersQuery struct {
		MinScenes int `query:"min_scenes" validate:"omitempty,oneof=1 10 30 50 100"`
	}

	type charactersResponse struct {
		Message    string   `json:"message,omitempty"`
		Characters []string `json:"characters,omitempty"`
	}

	query := new(charactersQuery)
	if err := c.Bind(query); err != nil {
		return c.JSON(http.StatusBadRequest, charactersResponse{
			Message: "Invalid query parameters",
		})
	}
	if err := c.Validate(query); err != nil {
		return c.JSON(http.StatusBadRequest, charactersResponse{
			Message: "Invalid query parameters",
		})
	}
	if query.MinScenes == 0 {
		query.MinScenes = defaultMinScenes
	}

	graphs := c.(*middleware.AppContext).App.Graphs
	g := graphs.Get(query.MinScenes)

	return c.JSON(http.StatusOK, charactersResponse{
		Characters: g.Characters(),
	})
}
