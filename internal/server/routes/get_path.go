package routes

import (
	"errors"
	"net/http"

	"castnet/internal/server/middleware"
	"castnet/pkg/graph"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// GetPathHandler finds how two characters are connected through others. A
// missing character is a 404; two valid characters in different components
// are a normal "no connection" answer.
func GetPathHandler(c echo.Context) error {
	type pathQuery struct {
		MinScenes int    `query:"min_scenes" validate:"omitempty,oneof=1 10 30 50 100"`
		From      string `query:"from" validate:"required"`
		To        string `query:"to" validate:"required"`
	}

	type pathResponse struct {
		Message string   `json:"message,omitempty"`
		Found   bool     `json:"found"`
		Path    []string `json:"path,omitempty"`
	}

	query := new(pathQuery)
	if err := c.Bind(query); err != nil {
		return c.JSON(http.StatusBadRequest, pathResponse{
			Message: "Invalid query parameters",
		})
	}
	if err := c.Validate(query); err != nil {
		return c.JSON(http.StatusBadRequest, pathResponse{
			Message: "Invalid query parameters",
		})
	}
	if query.MinScenes == 0 {
		query.MinScenes = defaultMinScenes
	}

	graphs := c.(*middleware.AppContext).App.Graphs
	g := graphs.Get(query.MinScenes)

	path, err := g.ShortestPath(query.From, query.To)
	if err != nil {
		if errors.Is(err, graph.ErrNotFound) {
			return c.JSON(http.StatusNotFound, pathResponse{
				Message: "Unknown character selected",
			})
		}
		return c.JSON(http.StatusInternalServerError, pathResponse{
			Message: "Internal server error",
		})
	}

	if path == nil {
		return c.JSON(http.StatusOK, pathResponse{
			Message: "No connection path exists",
		})
	}

	return c.JSON(http.StatusOK, pathResponse{
		Found: true,
		Path:  path,
	})
}
