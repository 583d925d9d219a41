package routes

import (
	"net/http"

	"castnet/internal/server/middleware"
	"castnet/pkg/graph"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// GetTopPairsHandler ranks character pairs by shared scene count at the
// requested threshold.
func GetTopPairsHandler(c echo.Context) error {
	type topPairsQuery struct {
		MinScenes int `query:"min_scenes" validate:"omitempty,oneof=1 10 30 50 100"`
		Limit     int `query:"limit" validate:"omitempty,gte=1,lte=20"`
	}

	type topPairsResponse struct {
		Message string       `json:"message,omitempty"`
		Pairs   []graph.Pair `json:"pairs,omitempty"`
	}

	query := new(topPairsQuery)
	if err := c.Bind(query); err != nil {
		return c.JSON(http.StatusBadRequest, topPairsResponse{
			Message: "Invalid query parameters",
		})
	}
	if err := c.Validate(query); err != nil {
		return c.JSON(http.StatusBadRequest, topPairsResponse{
			Message: "Invalid query parameters",
		})
	}
	if query.MinScenes == 0 {
		query.MinScenes = defaultMinScenes
	}
	if query.Limit == 0 {
		query.Limit = defaultLimit
	}

	graphs := c.(*middleware.AppContext).App.Graphs
	g := graphs.Get(query.MinScenes)

	return c.JSON(http.StatusOK, topPairsResponse{
		Pairs: g.TopPairs(query.Limit),
	})
}
