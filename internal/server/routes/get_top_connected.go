package routes

import (
	"net/http"

	"castnet/internal/server/middleware"
	"castnet/pkg/graph"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// GetTopConnectedHandler ranks characters by their number of distinct
// co-characters at the requested threshold.
func GetTopConnectedHandler(c echo.Context) error {
	type topConnectedQuery struct {
		MinScenes int `query:"min_scenes" validate:"omitempty,oneof=1 10 30 50 100"`
		Limit     int `query:"limit" validate:"omitempty,gte=1,lte=20"`
	}

	type topConnectedResponse struct {
		Message    string             `json:"message,omitempty"`
		Characters []graph.Connection `json:"characters,omitempty"`
	}

	query := new(topConnectedQuery)
	if err := c.Bind(query); err != nil {
		return c.JSON(http.StatusBadRequest, topConnectedResponse{
			Message: "Invalid query parameters",
		})
	}
	if err := c.Validate(query); err != nil {
		return c.JSON(http.StatusBadRequest, topConnectedResponse{
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

	return c.JSON(http.StatusOK, topConnectedResponse{
		Characters: g.TopConnected(query.Limit),
	})
}
