package middleware

import (
	"castnet/internal/graphcache"

	"github.com/labstack/echo/v4"
)

// App holds the application-wide handles shared by every request.
type App struct {
	Graphs *graphcache.Cache
}

// AppContext wraps the echo context with the application handles.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware attaches the graph cache to every request context.
func AppContextMiddleware(graphs *graphcache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			app := &App{
				Graphs: graphs,
			}
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
