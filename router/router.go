package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	moduleCtrl interface {
		Upload(echo.Context) error
		IngestURL(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Delete(echo.Context) error
	},
	doubtCtrl interface {
		Ask(echo.Context) error
		History(echo.Context) error
	},
	quizGenerate func(echo.Context) error,
	reportHistory func(echo.Context) error,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	api := e.Group("/api")

	api.GET("/health", healthCtrl.Health)

	api.POST("/upload", moduleCtrl.Upload)
	api.POST("/modules/ingest-url", moduleCtrl.IngestURL)
	api.GET("/modules", moduleCtrl.List)
	api.GET("/modules/:id", moduleCtrl.Get)
	api.DELETE("/modules/:id", moduleCtrl.Delete)

	api.POST("/ask", doubtCtrl.Ask)
	api.GET("/conversations/:id", doubtCtrl.History)

	api.POST("/quiz/:id", quizGenerate)
	api.GET("/modules/:id/report", reportHistory)

	return e
}
