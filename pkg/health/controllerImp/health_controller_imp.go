package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if sqlDB, err := h.db.DB(); err != nil {
		dbOK, dbErr = false, "db.DB(): "+err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbOK, dbErr = false, "ping: "+err.Error()
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]any{
		"status":     "ok",
		"message":    "Educational Content Assistant API running",
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": map[string]any{"ok": dbOK, "err": dbErr},
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
