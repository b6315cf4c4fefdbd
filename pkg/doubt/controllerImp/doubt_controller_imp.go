package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"eduassist/pkg/doubt/serviceImp"
)

type DoubtCtrl struct{ svc *serviceImp.AskService }

func New(svc *serviceImp.AskService) *DoubtCtrl { return &DoubtCtrl{svc} }

type askReq struct {
	ModuleID uint   `json:"module_id"`
	Question string `json:"question"`
}

func (h *DoubtCtrl) Ask(c echo.Context) error {
	var req askReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.ModuleID == 0 || req.Question == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing module_id or question"})
	}

	cv, err := h.svc.Ask(c.Request().Context(), req.ModuleID, req.Question)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "module not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"question": cv.Question,
		"answer":   cv.Answer,
	})
}

func (h *DoubtCtrl) History(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	cs, err := h.svc.History(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "module not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"conversations": cs})
}
