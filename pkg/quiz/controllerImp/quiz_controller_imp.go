package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"eduassist/pkg/ai"
	modRepo "eduassist/pkg/module/repository"
)

type QuizCtrl struct {
	modules modRepo.ModuleRepository
	llm     ai.Client
}

func New(modules modRepo.ModuleRepository, llm ai.Client) *QuizCtrl {
	return &QuizCtrl{modules: modules, llm: llm}
}

func (h *QuizCtrl) Generate(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := h.modules.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "module not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	count := 5
	if v := c.QueryParam("count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			count = n
		}
	}
	if count < 1 {
		count = 1
	}
	if count > 20 {
		count = 20
	}

	mcqs := h.llm.GenerateMCQs(c.Request().Context(), m.ContentText, count)
	return c.JSON(http.StatusOK, map[string]any{"module_id": m.ModuleID, "mcqs": mcqs})
}
