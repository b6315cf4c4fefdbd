package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	convRepo "eduassist/pkg/doubt/repository"
	modRepo "eduassist/pkg/module/repository"
	"eduassist/pkg/report/serviceImp"
)

type ReportCtrl struct {
	modules       modRepo.ModuleRepository
	conversations convRepo.ConversationRepository
}

func New(m modRepo.ModuleRepository, c convRepo.ConversationRepository) *ReportCtrl {
	return &ReportCtrl{modules: m, conversations: c}
}

// History streams the module's Q/A history as an XLSX download.
func (h *ReportCtrl) History(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := h.modules.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "module not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	convs, err := h.conversations.ListByModule(m.ModuleID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	buf, err := serviceImp.BuildHistoryWorkbook(m, convs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	name := fmt.Sprintf("module_%d_history.xlsx", m.ModuleID)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, name))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
