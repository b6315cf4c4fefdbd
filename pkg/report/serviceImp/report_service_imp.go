package serviceImp

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"eduassist/entities"
)

const sheet = "Conversations"

// BuildHistoryWorkbook renders a module's conversation history as an
// XLSX workbook, one row per exchange.
func BuildHistoryWorkbook(m *entities.Module, convs []entities.Conversation) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []any{"#", "Asked At", "Question", "Answer"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}
	f.SetCellValue(sheet, "F1", "Module")
	f.SetCellValue(sheet, "G1", m.ModuleName)

	for i, cv := range convs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{i + 1, cv.CreatedAt.Format(time.RFC3339), cv.Question, cv.Answer}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return &buf, nil
}
