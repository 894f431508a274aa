package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/quiz-session-service/internal/models"
	"github.com/xuri/excelize/v2"
)

const resultsSheet = "Results"

var resultHeaders = []string{
	"#", "Question", "Difficulty", "Your Answer", "Correct Answer", "Result", "Explanation",
}

type exportService struct {
	sessions SessionService
	logger   *slog.Logger
}

func NewExportService(sessions SessionService, logger *slog.Logger) ExportService {
	return &exportService{
		sessions: sessions,
		logger:   logger,
	}
}

// ExportResult renders a completed session's breakdown as an xlsx workbook.
func (s *exportService) ExportResult(ctx context.Context, id string) ([]byte, error) {
	result, err := s.sessions.Result(ctx, id)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet rather than leaving an empty Sheet1 behind
	if err := f.SetSheetName(f.GetSheetName(0), resultsSheet); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	// Summary block
	title := result.Title
	if title == "" {
		title = "Quiz results"
	}
	summary := [][]interface{}{
		{"Quiz", title},
		{"Score", fmt.Sprintf("%d / %d", result.Score.CorrectCount, result.Score.Total)},
		{"Percentage", result.Score.Percentage},
		{"Feedback", result.TierStyle.Message},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(resultsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write summary: %w", err)
		}
	}

	headerRow := len(summary) + 2
	cell, _ := excelize.CoordinatesToCellName(1, headerRow)
	if err := f.SetSheetRow(resultsSheet, cell, &resultHeaders); err != nil {
		return nil, fmt.Errorf("failed to write headers: %w", err)
	}

	for i, item := range result.Breakdown {
		row := breakdownRow(item)
		cell, _ := excelize.CoordinatesToCellName(1, headerRow+1+i)
		if err := f.SetSheetRow(resultsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write breakdown row %d: %w", i+1, err)
		}
	}

	if err := s.styleHeader(f, headerRow); err != nil {
		// Styling is cosmetic; keep the export.
		s.logger.Warn("Failed to style results header", "session_id", id, "error", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Exported quiz result",
		"session_id", id,
		"questions", len(result.Breakdown),
		"bytes", buf.Len())

	return buf.Bytes(), nil
}

func breakdownRow(item models.BreakdownItem) []interface{} {
	outcome := "Incorrect"
	if item.IsCorrect {
		outcome = "Correct"
	}
	return []interface{}{
		item.Index + 1,
		item.QuestionText,
		item.Difficulty.Style().Label,
		item.UserAnswer,
		item.CorrectAnswer,
		outcome,
		item.Explanation,
	}
}

func (s *exportService) styleHeader(f *excelize.File, row int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	start, _ := excelize.CoordinatesToCellName(1, row)
	end, _ := excelize.CoordinatesToCellName(len(resultHeaders), row)
	if err := f.SetCellStyle(resultsSheet, start, end, style); err != nil {
		return err
	}
	return f.SetColWidth(resultsSheet, "B", "B", 60)
}
