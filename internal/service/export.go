package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/templui/studytracker/internal/model"
	"github.com/templui/studytracker/internal/progress"
)

var ErrUnknownFormat = errors.New("unknown export format")

type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatXLSX ExportFormat = "xlsx"
)

const exportSheet = "Subjects"

func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f ExportFormat) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/json"
}

func (f ExportFormat) Filename() string {
	return "subjects-export." + string(f)
}

// ExportService writes the subject collection as a download.
type ExportService struct {
	subjects *SubjectService
}

func NewExportService(subjects *SubjectService) *ExportService {
	return &ExportService{subjects: subjects}
}

func (s *ExportService) Export(ctx context.Context, w io.Writer, format ExportFormat) error {
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list subjects for export: %w", err)
	}

	switch format {
	case FormatJSON:
		return writeJSON(w, subjects)
	case FormatXLSX:
		return writeXLSX(w, subjects)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// writeJSON uses the persisted record shape.
func writeJSON(w io.Writer, subjects []model.Subject) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(subjects)
}

func writeXLSX(w io.Writer, subjects []model.Subject) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	err := f.SetSheetName("Sheet1", exportSheet)
	if err != nil {
		return err
	}

	headers := []any{"Subject", "Hours studied", "Goal", "Progress (%)", "Complete"}
	err = f.SetSheetRow(exportSheet, "A1", &headers)
	if err != nil {
		return err
	}

	for i, subject := range subjects {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			subject.Subject,
			subject.HoursStudied.Float(),
			subject.Goal.Float(),
			progress.Percent(subject),
			progress.IsComplete(subject),
		}
		err = f.SetSheetRow(exportSheet, cell, &row)
		if err != nil {
			return err
		}
	}

	total, err := excelize.CoordinatesToCellName(1, len(subjects)+3)
	if err != nil {
		return err
	}
	totalRow := []any{"Total", progress.TotalHours(subjects).Float()}
	err = f.SetSheetRow(exportSheet, total, &totalRow)
	if err != nil {
		return err
	}

	return f.Write(w)
}
