// Package export writes the audit log to spreadsheet formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/example/sacis/internal/models"
)

// Format names an export file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (must be xlsx or csv)", s)
	}
}

// LogHeader is the column order of every export.
var LogHeader = []string{"ID", "Created At", "Event Type", "Details", "Created By"}

const logSheet = "Audit Log"

// WriteLogs writes entries to w in the given format.
func WriteLogs(w io.Writer, format Format, entries []*models.LogEntry) error {
	switch format {
	case FormatXLSX:
		return WriteLogsXLSX(w, entries)
	case FormatCSV:
		return WriteLogsCSV(w, entries)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteLogsCSV writes entries as RFC 4180 CSV with a header row.
func WriteLogsCSV(w io.Writer, entries []*models.LogEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(LogHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write(logRecord(e)); err != nil {
			return fmt.Errorf("failed to write log entry %d: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteLogsXLSX writes entries to a single-sheet workbook with a frozen,
// styled header row.
func WriteLogsXLSX(w io.Writer, entries []*models.LogEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(logSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range LogHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(logSheet, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(logSheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}

	widths := []float64{8, 22, 20, 60, 12}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(logSheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		row := []any{e.ID, formatTime(e.CreatedAt), e.EventType, e.Details, formatActor(e.CreatedBy)}
		if err := f.SetSheetRow(logSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write log entry %d: %w", e.ID, err)
		}
	}

	if err := f.SetPanes(logSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func logRecord(e *models.LogEntry) []string {
	return []string{
		strconv.FormatInt(e.ID, 10),
		formatTime(e.CreatedAt),
		e.EventType,
		e.Details,
		formatActor(e.CreatedBy),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}

func formatActor(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
