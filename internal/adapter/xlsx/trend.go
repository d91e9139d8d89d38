// Package xlsx renders a user's BMI trend as a spreadsheet with line charts.
package xlsx

import (
	"errors"
	"fmt"
	"io"

	"bmitracker/internal/app"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the history table.
const SheetName = "History"

// TimeFormat is how timestamps appear in the history table.
const TimeFormat = "2006-01-02 15:04"

// Header is the history table's first row. Threshold columns follow it.
var Header = []string{"Date/Time", "Weight (kg)", "Height (m)", "BMI", "Category"}

// WriteTrend writes t as an .xlsx workbook to w: one history table, a BMI
// chart with the category thresholds, and a weight chart.
func WriteTrend(w io.Writer, t *app.Trend) error {
	if t == nil || len(t.Points) == 0 {
		return errors.New("xlsx: trend has no points")
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("xlsx: rename sheet: %w", err)
	}

	if err := writeHeader(f, t.Thresholds); err != nil {
		return err
	}
	for i, p := range t.Points {
		row := []any{p.Timestamp.Local().Format(TimeFormat), p.WeightKg, p.HeightM, p.BMI, string(p.Category)}
		for _, th := range t.Thresholds {
			row = append(row, th.Value)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("xlsx: write row %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", "A", 18); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	if err := f.SetColWidth(SheetName, "E", "E", 15); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	lastRow := len(t.Points) + 1
	if err := f.AddChart(SheetName, chartAnchor(len(t.Thresholds), 2), bmiChart(t, lastRow)); err != nil {
		return fmt.Errorf("xlsx: add bmi chart: %w", err)
	}
	if err := f.AddChart(SheetName, chartAnchor(len(t.Thresholds), 20), weightChart(t, lastRow)); err != nil {
		return fmt.Errorf("xlsx: add weight chart: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: write workbook: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, thresholds []app.Threshold) error {
	header := make([]any, 0, len(Header)+len(thresholds))
	for _, h := range Header {
		header = append(header, h)
	}
	for _, th := range thresholds {
		header = append(header, th.Label)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("xlsx: header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", last, style); err != nil {
		return fmt.Errorf("xlsx: header style: %w", err)
	}
	return nil
}

// column returns the absolute range of column col (1-based) over data rows.
func column(col, lastRow int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return fmt.Sprintf("%s!$%s$2:$%s$%d", SheetName, name, name, lastRow)
}

func headerRef(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return fmt.Sprintf("%s!$%s$1", SheetName, name)
}

func chartAnchor(thresholds, row int) string {
	cell, _ := excelize.CoordinatesToCellName(len(Header)+thresholds+2, row)
	return cell
}

func bmiChart(t *app.Trend, lastRow int) *excelize.Chart {
	categories := column(1, lastRow)
	series := []excelize.ChartSeries{{
		Name:       headerRef(4),
		Categories: categories,
		Values:     column(4, lastRow),
		Marker:     excelize.ChartMarker{Symbol: "circle", Size: 5},
	}}
	for i := range t.Thresholds {
		col := len(Header) + i + 1
		series = append(series, excelize.ChartSeries{
			Name:       headerRef(col),
			Categories: categories,
			Values:     column(col, lastRow),
			Marker:     excelize.ChartMarker{Symbol: "none"},
		})
	}
	return &excelize.Chart{
		Type:      excelize.Line,
		Series:    series,
		Title:     []excelize.RichTextRun{{Text: "BMI Trend for " + t.UserID}},
		Legend:    excelize.ChartLegend{Position: "bottom"},
		YAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "BMI"}}},
		Dimension: excelize.ChartDimension{Width: 640, Height: 320},
	}
}

func weightChart(t *app.Trend, lastRow int) *excelize.Chart {
	return &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       headerRef(2),
			Categories: column(1, lastRow),
			Values:     column(2, lastRow),
			Marker:     excelize.ChartMarker{Symbol: "circle", Size: 5},
		}},
		Title:     []excelize.RichTextRun{{Text: "Weight Trend for " + t.UserID}},
		Legend:    excelize.ChartLegend{Position: "none"},
		YAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Weight (kg)"}}},
		Dimension: excelize.ChartDimension{Width: 640, Height: 320},
	}
}
