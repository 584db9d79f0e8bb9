package main

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// timetablePDF renders the generated plan as an A4 document, either the
// flat entry table or the weekly grid.
func timetablePDF(req PlanRequest, entries []TimetableEntry, grid *WeeklyGrid) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)

	pdf.Cell(0, 10, "Study Plan")
	pdf.Ln(15)

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = "Study"
	}

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Subject: %s", subject))
	pdf.Ln(6)
	if strings.TrimSpace(req.Topics) != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Topics: %s", req.Topics))
		pdf.Ln(6)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Plan type: %s", req.PlanType))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Generated at: %s", time.Now().Format("02/01/2006 15:04")))
	pdf.Ln(15)

	if grid != nil {
		writeGridPDF(pdf, grid)
	} else {
		writeEntriesPDF(pdf, entries)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %v", err)
	}
	return buf.Bytes(), nil
}

func writeEntriesPDF(pdf *gofpdf.Fpdf, entries []TimetableEntry) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(40, 8, "Period", "1", 0, "", false, 0, "")
	pdf.CellFormat(45, 8, "Time", "1", 0, "", false, 0, "")
	pdf.CellFormat(105, 8, "Activity", "1", 1, "", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, e := range entries {
		pdf.CellFormat(40, 8, e.Period, "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 8, e.Time, "1", 0, "", false, 0, "")
		pdf.CellFormat(105, 8, e.Activity, "1", 1, "", false, 0, "")
	}
}

func writeGridPDF(pdf *gofpdf.Fpdf, grid *WeeklyGrid) {
	dayWidth := 160.0 / float64(len(grid.Days))

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(30, 8, "Time", "1", 0, "", false, 0, "")
	for i, day := range grid.Days {
		ln := 0
		if i == len(grid.Days)-1 {
			ln = 1
		}
		pdf.CellFormat(dayWidth, 8, day, "1", ln, "C", false, 0, "")
	}

	pdf.SetFont("Arial", "", 9)
	for _, row := range grid.Rows {
		pdf.CellFormat(30, 8, row.Time, "1", 0, "", false, 0, "")
		for i, day := range grid.Days {
			ln := 0
			if i == len(grid.Days)-1 {
				ln = 1
			}
			pdf.CellFormat(dayWidth, 8, row.Cells[day], "1", ln, "C", false, 0, "")
		}
	}
}
