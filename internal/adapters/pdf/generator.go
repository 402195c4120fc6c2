// Package pdf renders the employee directory as a printable PDF report.
// Every page repeats the title bar and column header; rows follow in
// directory order with their 1-based position.
package pdf

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/employee-directory/internal/domain"
)

// column widths in mm, summing to the Letter content width (215.9 - 2*18).
var columns = []struct {
	title string
	width float64
}{
	{"#", 10},
	{"NAME", 42},
	{"EMAIL", 52},
	{"GENDER", 20},
	{"DEPARTMENT", 55.9},
}

const rowH = 7

// Generator implements ports.DirectoryExporter.
type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

func (g *Generator) ContentType() string { return "application/pdf" }
func (g *Generator) Extension() string   { return "pdf" }

// Export writes the report for employees to w.
func (g *Generator) Export(_ context.Context, employees []domain.Employee, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("{nb}")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	generated := g.now().Format("2006-01-02 15:04")

	pdf.SetHeaderFunc(func() {
		drawHeader(pdf, generated)
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 9)
	if len(employees) == 0 {
		pdf.CellFormat(contentWidth(), rowH, "No employees added yet.", "1", 1, "C", false, 0, "")
	}
	for i, e := range employees {
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		cells := []string{fmt.Sprint(i + 1), tr(e.Name), tr(e.Email), tr(e.Gender), tr(e.Department)}
		for c, col := range columns {
			pdf.CellFormat(col.width, rowH, fit(pdf, cells[c], col.width), "LR", 0, "L", fill, 0, "")
		}
		pdf.Ln(rowH)
	}
	// close the table
	pdf.CellFormat(contentWidth(), 0, "", "T", 1, "L", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentWidth(), 5, fmt.Sprintf("%d employee(s)", len(employees)), "", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func drawHeader(pdf *fpdf.Fpdf, generated string) {
	marginL, marginT, _, _ := pdf.GetMargins()
	w := contentWidth()

	// ── Title bar ────────────────────────────────────────────────────────────
	pdf.SetFillColor(30, 30, 30)
	pdf.Rect(marginL, marginT, w, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginL+2, marginT+1.5)
	pdf.CellFormat(w-4-40, 7, "EMPLOYEE DIRECTORY", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(40, 7, "Page "+fmt.Sprint(pdf.PageNo())+" of {nb}", "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetXY(marginL, marginT+11)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(w, 5, "Generated "+generated, "", 1, "R", false, 0, "")

	// ── Column header ────────────────────────────────────────────────────────
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 8)
	for _, col := range columns {
		pdf.CellFormat(col.width, rowH, col.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(rowH)
	pdf.SetFont("Helvetica", "", 9)
}

func contentWidth() float64 {
	var w float64
	for _, c := range columns {
		w += c.width
	}
	return w
}

// fit truncates s with an ellipsis so it stays inside a cell of width w.
// s is already cp1252-encoded, one byte per glyph, so the cut is made on a
// byte boundary and the prefix is measured as it grows.
func fit(pdf *fpdf.Fpdf, s string, w float64) string {
	const pad = 2
	const ellipsis = "..."
	if pdf.GetStringWidth(s) <= w-pad {
		return s
	}
	limit := w - pad - pdf.GetStringWidth(ellipsis)
	var used float64
	for i := 0; i < len(s); i++ {
		used += pdf.GetStringWidth(s[i : i+1])
		if used > limit {
			return s[:i] + ellipsis
		}
	}
	return s
}
