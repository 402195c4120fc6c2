// Package table renders the employee directory as a plain-text table.
package table

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/csg33k/employee-directory/internal/domain"
)

var header = []string{"#", "Name", "Email", "Gender", "Department"}

// Exporter implements ports.DirectoryExporter.
type Exporter struct{}

func New() *Exporter { return &Exporter{} }

func (Exporter) ContentType() string { return "text/plain; charset=utf-8" }
func (Exporter) Extension() string   { return "txt" }

func (Exporter) Export(_ context.Context, employees []domain.Employee, w io.Writer) error {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoWrapText(false)
	for i, e := range employees {
		t.Append([]string{strconv.Itoa(i + 1), e.Name, e.Email, e.Gender, e.Department})
	}
	if len(employees) == 0 {
		t.Append([]string{"", "No employees added yet.", "", "", ""})
	}
	t.Render()
	if _, err := fmt.Fprintf(w, "%d employee(s)\n", len(employees)); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
