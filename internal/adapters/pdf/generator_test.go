package pdf_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/employee-directory/internal/adapters/pdf"
	"github.com/csg33k/employee-directory/internal/domain"
)

func TestExport_WritesPDF(t *testing.T) {
	employees := []domain.Employee{
		{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com", Gender: "Female", Department: "Engineering"},
		{ID: 3, Name: strings.Repeat("Very Long Name ", 10), Email: "long@example.com", Gender: "Other", Department: "Human Resources"},
	}
	var buf bytes.Buffer
	g := pdf.New()
	require.NoError(t, g.Export(context.Background(), employees, &buf))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "missing PDF magic")
	assert.True(t, bytes.Contains(out, []byte("%%EOF")), "missing PDF trailer")
	assert.Equal(t, "application/pdf", g.ContentType())
	assert.Equal(t, "pdf", g.Extension())
}

func TestExport_EmptyDirectory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pdf.New().Export(context.Background(), nil, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestExport_ManyRowsPaginate(t *testing.T) {
	employees := make([]domain.Employee, 120)
	for i := range employees {
		employees[i] = domain.Employee{ID: int64(i + 1), Name: "E", Email: "e@example.com", Gender: "Male", Department: "Sales"}
	}
	var buf bytes.Buffer
	require.NoError(t, pdf.New().Export(context.Background(), employees, &buf))
	out := buf.Bytes()
	pages := bytes.Count(out, []byte("/Type /Page")) - bytes.Count(out, []byte("/Type /Pages"))
	assert.Greater(t, pages, 1)
}

func TestExport_AccentedLongName(t *testing.T) {
	employees := []domain.Employee{
		{ID: 1, Name: strings.Repeat("José Müller ", 10), Email: "jose@example.com", Gender: "Male", Department: "Finance"},
	}
	var buf bytes.Buffer
	require.NoError(t, pdf.New().Export(context.Background(), employees, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
