package table_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/employee-directory/internal/adapters/table"
	"github.com/csg33k/employee-directory/internal/domain"
)

func TestExport_RowsInOrder(t *testing.T) {
	employees := []domain.Employee{
		{ID: 7, Name: "Alice", Email: "alice@example.com", Gender: "Female", Department: "Finance"},
		{ID: 9, Name: "Bob", Email: "bob@example.com", Gender: "Male", Department: "Sales"},
	}
	var buf bytes.Buffer
	require.NoError(t, table.New().Export(context.Background(), employees, &buf))
	out := buf.String()

	assert.Contains(t, out, "EMAIL")
	alice := strings.Index(out, "alice@example.com")
	bob := strings.Index(out, "bob@example.com")
	require.NotEqual(t, -1, alice)
	require.NotEqual(t, -1, bob)
	assert.Less(t, alice, bob)

	// positions, not ids
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Alice") {
			assert.Contains(t, line, "| 1 ")
		}
		if strings.Contains(line, "Bob") {
			assert.Contains(t, line, "| 2 ")
		}
	}
	assert.True(t, strings.HasSuffix(out, "2 employee(s)\n"))
}

func TestExport_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, table.New().Export(context.Background(), nil, &buf))
	assert.Contains(t, buf.String(), "No employees added yet.")
	assert.True(t, strings.HasSuffix(buf.String(), "0 employee(s)\n"))
}
