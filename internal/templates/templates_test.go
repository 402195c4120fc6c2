package templates_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/employee-directory/internal/domain"
	"github.com/csg33k/employee-directory/internal/templates"
)

func TestIndex_EscapesUserInput(t *testing.T) {
	var buf bytes.Buffer
	data := templates.ManagerData{
		Form: domain.NewEmployeeForm(),
		Employees: []domain.Employee{
			{ID: 4, Name: "<script>alert(1)</script>", Email: "x@example.com", Gender: "Other", Department: "Sales"},
		},
	}
	require.NoError(t, templates.Index(data).Render(context.Background(), &buf))
	out := buf.String()
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "<title>Employee Manager</title>")
}

func TestIndex_OffersEveryDepartmentAndGender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, templates.Index(templates.ManagerData{Form: domain.NewEmployeeForm()}).Render(context.Background(), &buf))
	out := buf.String()

	last := -1
	for _, d := range domain.Departments {
		i := strings.Index(out, `<option value="`+d+`"`)
		require.NotEqual(t, -1, i, d)
		assert.Greater(t, i, last, "departments render in display order")
		last = i
	}
	for _, g := range domain.Genders {
		assert.Contains(t, out, `<input type="radio" name="gender" value="`+g+`"`)
	}
}

func TestDetail_Title(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, templates.Detail(nil).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "<title>Employee Details</title>")
	assert.Contains(t, buf.String(), "Employee not found.")
}

func TestDetail_ShowsAddedTime(t *testing.T) {
	var buf bytes.Buffer
	e := &domain.Employee{
		ID: 1, Name: "Ada", Email: "ada@example.com", Gender: "Female", Department: "Finance",
		CreatedAt: time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC),
	}
	require.NoError(t, templates.Detail(e).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), `<span class="detail-label">Added</span>`)
	assert.Contains(t, buf.String(), `<span class="detail-value">2026-03-04 09:30</span>`)
}
