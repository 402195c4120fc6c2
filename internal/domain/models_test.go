package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/csg33k/employee-directory/internal/domain"
)

func TestNewEmployeeForm_Defaults(t *testing.T) {
	f := domain.NewEmployeeForm()
	assert.Equal(t, domain.EmployeeForm{Department: "Engineering"}, f)
	assert.False(t, f.Complete())
}

func TestEmployeeForm_SetUpdatesOneField(t *testing.T) {
	f := domain.NewEmployeeForm()
	f.Set(domain.FieldName, "Ada")
	assert.Equal(t, domain.EmployeeForm{Name: "Ada", Department: "Engineering"}, f)

	f.Set(domain.FieldEmail, "ada@example.com")
	f.Set(domain.FieldGender, "Female")
	f.Set(domain.FieldDepartment, "Finance")
	f.Set("salary", "lots")
	assert.Equal(t, domain.EmployeeForm{
		Name:       "Ada",
		Email:      "ada@example.com",
		Gender:     "Female",
		Department: "Finance",
	}, f)
}

func TestEmployeeForm_Complete(t *testing.T) {
	full := domain.EmployeeForm{Name: "n", Email: "e", Gender: "Other", Department: "Sales"}
	assert.True(t, full.Complete())

	for _, mutate := range []func(*domain.EmployeeForm){
		func(f *domain.EmployeeForm) { f.Name = "" },
		func(f *domain.EmployeeForm) { f.Email = "" },
		func(f *domain.EmployeeForm) { f.Gender = "" },
		func(f *domain.EmployeeForm) { f.Gender = "male" },
	} {
		f := full
		mutate(&f)
		assert.False(t, f.Complete(), "%+v", f)
	}

	// department is never required
	noDept := full
	noDept.Department = ""
	assert.True(t, noDept.Complete())
}

func TestEmployeeForm_Employee(t *testing.T) {
	f := domain.EmployeeForm{Name: "n", Email: "e", Gender: "Male", Department: "Marketing"}
	e := f.Employee()
	assert.Zero(t, e.ID)
	assert.Equal(t, "n", e.Name)
	assert.Equal(t, "e", e.Email)
	assert.Equal(t, "Male", e.Gender)
	assert.Equal(t, "Marketing", e.Department)

	f.Department = "Legal"
	assert.Equal(t, "Engineering", f.Employee().Department)
}

func TestEnumerations(t *testing.T) {
	assert.Equal(t, []string{"Engineering", "Human Resources", "Marketing", "Finance", "Sales"}, domain.Departments)
	assert.Equal(t, []string{"Male", "Female", "Other"}, domain.Genders)
	assert.Equal(t, "Engineering", domain.DefaultDepartment())
	assert.True(t, domain.IsDepartment("Human Resources"))
	assert.False(t, domain.IsDepartment("human resources"))
	assert.True(t, domain.IsGender("Other"))
	assert.False(t, domain.IsGender(""))
}
