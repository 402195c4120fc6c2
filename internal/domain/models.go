package domain

import (
	"slices"
	"time"
)

// Departments is the fixed department list in display order. The first entry
// is the default selection for a new employee.
var Departments = []string{
	"Engineering",
	"Human Resources",
	"Marketing",
	"Finance",
	"Sales",
}

// Genders is the closed set of gender values offered by the form.
var Genders = []string{"Male", "Female", "Other"}

// DefaultDepartment returns the department preselected on a fresh form.
func DefaultDepartment() string {
	return Departments[0]
}

// IsDepartment reports whether d is one of Departments.
func IsDepartment(d string) bool {
	return slices.Contains(Departments, d)
}

// IsGender reports whether g is one of Genders.
func IsGender(g string) bool {
	return slices.Contains(Genders, g)
}

// Employee is a single directory record.
type Employee struct {
	// ID is assigned by the store on append, starts at 1 and is never
	// reused, so it stays valid across deletions of other records.
	ID         int64
	Name       string
	Email      string
	Gender     string
	Department string
	CreatedAt  time.Time
}

// Field names accepted by EmployeeForm.Set. They double as HTML input names.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldGender     = "gender"
	FieldDepartment = "department"
)

// EmployeeForm holds the values of the creation form between edits.
type EmployeeForm struct {
	Name       string
	Email      string
	Gender     string
	Department string
}

// NewEmployeeForm returns a form reset to its initial defaults.
func NewEmployeeForm() EmployeeForm {
	return EmployeeForm{Department: DefaultDepartment()}
}

// Set updates the single field named by field. Unknown names are ignored.
func (f *EmployeeForm) Set(field, value string) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldGender:
		f.Gender = value
	case FieldDepartment:
		f.Department = value
	}
}

// Complete reports whether the form carries everything a record needs.
// A gender outside Genders counts as missing.
func (f EmployeeForm) Complete() bool {
	return f.Name != "" && f.Email != "" && IsGender(f.Gender)
}

// Employee builds a record from the current values. An unknown department
// falls back to the default.
func (f EmployeeForm) Employee() Employee {
	dept := f.Department
	if !IsDepartment(dept) {
		dept = DefaultDepartment()
	}
	return Employee{
		Name:       f.Name,
		Email:      f.Email,
		Gender:     f.Gender,
		Department: dept,
	}
}
