package ports

import (
	"context"
	"errors"
	"io"

	"github.com/csg33k/employee-directory/internal/domain"
)

// ErrNotFound is returned when no live record carries the requested ID.
var ErrNotFound = errors.New("employee not found")

// EmployeeRepository defines the Record Store operations.
type EmployeeRepository interface {
	// AddEmployee appends e and assigns its ID and CreatedAt.
	AddEmployee(ctx context.Context, e *domain.Employee) error
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
	// ListEmployees returns every record in insertion order.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	// DeleteEmployee removes the record with id. Removing an unknown id
	// returns ErrNotFound and leaves the store untouched.
	DeleteEmployee(ctx context.Context, id int64) error
}

// DirectoryExporter renders the full directory into a downloadable document.
type DirectoryExporter interface {
	Export(ctx context.Context, employees []domain.Employee, w io.Writer) error
	ContentType() string
	// Extension is the file extension used for the download name, without a dot.
	Extension() string
}
