// Package memory is the default Record Store: an insertion-ordered slice held
// for the lifetime of the process.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/csg33k/employee-directory/internal/domain"
	"github.com/csg33k/employee-directory/internal/ports"
)

type Repository struct {
	mu        sync.RWMutex
	employees []domain.Employee
	nextID    int64
	now       func() time.Time
}

func New() *Repository {
	return &Repository{nextID: 1, now: time.Now}
}

func (r *Repository) AddEmployee(_ context.Context, e *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	e.CreatedAt = r.now()
	r.nextID++
	r.employees = append(r.employees, *e)
	return nil
}

func (r *Repository) GetEmployee(_ context.Context, id int64) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, ports.ErrNotFound
	}
	e := r.employees[i]
	return &e, nil
}

func (r *Repository) ListEmployees(_ context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}

func (r *Repository) DeleteEmployee(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return ports.ErrNotFound
	}
	r.employees = append(r.employees[:i], r.employees[i+1:]...)
	return nil
}

// indexOf returns the current position of id, or -1. Caller holds mu.
func (r *Repository) indexOf(id int64) int {
	for i := range r.employees {
		if r.employees[i].ID == id {
			return i
		}
	}
	return -1
}
