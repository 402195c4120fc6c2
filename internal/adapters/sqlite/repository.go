package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/csg33k/employee-directory/internal/domain"
	"github.com/csg33k/employee-directory/internal/ports"
)

// MemoryDSN keeps the database in process memory; it is gone when the
// process exits.
const MemoryDSN = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS employees (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	gender     TEXT NOT NULL,
	department TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
)`

type Repository struct {
	db *sql.DB
}

// New opens the SQLite database and creates the employees table if needed.
// The pool is pinned to one connection: every ":memory:" connection would
// otherwise see its own empty database.
func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) AddEmployee(ctx context.Context, e *domain.Employee) error {
	e.CreatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (name, email, gender, department, created_at)
		VALUES (?,?,?,?,?)`,
		e.Name, e.Email, e.Gender, e.Department, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	e.ID = id
	return nil
}

func (r *Repository) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	e := &domain.Employee{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, gender, department, created_at
		FROM employees WHERE id=?`, id).Scan(
		&e.ID, &e.Name, &e.Email, &e.Gender, &e.Department, &e.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get employee %d: %w", id, err)
	}
	return e, nil
}

func (r *Repository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, gender, department, created_at
		FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	list := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Gender, &e.Department, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *Repository) DeleteEmployee(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}
