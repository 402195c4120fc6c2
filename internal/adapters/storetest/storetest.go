// Package storetest holds the behaviour every EmployeeRepository adapter must
// share. Adapter packages call Run from their own tests.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/employee-directory/internal/domain"
	"github.com/csg33k/employee-directory/internal/ports"
)

// Run exercises repo constructors returned by newRepo. Each subtest gets a
// fresh, empty repository.
func Run(t *testing.T, newRepo func(t *testing.T) ports.EmployeeRepository) {
	ctx := context.Background()

	add := func(t *testing.T, repo ports.EmployeeRepository, name string) domain.Employee {
		t.Helper()
		e := &domain.Employee{
			Name:       name,
			Email:      name + "@example.com",
			Gender:     "Other",
			Department: "Sales",
		}
		require.NoError(t, repo.AddEmployee(ctx, e))
		return *e
	}

	names := func(list []domain.Employee) []string {
		out := make([]string, len(list))
		for i, e := range list {
			out[i] = e.Name
		}
		return out
	}

	t.Run("starts empty", func(t *testing.T) {
		repo := newRepo(t)
		list, err := repo.ListEmployees(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("add assigns ids from one", func(t *testing.T) {
		repo := newRepo(t)
		a := add(t, repo, "alice")
		b := add(t, repo, "bob")
		assert.Equal(t, int64(1), a.ID)
		assert.Equal(t, int64(2), b.ID)
		assert.False(t, a.CreatedAt.IsZero())

		got, err := repo.GetEmployee(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "bob", got.Name)
		assert.Equal(t, "bob@example.com", got.Email)
		assert.Equal(t, "Other", got.Gender)
		assert.Equal(t, "Sales", got.Department)
	})

	t.Run("list keeps insertion order", func(t *testing.T) {
		repo := newRepo(t)
		add(t, repo, "a")
		add(t, repo, "b")
		add(t, repo, "c")
		list, err := repo.ListEmployees(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, names(list))
	})

	t.Run("delete removes exactly one and shifts the rest", func(t *testing.T) {
		repo := newRepo(t)
		add(t, repo, "a")
		b := add(t, repo, "b")
		c := add(t, repo, "c")

		require.NoError(t, repo.DeleteEmployee(ctx, b.ID))

		list, err := repo.ListEmployees(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, names(list))
		assert.Equal(t, c.ID, list[1].ID, "ids survive deletion of earlier records")

		_, err = repo.GetEmployee(ctx, b.ID)
		assert.ErrorIs(t, err, ports.ErrNotFound)
	})

	t.Run("ids are not reused", func(t *testing.T) {
		repo := newRepo(t)
		a := add(t, repo, "a")
		require.NoError(t, repo.DeleteEmployee(ctx, a.ID))
		b := add(t, repo, "b")
		assert.Greater(t, b.ID, a.ID)
		_, err := repo.GetEmployee(ctx, a.ID)
		assert.ErrorIs(t, err, ports.ErrNotFound)
	})

	t.Run("unknown ids", func(t *testing.T) {
		repo := newRepo(t)
		add(t, repo, "a")
		_, err := repo.GetEmployee(ctx, 42)
		assert.ErrorIs(t, err, ports.ErrNotFound)
		assert.ErrorIs(t, repo.DeleteEmployee(ctx, 42), ports.ErrNotFound)

		list, err := repo.ListEmployees(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		repo := newRepo(t)
		a := add(t, repo, "a")
		got, err := repo.GetEmployee(ctx, a.ID)
		require.NoError(t, err)
		got.Name = "mutated"
		list, err := repo.ListEmployees(ctx)
		require.NoError(t, err)
		list[0].Email = "mutated"

		again, err := repo.GetEmployee(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "a", again.Name)
		assert.Equal(t, "a@example.com", again.Email)
	})
}
