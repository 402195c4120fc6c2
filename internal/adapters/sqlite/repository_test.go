package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/csg33k/employee-directory/internal/adapters/sqlite"
	"github.com/csg33k/employee-directory/internal/adapters/storetest"
	"github.com/csg33k/employee-directory/internal/ports"
)

func TestRepository(t *testing.T) {
	storetest.Run(t, func(t *testing.T) ports.EmployeeRepository {
		repo, err := sqlite.New(sqlite.MemoryDSN)
		require.NoError(t, err)
		t.Cleanup(func() { repo.Close() })
		return repo
	})
}
