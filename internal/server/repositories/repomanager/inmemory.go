package repomanager

import (
	"context"
	"database/sql"

	"github.com/dberzins/snippetflow/internal/dbx"
	"github.com/dberzins/snippetflow/internal/server/repositories/snippets"
	"github.com/dberzins/snippetflow/internal/server/repositories/users"
)

// InMemoryRepositoryManager serves the same repositories from process memory.
// Used by tests; RunMigrations is a no-op and DBTX handles are ignored.
type InMemoryRepositoryManager struct {
	users    *users.InMemoryRepository
	snippets *snippets.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewInMemoryRepository(),
		snippets: snippets.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Snippets(db dbx.DBTX) snippets.Repository {
	return m.snippets
}
