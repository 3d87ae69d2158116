package repomanager

import (
	"context"
	"database/sql"

	"github.com/dberzins/snippetflow/internal/dbx"
	"github.com/dberzins/snippetflow/internal/server/repositories/snippets"
	"github.com/dberzins/snippetflow/internal/server/repositories/users"
)

// RepositoryManager hands out entity repositories over a DBTX handle so the
// same repository code runs against *sql.DB or an open transaction, and owns
// schema migration at startup.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Snippets(db dbx.DBTX) snippets.Repository
}
