package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/profiles/internal/dbx"
	"github.com/dmitrijs2005/profiles/internal/repositories/accounts"
)

// RepositoryManager vends repositories bound to an explicit database handle.
// Passing a dbx.DBTX per call lets services swap a transaction handle in
// where several writes must land together.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
}
