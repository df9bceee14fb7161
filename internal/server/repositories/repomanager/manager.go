// Package repomanager vends repositories bound to a database handle and owns
// schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/jwtauth/internal/dbx"
	"github.com/dmitrijs2005/jwtauth/internal/server/repositories/accounts"
)

// RepositoryManager binds repositories to either the pool or a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
}
