package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
)

func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newSQLiteTransactionRepository(db),
		CategoryRepo:    newSQLiteCategoryRepository(db),
		Health:          &BaseRepository{DB: db},
	}
}
