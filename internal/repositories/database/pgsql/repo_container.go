package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/spendtrack/expense_tracker_app/internal/core/ports/repositories"
)

// RepositoryContainer bundles all pgx-backed repositories.
type RepositoryContainer struct {
	Transaction portsrepo.TransactionRepositoryFacade
	User        portsrepo.UserRepositoryFacade
}

// NewRepositoryContainer wires every repository onto one shared pool.
func NewRepositoryContainer(db *pgxpool.Pool) *RepositoryContainer {
	return &RepositoryContainer{
		Transaction: NewTransactionRepository(db),
		User:        NewUserRepository(db),
	}
}
