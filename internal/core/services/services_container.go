package services

import (
	portssvc "github.com/spendtrack/expense_tracker_app/internal/core/ports/services"
	"github.com/spendtrack/expense_tracker_app/internal/platform/config"
	"github.com/spendtrack/expense_tracker_app/internal/repositories/database/pgsql"
)

// NewServiceContainer wires every service onto the repository container.
func NewServiceContainer(cfg *config.Config, repos *pgsql.RepositoryContainer) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.User)

	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.Transaction),
		User:        userSvc,
		Token:       NewTokenService(cfg, userSvc),
		GoogleOAuth: NewGoogleOAuthService(cfg),
		Reporting:   NewReportingService(repos.Transaction),
	}
}
