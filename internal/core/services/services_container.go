package services

import (
	"time"

	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/events"
	"github.com/SscSPs/pocket_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher events.Publisher) *portssvc.ServiceContainer {
	loc := cfg.ReportLocation
	if loc == nil {
		loc = time.UTC
	}

	return &portssvc.ServiceContainer{
		Ledger: NewLedgerService(repos.TransactionRepo,
			WithEventPublisher(publisher),
			WithLedgerLocation(loc),
		),
		Category:  NewCategoryService(repos.CategoryRepo),
		Reporting: NewReportingService(repos.TransactionRepo, repos.CategoryRepo, WithReportLocation(loc)),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvcFacade   = (*ledgerService)(nil)
	_ portssvc.CategorySvcFacade = (*categoryService)(nil)
	_ portssvc.ReportingService  = (*reportingService)(nil)
)
