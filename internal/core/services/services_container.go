package services

import (
	portsrepo "github.com/SscSPs/cafe_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cafe_ledger/internal/core/ports/services"
	"github.com/SscSPs/cafe_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo),
		Journal:   NewJournalService(repos.JournalRepo, repos.AccountRepo),
		Reporting: NewReportingService(repos.ReportingRepo),
		Payment: NewPaymentService(
			repos.PaymentRepo,
			repos.BankAccountRepo,
			WithPaymentJournal(repos.AccountRepo, cfg.PaymentJournal),
		),
		BankAccount: NewBankAccountService(repos.BankAccountRepo),
	}
}
