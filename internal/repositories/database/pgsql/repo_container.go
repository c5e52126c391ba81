package pgsql

import (
	portsrepo "github.com/SscSPs/cafe_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/cafe_ledger/internal/tenancy"
)

// NewRepositoryProvider wires every pgx repository over the tenant pool resolver.
func NewRepositoryProvider(pools tenancy.Resolver) portsrepo.RepositoryProvider {
	base := BaseRepository{Pools: pools}

	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(base),
		JournalRepo:     newPgxJournalRepository(base),
		ReportingRepo:   newPgxReportingRepository(base),
		PaymentRepo:     newPgxPaymentRepository(base),
		BankAccountRepo: newPgxBankAccountRepository(base),
	}
}
