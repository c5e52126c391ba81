package services_test

import (
	"context"
	"iter"
	"time"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/SscSPs/cafe_ledger/internal/middleware"
	"github.com/stretchr/testify/mock"
)

const testUserID = "user-1"

// accountantCtx returns a context carrying a principal allowed to do accounting.
func accountantCtx() context.Context {
	return middleware.WithPrincipal(context.Background(), domain.Principal{
		UserID:      testUserID,
		TenantID:    "cafe-1",
		Permissions: []domain.Permission{domain.PermManageAccounting},
	})
}

// waiterCtx returns a context carrying a principal without accounting rights.
func waiterCtx() context.Context {
	return middleware.WithPrincipal(context.Background(), domain.Principal{
		UserID:      "waiter-1",
		Permissions: []domain.Permission{"orders.take"},
	})
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// ReparentAccount runs check against the chart configured as the first return value.
func (m *MockAccountRepository) ReparentAccount(ctx context.Context, account domain.Account, check func(chart []domain.Account) error) error {
	args := m.Called(ctx, account)
	if chart, ok := args.Get(0).([]domain.Account); ok {
		if err := check(chart); err != nil {
			return err
		}
	}
	return args.Error(1)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

// MockJournalRepository is a mock type for the JournalRepositoryFacade interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) StreamLedger(ctx context.Context, query domain.LedgerQuery) iter.Seq2[domain.LedgerLine, error] {
	args := m.Called(ctx, query)
	return args.Get(0).(iter.Seq2[domain.LedgerLine, error])
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) TrialBalanceRows(ctx context.Context, asOf *time.Time) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockReportingRepository) TypeTotals(ctx context.Context, asOf *time.Time) ([]domain.TypeTotal, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TypeTotal), args.Error(1)
}

// MockPaymentRepository is a mock type for the PaymentRepositoryFacade interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) RecordPayment(ctx context.Context, payment domain.Payment, entry *domain.JournalEntry) (*domain.InvoiceSettlement, error) {
	args := m.Called(ctx, payment, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceSettlement), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var token *string
	if t := args.Get(1); t != nil {
		token = t.(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.Payment), token, args.Error(2)
}

// MockBankAccountRepository is a mock type for the BankAccountRepository interface
type MockBankAccountRepository struct {
	mock.Mock
}

func (m *MockBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}
