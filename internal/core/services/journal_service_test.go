package services_test

import (
	"context"
	"iter"
	"testing"
	"time"

	"github.com/SscSPs/cafe_ledger/internal/apperrors"
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/cafe_ledger/internal/core/ports/services"
	"github.com/SscSPs/cafe_ledger/internal/core/services"
	"github.com/SscSPs/cafe_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JournalServiceTestSuite struct {
	suite.Suite
	journalRepo *MockJournalRepository
	accountRepo *MockAccountRepository
	service     portssvc.JournalSvcFacade
	ctx         context.Context
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.journalRepo = new(MockJournalRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.service = services.NewJournalService(suite.journalRepo, suite.accountRepo)
	suite.ctx = accountantCtx()
}

func (suite *JournalServiceTestSuite) cashSalesRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		EntryDate:   "2024-01-10",
		Description: "Cash sales",
		Lines: []dto.JournalLineRequest{
			{AccountID: "cash", Debit: decimal.NewFromInt(1000)},
			{AccountID: "sales", Credit: decimal.NewFromInt(1000)},
		},
	}
}

func (suite *JournalServiceTestSuite) activeAccounts() map[string]domain.Account {
	return map[string]domain.Account{
		"cash":  {AccountID: "cash", Code: "1000", AccountType: domain.Asset, IsActive: true},
		"sales": {AccountID: "sales", Code: "4000", AccountType: domain.Revenue, IsActive: true},
	}
}

func (suite *JournalServiceTestSuite) TestRecordJournalEntry_Success() {
	suite.accountRepo.On("FindAccountsByIDs", suite.ctx, []string{"cash", "sales"}).Return(suite.activeAccounts(), nil).Once()
	suite.journalRepo.On("SaveJournalEntry", suite.ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return len(e.Lines) == 2 && e.Lines[0].EntryID == e.EntryID && e.Lines[0].AccountID == "cash"
	})).Return(nil).Once()

	entry, err := suite.service.RecordJournalEntry(suite.ctx, suite.cashSalesRequest())

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), entry.EntryDate)
	suite.Equal(testUserID, entry.CreatedBy)
	debit, credit := entry.Totals()
	suite.True(debit.Equal(credit))
	suite.journalRepo.AssertExpectations(suite.T())
	suite.accountRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestRecordJournalEntry_Unbalanced() {
	req := suite.cashSalesRequest()
	req.Lines[1].Credit = decimal.NewFromInt(999)

	entry, err := suite.service.RecordJournalEntry(suite.ctx, req)

	suite.Nil(entry)
	suite.ErrorIs(err, domain.ErrJournalUnbalanced)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.journalRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestRecordJournalEntry_SubCentAmounts() {
	req := suite.cashSalesRequest()
	req.Lines[0].Debit = decimal.RequireFromString("1000.005")
	req.Lines[1].Credit = decimal.RequireFromString("1000.005")

	_, err := suite.service.RecordJournalEntry(suite.ctx, req)

	suite.ErrorIs(err, domain.ErrLineAmountScale)
	suite.Equal(400, apperrors.StatusCode(err))
	suite.journalRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestRecordJournalEntry_NoLines() {
	req := suite.cashSalesRequest()
	req.Lines = nil

	_, err := suite.service.RecordJournalEntry(suite.ctx, req)

	suite.ErrorIs(err, domain.ErrJournalNoLines)
}

func (suite *JournalServiceTestSuite) TestRecordJournalEntry_BadDate() {
	req := suite.cashSalesRequest()
	req.EntryDate = "10/01/2024"

	_, err := suite.service.RecordJournalEntry(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestRecordJournalEntry_UnknownAccount() {
	accounts := suite.activeAccounts()
	delete(accounts, "sales")
	suite.accountRepo.On("FindAccountsByIDs", suite.ctx, []string{"cash", "sales"}).Return(accounts, nil).Once()

	_, err := suite.service.RecordJournalEntry(suite.ctx, suite.cashSalesRequest())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "sales")
	suite.journalRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestRecordJournalEntry_InactiveAccount() {
	accounts := suite.activeAccounts()
	cash := accounts["cash"]
	cash.IsActive = false
	accounts["cash"] = cash
	suite.accountRepo.On("FindAccountsByIDs", suite.ctx, []string{"cash", "sales"}).Return(accounts, nil).Once()

	_, err := suite.service.RecordJournalEntry(suite.ctx, suite.cashSalesRequest())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "inactive")
}

func (suite *JournalServiceTestSuite) TestRecordJournalEntry_Forbidden() {
	_, err := suite.service.RecordJournalEntry(waiterCtx(), suite.cashSalesRequest())

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.accountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestGetLedger_Validation() {
	_, err := suite.service.GetLedger(suite.ctx, domain.LedgerQuery{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = suite.service.GetLedger(suite.ctx, domain.LedgerQuery{AccountID: "cash", From: &from, To: &to})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestGetLedger_DelegatesToRepository() {
	lines := []domain.LedgerLine{
		{EntryID: "e1", Debit: decimal.NewFromInt(100), RunningBalance: decimal.NewFromInt(100)},
		{EntryID: "e2", Credit: decimal.NewFromInt(40), RunningBalance: decimal.NewFromInt(60)},
	}
	var seq iter.Seq2[domain.LedgerLine, error] = func(yield func(domain.LedgerLine, error) bool) {
		for _, l := range lines {
			if !yield(l, nil) {
				return
			}
		}
	}
	query := domain.LedgerQuery{AccountID: "cash"}
	suite.journalRepo.On("StreamLedger", suite.ctx, query).Return(seq).Once()

	got, err := suite.service.GetLedger(suite.ctx, domain.LedgerQuery{AccountID: " cash "})
	suite.Require().NoError(err)

	// ranging twice yields the same lines
	for range 2 {
		var collected []domain.LedgerLine
		for line, err := range got {
			suite.Require().NoError(err)
			collected = append(collected, line)
		}
		suite.Equal(lines, collected)
	}
	suite.journalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestGetJournalEntry_NotFound() {
	suite.journalRepo.On("FindJournalEntryByID", suite.ctx, "nope").
		Return(nil, apperrors.NewNotFoundError("journal entry nope not found")).Once()

	_, err := suite.service.GetJournalEntry(suite.ctx, "nope")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
