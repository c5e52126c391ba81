package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/cafe_ledger/internal/apperrors"
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/SscSPs/cafe_ledger/internal/core/services"
	"github.com/SscSPs/cafe_ledger/internal/dto"
	"github.com/SscSPs/cafe_ledger/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	paymentRepo *MockPaymentRepository
	bankRepo    *MockBankAccountRepository
	accountRepo *MockAccountRepository
	ctx         context.Context
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.paymentRepo = new(MockPaymentRepository)
	suite.bankRepo = new(MockBankAccountRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.ctx = accountantCtx()
}

func (suite *PaymentServiceTestSuite) journalConfig() config.PaymentJournalConfig {
	return config.PaymentJournalConfig{
		Enabled:               true,
		CashAccountCode:       "1000",
		BankAccountCode:       "1010",
		ReceivableAccountCode: "1100",
	}
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_InvoiceSettlement() {
	svc := services.NewPaymentService(suite.paymentRepo, suite.bankRepo)
	settlement := &domain.InvoiceSettlement{
		InvoiceID:   "5",
		FinalAmount: decimal.NewFromInt(1000),
		Paid:        decimal.NewFromInt(500),
		Status:      domain.StatusPartial,
	}
	suite.paymentRepo.On("RecordPayment", suite.ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.InvoiceID == "5" && p.Amount.Equal(decimal.NewFromInt(500)) && p.JournalEntryID == ""
	}), (*domain.JournalEntry)(nil)).Return(settlement, nil).Once()

	resp, err := svc.RecordPayment(suite.ctx, dto.RecordPaymentRequest{
		InvoiceID: strPtr("5"),
		Amount:    decimal.NewFromInt(500),
		Method:    domain.MethodCash,
	})

	suite.Require().NoError(err)
	suite.Equal(settlement, resp.Invoice)
	suite.NotEmpty(resp.Payment.PaymentID)
	suite.Equal(testUserID, resp.Payment.CreatedBy)
	suite.WithinDuration(time.Now(), resp.Payment.PaidAt, time.Second)
	suite.paymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_WithoutInvoice() {
	svc := services.NewPaymentService(suite.paymentRepo, suite.bankRepo)
	paidAt := time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC)
	suite.paymentRepo.On("RecordPayment", suite.ctx, mock.AnythingOfType("domain.Payment"), (*domain.JournalEntry)(nil)).
		Return(nil, nil).Once()

	resp, err := svc.RecordPayment(suite.ctx, dto.RecordPaymentRequest{
		Amount: decimal.RequireFromString("12.50"),
		Method: domain.MethodCard,
		PaidAt: &paidAt,
	})

	suite.Require().NoError(err)
	suite.Nil(resp.Invoice)
	suite.Equal(paidAt, resp.Payment.PaidAt)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_InvalidInput() {
	svc := services.NewPaymentService(suite.paymentRepo, suite.bankRepo)

	cases := []dto.RecordPaymentRequest{
		{Amount: decimal.Zero, Method: domain.MethodCash},
		{Amount: decimal.NewFromInt(-5), Method: domain.MethodCash},
		{Amount: decimal.NewFromInt(5)},
		{Amount: decimal.NewFromInt(5), Method: "barter"},
		{Amount: decimal.RequireFromString("0.001"), Method: domain.MethodCash},
		{Amount: decimal.RequireFromString("12.345"), Method: domain.MethodCard},
	}
	for _, req := range cases {
		_, err := svc.RecordPayment(suite.ctx, req)
		suite.ErrorIs(err, apperrors.ErrValidation, "request %+v", req)
	}
	suite.paymentRepo.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_UnknownBankAccount() {
	svc := services.NewPaymentService(suite.paymentRepo, suite.bankRepo)
	suite.bankRepo.On("FindBankAccountByID", suite.ctx, "ba-404").
		Return(nil, apperrors.NewNotFoundError("bank account ba-404 not found")).Once()

	_, err := svc.RecordPayment(suite.ctx, dto.RecordPaymentRequest{
		Amount:        decimal.NewFromInt(10),
		Method:        domain.MethodTransfer,
		BankAccountID: strPtr("ba-404"),
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_UnknownInvoice() {
	svc := services.NewPaymentService(suite.paymentRepo, suite.bankRepo)
	suite.paymentRepo.On("RecordPayment", suite.ctx, mock.AnythingOfType("domain.Payment"), (*domain.JournalEntry)(nil)).
		Return(nil, apperrors.NewNotFoundError("invoice 99 not found")).Once()

	_, err := svc.RecordPayment(suite.ctx, dto.RecordPaymentRequest{
		InvoiceID: strPtr("99"),
		Amount:    decimal.NewFromInt(10),
		Method:    domain.MethodCash,
	})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_PostsJournalEntry() {
	svc := services.NewPaymentService(suite.paymentRepo, suite.bankRepo,
		services.WithPaymentJournal(suite.accountRepo, suite.journalConfig()))

	bank := &domain.BankAccount{BankAccountID: "ba-1", Title: "Main"}
	suite.bankRepo.On("FindBankAccountByID", suite.ctx, "ba-1").Return(bank, nil).Once()
	suite.accountRepo.On("FindAccountByCode", suite.ctx, "1010").
		Return(&domain.Account{AccountID: "acc-bank", Code: "1010", IsActive: true}, nil).Once()
	suite.accountRepo.On("FindAccountByCode", suite.ctx, "1100").
		Return(&domain.Account{AccountID: "acc-recv", Code: "1100", IsActive: true}, nil).Once()

	var posted *domain.JournalEntry
	suite.paymentRepo.On("RecordPayment", suite.ctx, mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("*domain.JournalEntry")).
		Run(func(args mock.Arguments) {
			posted = args.Get(2).(*domain.JournalEntry)
		}).
		Return(nil, nil).Once()

	resp, err := svc.RecordPayment(suite.ctx, dto.RecordPaymentRequest{
		Amount:        decimal.NewFromInt(250),
		Method:        domain.MethodCard,
		BankAccountID: strPtr("ba-1"),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(posted)
	suite.Equal(posted.EntryID, resp.Payment.JournalEntryID)
	suite.Equal("Main", resp.Payment.BankAccountName)
	suite.Require().Len(posted.Lines, 2)
	suite.Equal("acc-bank", posted.Lines[0].AccountID)
	suite.True(posted.Lines[0].Debit.Equal(decimal.NewFromInt(250)))
	suite.Equal("acc-recv", posted.Lines[1].AccountID)
	suite.True(posted.Lines[1].Credit.Equal(decimal.NewFromInt(250)))
	suite.NoError(posted.Validate())
	suite.accountRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_MisconfiguredJournal() {
	svc := services.NewPaymentService(suite.paymentRepo, suite.bankRepo,
		services.WithPaymentJournal(suite.accountRepo, suite.journalConfig()))
	suite.accountRepo.On("FindAccountByCode", suite.ctx, "1000").
		Return(nil, apperrors.NewNotFoundError("account 1000 not found")).Once()

	_, err := svc.RecordPayment(suite.ctx, dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(10),
		Method: domain.MethodCash,
	})

	suite.Require().Error(err)
	suite.Equal(500, apperrors.StatusCode(err))
	suite.paymentRepo.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestListPayments() {
	svc := services.NewPaymentService(suite.paymentRepo, suite.bankRepo)
	next := "token"
	suite.paymentRepo.On("ListPayments", suite.ctx, 20, (*string)(nil)).
		Return([]domain.Payment{{PaymentID: "p1"}}, &next, nil).Once()

	resp, err := svc.ListPayments(suite.ctx, dto.ListPaymentsParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Len(resp.Payments, 1)
	suite.Equal(&next, resp.NextToken)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_Forbidden() {
	svc := services.NewPaymentService(suite.paymentRepo, suite.bankRepo)

	_, err := svc.RecordPayment(waiterCtx(), dto.RecordPaymentRequest{Amount: decimal.NewFromInt(1), Method: domain.MethodCash})

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
