package mapping

import (
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/SscSPs/cafe_ledger/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:      d.PaymentID,
		InvoiceID:      nullable(d.InvoiceID),
		Amount:         d.Amount,
		Method:         string(d.Method),
		BankAccountID:  nullable(d.BankAccountID),
		PaidAt:         d.PaidAt,
		Notes:          d.Notes,
		JournalEntryID: nullable(d.JournalEntryID),
		CreatedAt:      d.CreatedAt,
		CreatedBy:      d.CreatedBy,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:       m.PaymentID,
		InvoiceID:       deref(m.InvoiceID),
		Amount:          m.Amount,
		Method:          domain.PaymentMethod(m.Method),
		BankAccountID:   deref(m.BankAccountID),
		BankAccountName: deref(m.BankAccountName),
		PaidAt:          m.PaidAt,
		Notes:           m.Notes,
		JournalEntryID:  deref(m.JournalEntryID),
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
}

// ToDomainPaymentSlice converts a slice of model Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	out := make([]domain.Payment, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPayment(m)
	}
	return out
}

// ToModelBankAccount converts a domain BankAccount to a model BankAccount
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		BankAccountID: d.BankAccountID,
		Title:         d.Title,
		BankName:      d.BankName,
		Holder:        d.Holder,
		AccountNumber: d.AccountNumber,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID: m.BankAccountID,
		Title:         m.Title,
		BankName:      m.BankName,
		Holder:        m.Holder,
		AccountNumber: m.AccountNumber,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}
