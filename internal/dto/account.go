package dto

import (
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code            string             `json:"code" binding:"required,max=32"`
	Name            string             `json:"name" binding:"required,max=255"`
	AccountType     domain.AccountType `json:"type" binding:"required,accounttype"`
	ParentAccountID *string            `json:"parent_id"` // Optional, use pointer for nullability
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
// An empty ParentAccountID moves the account to the root.
type UpdateAccountRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=255"`
	ParentAccountID *string `json:"parent_id"`
}
