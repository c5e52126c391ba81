package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     string    `json:"created_by"` // UserID Reference
	LastUpdatedAt time.Time `json:"last_updated_at"`
	LastUpdatedBy string    `json:"last_updated_by"` // UserID Reference
}

// DateLayout is the wire and storage layout for accounting dates.
const DateLayout = "2006-01-02"

// AmountScale is the number of decimal places amounts are stored with.
const AmountScale = 2

// HasAmountScale reports whether d is representable in the store without rounding.
func HasAmountScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(AmountScale))
}
