package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/playlake-lab/playlake/internal/core/enum"
)

// PaymentTransaction is one billing transaction tied to a subscription.
// Partitioned by transaction_id.
type PaymentTransaction struct {
	TransactionID  string
	SubscriptionID string
	UserID         string

	Amount   decimal.Decimal
	Currency string
	Status   enum.PaymentStatus

	ProcessorName      string
	ProcessorReference string

	FailureCode    *string
	FailureMessage *string
	RetryCount     int64

	CreatedAt time.Time
}

// NewPaymentTransaction normalizes t into a fully-populated record.
func NewPaymentTransaction(t PaymentTransaction) *PaymentTransaction {
	t.TransactionID = orNewID(t.TransactionID)
	t.CreatedAt = orDefaultTime(t.CreatedAt)
	if t.Currency == "" {
		t.Currency = DefaultCurrency
	}
	if t.Status == "" {
		t.Status = enum.PaymentPending
	}
	return &t
}

func (t *PaymentTransaction) Kind() Kind            { return KindPaymentTransaction }
func (t *PaymentTransaction) EntityID() string      { return t.TransactionID }
func (t *PaymentTransaction) OccurredAt() time.Time { return t.CreatedAt }
