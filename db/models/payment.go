package models

import (
	"context"
	"time"

	"github.com/invoicehub/invoicehub.go/common"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Payment : Payment Model
type Payment struct {
	ID            int64           `json:"id" bun:",pk,autoincrement"`
	InvoiceID     int64           `json:"invoice_id" bun:",notnull"`
	Invoice       *Invoice        `json:"-" bun:"rel:belongs-to,join:invoice_id=id"`
	Amount        decimal.Decimal `json:"amount" bun:"type:decimal(10,2),notnull"`
	PaymentDate   time.Time       `json:"payment_date" bun:",notnull"`
	PaymentMethod string          `json:"payment_method" bun:",notnull"`
	Status        string          `json:"status" bun:",notnull,default:'pending'"`
	TransactionID string          `json:"transaction_id,omitempty" bun:",nullzero,unique"`
	Notes         string          `json:"notes,omitempty" bun:",nullzero"`
	CreatedAt     time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt     bun.NullTime    `json:"updated_at"`
}

func (p *Payment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		p.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

func (p *Payment) IsCompleted() bool {
	return p.Status == common.PaymentStatusCompleted
}

// CanTransitionTo : pending payments can complete or fail, both are terminal.
func (p *Payment) CanTransitionTo(status string) bool {
	if p.Status != common.PaymentStatusPending {
		return false
	}
	return status == common.PaymentStatusCompleted || status == common.PaymentStatusFailed
}

func IsValidPaymentMethod(method string) bool {
	for _, m := range common.PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

func IsValidPaymentStatus(status string) bool {
	for _, s := range common.PaymentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

var _ bun.BeforeAppendModelHook = (*Payment)(nil)
