package models

import (
	"context"
	"time"

	"github.com/invoicehub/invoicehub.go/common"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Invoice : Invoice Model
type Invoice struct {
	ID            int64           `json:"id" bun:",pk,autoincrement"`
	ClientName    string          `json:"client_name" bun:",notnull"`
	InvoiceNumber string          `json:"invoice_number" bun:",notnull,unique"`
	IssueDate     time.Time       `json:"issue_date" bun:",notnull"`
	DueDate       time.Time       `json:"due_date" bun:",notnull"`
	TotalAmount   decimal.Decimal `json:"total_amount" bun:"type:decimal(10,2),notnull"`
	Status        string          `json:"status" bun:",notnull,default:'draft'"`
	Description   string          `json:"description,omitempty" bun:",nullzero"`
	TaxRate       decimal.Decimal `json:"tax_rate" bun:"type:decimal(5,4),notnull"`
	Currency      string          `json:"currency" bun:"type:varchar(3),notnull,default:'JPY'"`
	Payments      []*Payment      `json:"-" bun:"rel:has-many,join:id=invoice_id"`
	CreatedAt     time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt     bun.NullTime    `json:"updated_at"`
}

func (i *Invoice) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		i.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

// CalculateTotalWithTax returns total_amount * (1 + tax_rate).
func (i *Invoice) CalculateTotalWithTax() decimal.Decimal {
	return i.TotalAmount.Mul(decimal.NewFromInt(1).Add(i.TaxRate))
}

// IsOverdue is true for any unpaid invoice whose due date has passed.
func (i *Invoice) IsOverdue() bool {
	return i.Status != common.InvoiceStatusPaid && time.Now().After(i.DueDate)
}

// IsMutable : paid invoices are frozen for generic updates.
func (i *Invoice) IsMutable() bool {
	return i.Status != common.InvoiceStatusPaid
}

func IsValidInvoiceStatus(status string) bool {
	for _, s := range common.InvoiceStatuses {
		if s == status {
			return true
		}
	}
	return false
}

var _ bun.BeforeAppendModelHook = (*Invoice)(nil)
