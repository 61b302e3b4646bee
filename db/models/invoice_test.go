package models

import (
	"testing"
	"time"

	"github.com/invoicehub/invoicehub.go/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalWithTax(t *testing.T) {
	invoice := &Invoice{
		ClientName:    "Acme",
		InvoiceNumber: "INV-1",
		TotalAmount:   decimal.NewFromInt(1000),
		TaxRate:       decimal.RequireFromString("0.1"),
	}

	assert.True(t, decimal.NewFromInt(1100).Equal(invoice.CalculateTotalWithTax()))
}

func TestCalculateTotalWithTaxZeroRate(t *testing.T) {
	invoice := &Invoice{
		TotalAmount: decimal.RequireFromString("250.50"),
		TaxRate:     decimal.Zero,
	}

	assert.True(t, decimal.RequireFromString("250.50").Equal(invoice.CalculateTotalWithTax()))
}

func TestIsOverdue(t *testing.T) {
	pastDue := time.Now().Add(-24 * time.Hour)
	futureDue := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name    string
		status  string
		dueDate time.Time
		want    bool
	}{
		{"draft past due", common.InvoiceStatusDraft, pastDue, true},
		{"sent past due", common.InvoiceStatusSent, pastDue, true},
		{"overdue past due", common.InvoiceStatusOverdue, pastDue, true},
		{"paid past due", common.InvoiceStatusPaid, pastDue, false},
		{"draft not yet due", common.InvoiceStatusDraft, futureDue, false},
		{"sent not yet due", common.InvoiceStatusSent, futureDue, false},
		{"paid not yet due", common.InvoiceStatusPaid, futureDue, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoice := &Invoice{Status: tt.status, DueDate: tt.dueDate}
			assert.Equal(t, tt.want, invoice.IsOverdue())
		})
	}
}

func TestIsMutable(t *testing.T) {
	assert.True(t, (&Invoice{Status: common.InvoiceStatusDraft}).IsMutable())
	assert.True(t, (&Invoice{Status: common.InvoiceStatusSent}).IsMutable())
	assert.True(t, (&Invoice{Status: common.InvoiceStatusOverdue}).IsMutable())
	assert.False(t, (&Invoice{Status: common.InvoiceStatusPaid}).IsMutable())
}

func TestIsValidInvoiceStatus(t *testing.T) {
	for _, status := range common.InvoiceStatuses {
		assert.True(t, IsValidInvoiceStatus(status))
	}
	assert.False(t, IsValidInvoiceStatus("cancelled"))
	assert.False(t, IsValidInvoiceStatus(""))
}
