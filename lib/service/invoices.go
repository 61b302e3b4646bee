package service

import (
	"context"
	"fmt"
	"time"

	"github.com/invoicehub/invoicehub.go/common"
	"github.com/invoicehub/invoicehub.go/db/models"
	"github.com/shopspring/decimal"
)

type CreateInvoiceParams struct {
	ClientName    string
	InvoiceNumber string
	IssueDate     time.Time
	DueDate       time.Time
	TotalAmount   decimal.Decimal
	Description   string
	TaxRate       *decimal.Decimal
	Currency      string
}

// UpdateInvoiceParams carries a partial patch, nil fields are left untouched.
type UpdateInvoiceParams struct {
	ClientName    *string
	InvoiceNumber *string
	IssueDate     *time.Time
	DueDate       *time.Time
	TotalAmount   *decimal.Decimal
	Description   *string
	TaxRate       *decimal.Decimal
	Currency      *string
}

func (svc *InvoicehubService) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*models.Invoice, error) {
	if params.ClientName == "" {
		return nil, &ValidationError{Message: "client name is required"}
	}
	if params.InvoiceNumber == "" {
		return nil, &ValidationError{Message: "invoice number is required"}
	}
	if params.IssueDate.IsZero() || params.DueDate.IsZero() {
		return nil, &ValidationError{Message: "issue date and due date are required"}
	}
	if !params.TotalAmount.IsPositive() {
		return nil, &ValidationError{Message: "total amount must be greater than zero"}
	}

	taxRate := svc.Config.DefaultTaxRate
	if params.TaxRate != nil {
		taxRate = *params.TaxRate
	}
	if taxRate.IsNegative() {
		return nil, &ValidationError{Message: "tax rate cannot be negative"}
	}
	currency := params.Currency
	if currency == "" {
		currency = svc.Config.DefaultCurrency
	}

	invoice := &models.Invoice{
		ClientName:    params.ClientName,
		InvoiceNumber: params.InvoiceNumber,
		IssueDate:     params.IssueDate,
		DueDate:       params.DueDate,
		TotalAmount:   params.TotalAmount,
		Status:        common.InvoiceStatusDraft,
		Description:   params.Description,
		TaxRate:       taxRate,
		Currency:      currency,
		CreatedAt:     time.Now(),
	}

	if err := svc.InvoiceRepo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return invoice, nil
}

func (svc *InvoicehubService) FindInvoice(ctx context.Context, id int64) (*models.Invoice, error) {
	invoice, err := svc.InvoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice: %w", err)
	}
	if invoice == nil {
		return nil, &NotFoundError{Resource: "Invoice"}
	}
	return invoice, nil
}

func (svc *InvoicehubService) Invoices(ctx context.Context, page, limit int) ([]models.Invoice, error) {
	limit, offset := svc.pageBounds(page, limit)
	invoices, err := svc.InvoiceRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (svc *InvoicehubService) UpdateInvoice(ctx context.Context, id int64, params UpdateInvoiceParams) (*models.Invoice, error) {
	invoice, err := svc.FindInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	if !invoice.IsMutable() {
		return nil, &ValidationError{Message: "paid invoices cannot be updated"}
	}
	if params.TotalAmount != nil && !params.TotalAmount.IsPositive() {
		return nil, &ValidationError{Message: "total amount must be greater than zero"}
	}
	if params.TaxRate != nil && params.TaxRate.IsNegative() {
		return nil, &ValidationError{Message: "tax rate cannot be negative"}
	}

	if params.ClientName != nil {
		invoice.ClientName = *params.ClientName
	}
	if params.InvoiceNumber != nil {
		invoice.InvoiceNumber = *params.InvoiceNumber
	}
	if params.IssueDate != nil {
		invoice.IssueDate = *params.IssueDate
	}
	if params.DueDate != nil {
		invoice.DueDate = *params.DueDate
	}
	if params.TotalAmount != nil {
		invoice.TotalAmount = *params.TotalAmount
	}
	if params.Description != nil {
		invoice.Description = *params.Description
	}
	if params.TaxRate != nil {
		invoice.TaxRate = *params.TaxRate
	}
	if params.Currency != nil {
		invoice.Currency = *params.Currency
	}

	if err := svc.InvoiceRepo.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	return invoice, nil
}

func (svc *InvoicehubService) UpdateInvoiceStatus(ctx context.Context, id int64, status string) (*models.Invoice, error) {
	if !models.IsValidInvoiceStatus(status) {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid invoice status %q", status)}
	}
	invoice, err := svc.FindInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	// paid is terminal
	if invoice.Status == common.InvoiceStatusPaid && status != common.InvoiceStatusPaid {
		return nil, &ValidationError{Message: "paid invoices cannot change status"}
	}

	invoice.Status = status
	if err := svc.InvoiceRepo.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice status: %w", err)
	}
	return invoice, nil
}

func (svc *InvoicehubService) DeleteInvoice(ctx context.Context, id int64) error {
	invoice, err := svc.FindInvoice(ctx, id)
	if err != nil {
		return err
	}
	completed, err := svc.PaymentRepo.CountCompletedForInvoice(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check invoice payments: %w", err)
	}
	if completed > 0 {
		return &ValidationError{Message: "invoices with completed payments cannot be deleted"}
	}

	if err := svc.InvoiceRepo.Delete(ctx, invoice); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

// InvoicePayments returns the payments recorded against an invoice together
// with the completed total, computed on demand.
func (svc *InvoicehubService) InvoicePayments(ctx context.Context, id int64) ([]models.Payment, decimal.Decimal, error) {
	if _, err := svc.FindInvoice(ctx, id); err != nil {
		return nil, decimal.Zero, err
	}
	payments, err := svc.PaymentRepo.FindByInvoiceID(ctx, id)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to list invoice payments: %w", err)
	}
	total, err := svc.PaymentRepo.SumCompletedForInvoice(ctx, id)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to sum invoice payments: %w", err)
	}
	return payments, total, nil
}
