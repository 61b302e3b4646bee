package service

import (
	"context"
	"fmt"
	"time"

	"github.com/invoicehub/invoicehub.go/common"
	"github.com/invoicehub/invoicehub.go/db/models"
	"github.com/shopspring/decimal"
)

type CreatePaymentParams struct {
	InvoiceID     int64
	Amount        decimal.Decimal
	PaymentDate   time.Time
	PaymentMethod string
	TransactionID string
	Notes         string
}

// UpdatePaymentParams carries a partial patch, nil fields are left untouched.
// Status is deliberately absent, it only moves through UpdatePaymentStatus.
type UpdatePaymentParams struct {
	Amount        *decimal.Decimal
	PaymentDate   *time.Time
	PaymentMethod *string
	TransactionID *string
	Notes         *string
}

// CreatePayment records a new payment against an existing invoice. The status
// is always forced to pending and the creation timestamp is set here, caller
// input for either is ignored.
func (svc *InvoicehubService) CreatePayment(ctx context.Context, params CreatePaymentParams) (*models.Payment, error) {
	if !params.Amount.IsPositive() {
		return nil, &ValidationError{Message: "payment amount must be greater than zero"}
	}
	if params.PaymentDate.IsZero() {
		return nil, &ValidationError{Message: "payment date is required"}
	}
	if !models.IsValidPaymentMethod(params.PaymentMethod) {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid payment method %q", params.PaymentMethod)}
	}

	// The FK alone would catch this on insert, but we check explicitly so the
	// caller gets a validation failure instead of a bare store error.
	invoice, err := svc.InvoiceRepo.FindByID(ctx, params.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice: %w", err)
	}
	if invoice == nil {
		return nil, &ValidationError{Message: "invoice does not exist"}
	}

	payment := &models.Payment{
		InvoiceID:     params.InvoiceID,
		Amount:        params.Amount,
		PaymentDate:   params.PaymentDate,
		PaymentMethod: params.PaymentMethod,
		Status:        common.PaymentStatusPending,
		TransactionID: params.TransactionID,
		Notes:         params.Notes,
		CreatedAt:     time.Now(),
	}

	if err := svc.PaymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return payment, nil
}

func (svc *InvoicehubService) FindPayment(ctx context.Context, id int64) (*models.Payment, error) {
	payment, err := svc.PaymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	if payment == nil {
		return nil, &NotFoundError{Resource: "Payment"}
	}
	return payment, nil
}

func (svc *InvoicehubService) Payments(ctx context.Context, page, limit int) ([]models.Payment, error) {
	limit, offset := svc.pageBounds(page, limit)
	payments, err := svc.PaymentRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (svc *InvoicehubService) UpdatePayment(ctx context.Context, id int64, params UpdatePaymentParams) (*models.Payment, error) {
	payment, err := svc.FindPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	if params.Amount != nil && !params.Amount.IsPositive() {
		return nil, &ValidationError{Message: "payment amount must be greater than zero"}
	}
	if params.PaymentDate != nil && params.PaymentDate.IsZero() {
		return nil, &ValidationError{Message: "payment date is required"}
	}
	if params.PaymentMethod != nil && !models.IsValidPaymentMethod(*params.PaymentMethod) {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid payment method %q", *params.PaymentMethod)}
	}

	if params.Amount != nil {
		payment.Amount = *params.Amount
	}
	if params.PaymentDate != nil {
		payment.PaymentDate = *params.PaymentDate
	}
	if params.PaymentMethod != nil {
		payment.PaymentMethod = *params.PaymentMethod
	}
	if params.TransactionID != nil {
		payment.TransactionID = *params.TransactionID
	}
	if params.Notes != nil {
		payment.Notes = *params.Notes
	}

	if err := svc.PaymentRepo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return payment, nil
}

func (svc *InvoicehubService) UpdatePaymentStatus(ctx context.Context, id int64, status string) (*models.Payment, error) {
	if !models.IsValidPaymentStatus(status) {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid payment status %q", status)}
	}
	payment, err := svc.FindPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !payment.CanTransitionTo(status) {
		return nil, &ValidationError{Message: fmt.Sprintf("payment status cannot change from %s to %s", payment.Status, status)}
	}

	payment.Status = status
	if err := svc.PaymentRepo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	return payment, nil
}

func (svc *InvoicehubService) DeletePayment(ctx context.Context, id int64) error {
	payment, err := svc.FindPayment(ctx, id)
	if err != nil {
		return err
	}
	if err := svc.PaymentRepo.Delete(ctx, payment); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}
