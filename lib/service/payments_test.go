package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/invoicehub/invoicehub.go/common"
	"github.com/invoicehub/invoicehub.go/db/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validCreatePaymentParams() CreatePaymentParams {
	return CreatePaymentParams{
		InvoiceID:     1,
		Amount:        decimal.NewFromInt(500),
		PaymentDate:   time.Now(),
		PaymentMethod: common.PaymentMethodBankTransfer,
	}
}

func TestCreatePaymentForcesPendingStatus(t *testing.T) {
	svc, invoiceRepo, paymentRepo := newTestService(t)
	invoiceRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&models.Invoice{ID: 1}, nil)

	var created *models.Payment
	paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *models.Payment) {
		created = p
	}).Return(nil)

	payment, err := svc.CreatePayment(context.Background(), validCreatePaymentParams())
	assert.NoError(t, err)
	assert.Equal(t, common.PaymentStatusPending, payment.Status)
	assert.Equal(t, common.PaymentStatusPending, created.Status)
	assert.False(t, payment.CreatedAt.IsZero())
}

func TestCreatePaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, _, _ := newTestService(t)

	params := validCreatePaymentParams()
	params.Amount = decimal.Zero

	_, err := svc.CreatePayment(context.Background(), params)
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestCreatePaymentRequiresPaymentDate(t *testing.T) {
	svc, _, _ := newTestService(t)

	params := validCreatePaymentParams()
	params.PaymentDate = time.Time{}

	_, err := svc.CreatePayment(context.Background(), params)
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestCreatePaymentRejectsUnknownMethod(t *testing.T) {
	svc, _, _ := newTestService(t)

	params := validCreatePaymentParams()
	params.PaymentMethod = "check"

	_, err := svc.CreatePayment(context.Background(), params)
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestCreatePaymentRejectsMissingInvoice(t *testing.T) {
	svc, invoiceRepo, _ := newTestService(t)
	invoiceRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(nil, nil)

	_, err := svc.CreatePayment(context.Background(), validCreatePaymentParams())
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "invoice does not exist", validationErr.Message)
}

func TestCreatePaymentWrapsRepositoryError(t *testing.T) {
	svc, invoiceRepo, paymentRepo := newTestService(t)
	invoiceRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&models.Invoice{ID: 1}, nil)
	storeErr := errors.New("connection refused")
	paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(storeErr)

	_, err := svc.CreatePayment(context.Background(), validCreatePaymentParams())
	assert.True(t, errors.Is(err, storeErr))
}

func TestFindPaymentNotFound(t *testing.T) {
	svc, _, paymentRepo := newTestService(t)
	paymentRepo.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, nil)

	_, err := svc.FindPayment(context.Background(), 404)
	var notFoundErr *NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
	assert.Equal(t, "Payment", notFoundErr.Resource)
}

func TestPaymentsUsesDefaultPaging(t *testing.T) {
	svc, _, paymentRepo := newTestService(t)
	paymentRepo.EXPECT().FindAll(gomock.Any(), 10, 0).Return([]models.Payment{}, nil)

	_, err := svc.Payments(context.Background(), 0, 0)
	assert.NoError(t, err)
}

func TestUpdatePaymentMergesPatch(t *testing.T) {
	svc, _, paymentRepo := newTestService(t)
	paymentRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&models.Payment{
		ID:            1,
		InvoiceID:     1,
		Amount:        decimal.NewFromInt(500),
		PaymentMethod: common.PaymentMethodCash,
		Status:        common.PaymentStatusPending,
	}, nil)
	paymentRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	notes := "received in person"
	payment, err := svc.UpdatePayment(context.Background(), 1, UpdatePaymentParams{Notes: &notes})
	assert.NoError(t, err)
	assert.Equal(t, "received in person", payment.Notes)
	assert.True(t, decimal.NewFromInt(500).Equal(payment.Amount))
	assert.Equal(t, common.PaymentStatusPending, payment.Status)
}

func TestUpdatePaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, _, paymentRepo := newTestService(t)
	paymentRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&models.Payment{
		ID:     1,
		Status: common.PaymentStatusPending,
	}, nil)

	amount := decimal.NewFromInt(-1)
	_, err := svc.UpdatePayment(context.Background(), 1, UpdatePaymentParams{Amount: &amount})
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestUpdatePaymentStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"pending to completed", common.PaymentStatusPending, common.PaymentStatusCompleted, true},
		{"pending to failed", common.PaymentStatusPending, common.PaymentStatusFailed, true},
		{"completed is terminal", common.PaymentStatusCompleted, common.PaymentStatusFailed, false},
		{"failed is terminal", common.PaymentStatusFailed, common.PaymentStatusCompleted, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, paymentRepo := newTestService(t)
			paymentRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&models.Payment{
				ID:     1,
				Status: tt.from,
			}, nil)
			if tt.allowed {
				paymentRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			}

			payment, err := svc.UpdatePaymentStatus(context.Background(), 1, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
				assert.Equal(t, tt.to, payment.Status)
			} else {
				var validationErr *ValidationError
				assert.True(t, errors.As(err, &validationErr))
			}
		})
	}
}

func TestUpdatePaymentStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.UpdatePaymentStatus(context.Background(), 1, "refunded")
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestDeletePaymentNotFound(t *testing.T) {
	svc, _, paymentRepo := newTestService(t)
	paymentRepo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil, nil)

	err := svc.DeletePayment(context.Background(), 7)
	var notFoundErr *NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
}

func TestDeletePaymentDeletes(t *testing.T) {
	svc, _, paymentRepo := newTestService(t)
	payment := &models.Payment{ID: 7, Status: common.PaymentStatusPending}
	paymentRepo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(payment, nil)
	paymentRepo.EXPECT().Delete(gomock.Any(), payment).Return(nil)

	assert.NoError(t, svc.DeletePayment(context.Background(), 7))
}
