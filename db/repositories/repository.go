package repositories

import (
	"context"

	"github.com/invoicehub/invoicehub.go/db/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=./mock_repositories/repositories.go github.com/invoicehub/invoicehub.go/db/repositories InvoiceRepository,PaymentRepository

// Repositories are thin persistence gateways over the bun models.
// Lookups return (nil, nil) when the row does not exist, the services
// decide whether a miss is an error.

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	FindByID(ctx context.Context, id int64) (*models.Invoice, error)
	FindAll(ctx context.Context, limit, offset int) ([]models.Invoice, error)
	Update(ctx context.Context, invoice *models.Invoice) error
	Delete(ctx context.Context, invoice *models.Invoice) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByID(ctx context.Context, id int64) (*models.Payment, error)
	FindAll(ctx context.Context, limit, offset int) ([]models.Payment, error)
	FindByInvoiceID(ctx context.Context, invoiceID int64) ([]models.Payment, error)
	CountCompletedForInvoice(ctx context.Context, invoiceID int64) (int, error)
	SumCompletedForInvoice(ctx context.Context, invoiceID int64) (decimal.Decimal, error)
	Update(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, payment *models.Payment) error
}
