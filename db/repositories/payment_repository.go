package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/invoicehub/invoicehub.go/common"
	"github.com/invoicehub/invoicehub.go/db/models"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type paymentRepository struct {
	db *bun.DB
}

func NewPaymentRepository(db *bun.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	_, err := r.db.NewInsert().Model(payment).Exec(ctx)
	return err
}

func (r *paymentRepository) FindByID(ctx context.Context, id int64) (*models.Payment, error) {
	var payment models.Payment

	err := r.db.NewSelect().Model(&payment).Where("payment.id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindAll(ctx context.Context, limit, offset int) ([]models.Payment, error) {
	payments := []models.Payment{}

	err := r.db.NewSelect().
		Model(&payments).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) FindByInvoiceID(ctx context.Context, invoiceID int64) ([]models.Payment, error) {
	payments := []models.Payment{}

	err := r.db.NewSelect().
		Model(&payments).
		Where("payment.invoice_id = ?", invoiceID).
		Order("payment_date ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) CountCompletedForInvoice(ctx context.Context, invoiceID int64) (int, error) {
	return r.db.NewSelect().
		Model((*models.Payment)(nil)).
		Where("payment.invoice_id = ? AND payment.status = ?", invoiceID, common.PaymentStatusCompleted).
		Count(ctx)
}

// SumCompletedForInvoice computes the settled total on demand, it is never cached.
func (r *paymentRepository) SumCompletedForInvoice(ctx context.Context, invoiceID int64) (decimal.Decimal, error) {
	var total decimal.Decimal

	err := r.db.NewSelect().
		Model((*models.Payment)(nil)).
		ColumnExpr("COALESCE(SUM(amount), 0)").
		Where("payment.invoice_id = ? AND payment.status = ?", invoiceID, common.PaymentStatusCompleted).
		Scan(ctx, &total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	_, err := r.db.NewUpdate().Model(payment).WherePK().Exec(ctx)
	return err
}

func (r *paymentRepository) Delete(ctx context.Context, payment *models.Payment) error {
	_, err := r.db.NewDelete().Model(payment).WherePK().Exec(ctx)
	return err
}
