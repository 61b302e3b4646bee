package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/invoicehub/invoicehub.go/db/models"
	"github.com/uptrace/bun"
)

type invoiceRepository struct {
	db *bun.DB
}

func NewInvoiceRepository(db *bun.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	_, err := r.db.NewInsert().Model(invoice).Exec(ctx)
	return err
}

func (r *invoiceRepository) FindByID(ctx context.Context, id int64) (*models.Invoice, error) {
	var invoice models.Invoice

	err := r.db.NewSelect().Model(&invoice).Where("invoice.id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) FindAll(ctx context.Context, limit, offset int) ([]models.Invoice, error) {
	invoices := []models.Invoice{}

	err := r.db.NewSelect().
		Model(&invoices).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *models.Invoice) error {
	_, err := r.db.NewUpdate().Model(invoice).WherePK().Exec(ctx)
	return err
}

func (r *invoiceRepository) Delete(ctx context.Context, invoice *models.Invoice) error {
	_, err := r.db.NewDelete().Model(invoice).WherePK().Exec(ctx)
	return err
}
