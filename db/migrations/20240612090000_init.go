package migrations

import (
	"context"

	"github.com/invoicehub/invoicehub.go/db/models"
	"github.com/uptrace/bun"
)

/* This init reflects the latest model fields when run on a fresh db.
When adding/removing columns in subsequent migrations use IfNotExists/IfExists,
otherwise re-running against an existing schema results in errors. */
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if _, err := db.NewCreateTable().
			Model((*models.Invoice)(nil)).
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().
			Model((*models.Payment)(nil)).
			IfNotExists().
			ForeignKey(`("invoice_id") REFERENCES "invoices" ("id")`).
			Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().
			Model((*models.Payment)(nil)).
			Index("payments_invoice_id_idx").
			IfNotExists().
			Column("invoice_id").
			Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().
			Model((*models.Payment)(nil)).
			Index("payments_status_idx").
			IfNotExists().
			Column("status").
			Exec(ctx); err != nil {
			return err
		}

		return nil
	}, nil)
}
