package service

import (
	"github.com/invoicehub/invoicehub.go/db/repositories"
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

type InvoicehubService struct {
	Config      *Config
	DB          *bun.DB
	Logger      *lecho.Logger
	InvoiceRepo repositories.InvoiceRepository
	PaymentRepo repositories.PaymentRepository
}

// pageBounds translates 1-based page/limit query values into limit/offset,
// applying the configured defaults and the server-side limit cap.
func (svc *InvoicehubService) pageBounds(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = svc.Config.DefaultPageLimit
	}
	if limit > svc.Config.MaxPageLimit {
		limit = svc.Config.MaxPageLimit
	}
	return limit, (page - 1) * limit
}
