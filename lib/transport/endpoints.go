package transport

import (
	"github.com/invoicehub/invoicehub.go/controllers"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

func RegisterEndpoints(svc *service.InvoicehubService, e *echo.Echo, strictRateLimitMiddleware echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	invoiceCtrl := controllers.NewInvoiceController(svc)
	paymentCtrl := controllers.NewPaymentController(svc)

	// Read endpoints
	e.GET("/invoices", invoiceCtrl.GetInvoices, logMw)
	e.GET("/invoices/:id", invoiceCtrl.GetInvoice, logMw)
	e.GET("/invoices/:id/payments", invoiceCtrl.GetInvoicePayments, logMw)
	e.GET("/payments", paymentCtrl.GetPayments, logMw)
	e.GET("/payments/:id", paymentCtrl.GetPayment, logMw)

	// Mutating endpoints get the stricter rate limit
	e.POST("/invoices", invoiceCtrl.CreateInvoice, strictRateLimitMiddleware, logMw)
	e.PUT("/invoices/:id", invoiceCtrl.UpdateInvoice, strictRateLimitMiddleware, logMw)
	e.PUT("/invoices/:id/status", invoiceCtrl.UpdateInvoiceStatus, strictRateLimitMiddleware, logMw)
	e.DELETE("/invoices/:id", invoiceCtrl.DeleteInvoice, strictRateLimitMiddleware, logMw)
	e.POST("/payments", paymentCtrl.CreatePayment, strictRateLimitMiddleware, logMw)
	e.PUT("/payments/:id", paymentCtrl.UpdatePayment, strictRateLimitMiddleware, logMw)
	e.PUT("/payments/:id/status", paymentCtrl.UpdatePaymentStatus, strictRateLimitMiddleware, logMw)
	e.DELETE("/payments/:id", paymentCtrl.DeletePayment, strictRateLimitMiddleware, logMw)

	e.GET("/health", controllers.NewHealthController().Check)
	e.GET("/info", controllers.NewGetInfoController(svc).GetInfo, CreateCacheClient().Middleware())
}
