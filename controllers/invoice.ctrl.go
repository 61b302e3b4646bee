package controllers

import (
	"net/http"
	"time"

	"github.com/invoicehub/invoicehub.go/db/models"
	"github.com/invoicehub/invoicehub.go/lib/responses"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// InvoiceController : Invoice controller struct
type InvoiceController struct {
	svc *service.InvoicehubService
}

func NewInvoiceController(svc *service.InvoicehubService) *InvoiceController {
	return &InvoiceController{svc: svc}
}

type Invoice struct {
	ID            int64           `json:"id"`
	ClientName    string          `json:"client_name"`
	InvoiceNumber string          `json:"invoice_number"`
	IssueDate     time.Time       `json:"issue_date"`
	DueDate       time.Time       `json:"due_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalWithTax  decimal.Decimal `json:"total_with_tax"`
	Status        string          `json:"status"`
	Description   string          `json:"description,omitempty"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	Currency      string          `json:"currency"`
	IsOverdue     bool            `json:"is_overdue"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     *time.Time      `json:"updated_at,omitempty"`
}

func newInvoiceResponse(invoice *models.Invoice) Invoice {
	response := Invoice{
		ID:            invoice.ID,
		ClientName:    invoice.ClientName,
		InvoiceNumber: invoice.InvoiceNumber,
		IssueDate:     invoice.IssueDate,
		DueDate:       invoice.DueDate,
		TotalAmount:   invoice.TotalAmount,
		TotalWithTax:  invoice.CalculateTotalWithTax(),
		Status:        invoice.Status,
		Description:   invoice.Description,
		TaxRate:       invoice.TaxRate,
		Currency:      invoice.Currency,
		IsOverdue:     invoice.IsOverdue(),
		CreatedAt:     invoice.CreatedAt,
	}
	if !invoice.UpdatedAt.IsZero() {
		updatedAt := invoice.UpdatedAt.Time
		response.UpdatedAt = &updatedAt
	}
	return response
}

type CreateInvoiceRequestBody struct {
	ClientName    string           `json:"client_name" validate:"required"`
	InvoiceNumber string           `json:"invoice_number" validate:"required"`
	IssueDate     time.Time        `json:"issue_date" validate:"required"`
	DueDate       time.Time        `json:"due_date" validate:"required"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	Description   string           `json:"description"`
	TaxRate       *decimal.Decimal `json:"tax_rate"`
	Currency      string           `json:"currency" validate:"omitempty,len=3"`
}

type UpdateInvoiceRequestBody struct {
	ClientName    *string          `json:"client_name"`
	InvoiceNumber *string          `json:"invoice_number"`
	IssueDate     *time.Time       `json:"issue_date"`
	DueDate       *time.Time       `json:"due_date"`
	TotalAmount   *decimal.Decimal `json:"total_amount"`
	Description   *string          `json:"description"`
	TaxRate       *decimal.Decimal `json:"tax_rate"`
	Currency      *string          `json:"currency" validate:"omitempty,len=3"`
}

type UpdateInvoiceStatusRequestBody struct {
	Status string `json:"status" validate:"required"`
}

type GetInvoicesResponseBody struct {
	Invoices []Invoice `json:"invoices"`
}

type GetInvoicePaymentsResponseBody struct {
	Payments  []Payment       `json:"payments"`
	TotalPaid decimal.Decimal `json:"total_paid"`
}

// CreateInvoice godoc
// @Summary      Create a new invoice
// @Description  Creates a draft invoice for a client
// @Accept       json
// @Produce      json
// @Tags         Invoice
// @Param        invoice  body      CreateInvoiceRequestBody  True  "Create Invoice"
// @Success      201      {object}  Invoice
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /invoices [post]
func (controller *InvoiceController) CreateInvoice(c echo.Context) error {
	var body CreateInvoiceRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create invoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid create invoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	invoice, err := controller.svc.CreateInvoice(c.Request().Context(), service.CreateInvoiceParams{
		ClientName:    body.ClientName,
		InvoiceNumber: body.InvoiceNumber,
		IssueDate:     body.IssueDate,
		DueDate:       body.DueDate,
		TotalAmount:   body.TotalAmount,
		Description:   body.Description,
		TaxRate:       body.TaxRate,
		Currency:      body.Currency,
	})
	if err != nil {
		c.Logger().Errorf("Error creating invoice: invoice_number:%s error: %v", body.InvoiceNumber, err)
		return writeServiceError(c, err)
	}

	response := newInvoiceResponse(invoice)
	return c.JSON(http.StatusCreated, &response)
}

// GetInvoice godoc
// @Summary      Get a specific invoice
// @Description  Retrieve an invoice by id
// @Produce      json
// @Tags         Invoice
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {object}  Invoice
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /invoices/{id} [get]
func (controller *InvoiceController) GetInvoice(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	invoice, err := controller.svc.FindInvoice(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := newInvoiceResponse(invoice)
	return c.JSON(http.StatusOK, &response)
}

// GetInvoices godoc
// @Summary      Retrieve invoices
// @Description  Returns a page of invoices
// @Produce      json
// @Tags         Invoice
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  GetInvoicesResponseBody
// @Failure      500    {object}  responses.ErrorResponse
// @Router       /invoices [get]
func (controller *InvoiceController) GetInvoices(c echo.Context) error {
	page, limit := pageParams(c)

	invoices, err := controller.svc.Invoices(c.Request().Context(), page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]Invoice, len(invoices))
	for i, invoice := range invoices {
		invoice := invoice
		response[i] = newInvoiceResponse(&invoice)
	}
	return c.JSON(http.StatusOK, &GetInvoicesResponseBody{Invoices: response})
}

// UpdateInvoice godoc
// @Summary      Update an invoice
// @Description  Applies a partial update to an unpaid invoice
// @Accept       json
// @Produce      json
// @Tags         Invoice
// @Param        id       path      int                       true  "Invoice ID"
// @Param        invoice  body      UpdateInvoiceRequestBody  True  "Update Invoice"
// @Success      200      {object}  Invoice
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Router       /invoices/{id} [put]
func (controller *InvoiceController) UpdateInvoice(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	var body UpdateInvoiceRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load update invoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid update invoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	invoice, err := controller.svc.UpdateInvoice(c.Request().Context(), id, service.UpdateInvoiceParams{
		ClientName:    body.ClientName,
		InvoiceNumber: body.InvoiceNumber,
		IssueDate:     body.IssueDate,
		DueDate:       body.DueDate,
		TotalAmount:   body.TotalAmount,
		Description:   body.Description,
		TaxRate:       body.TaxRate,
		Currency:      body.Currency,
	})
	if err != nil {
		c.Logger().Errorf("Error updating invoice: invoice_id:%v error: %v", id, err)
		return writeServiceError(c, err)
	}

	response := newInvoiceResponse(invoice)
	return c.JSON(http.StatusOK, &response)
}

// UpdateInvoiceStatus godoc
// @Summary      Update invoice status
// @Description  Moves an invoice through its lifecycle
// @Accept       json
// @Produce      json
// @Tags         Invoice
// @Param        id      path      int                             true  "Invoice ID"
// @Param        status  body      UpdateInvoiceStatusRequestBody  True  "New status"
// @Success      200     {object}  Invoice
// @Failure      400     {object}  responses.ErrorResponse
// @Failure      404     {object}  responses.ErrorResponse
// @Router       /invoices/{id}/status [put]
func (controller *InvoiceController) UpdateInvoiceStatus(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	var body UpdateInvoiceStatusRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load update invoice status request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	invoice, err := controller.svc.UpdateInvoiceStatus(c.Request().Context(), id, body.Status)
	if err != nil {
		c.Logger().Errorf("Error updating invoice status: invoice_id:%v status:%s error: %v", id, body.Status, err)
		return writeServiceError(c, err)
	}

	response := newInvoiceResponse(invoice)
	return c.JSON(http.StatusOK, &response)
}

// DeleteInvoice godoc
// @Summary      Delete an invoice
// @Description  Deletes an invoice without completed payments
// @Tags         Invoice
// @Param        id  path  int  true  "Invoice ID"
// @Success      204
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /invoices/{id} [delete]
func (controller *InvoiceController) DeleteInvoice(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := controller.svc.DeleteInvoice(c.Request().Context(), id); err != nil {
		c.Logger().Errorf("Error deleting invoice: invoice_id:%v error: %v", id, err)
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetInvoicePayments godoc
// @Summary      Retrieve payments for an invoice
// @Description  Returns the payments recorded against an invoice and the completed total
// @Produce      json
// @Tags         Invoice
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {object}  GetInvoicePaymentsResponseBody
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /invoices/{id}/payments [get]
func (controller *InvoiceController) GetInvoicePayments(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	payments, totalPaid, err := controller.svc.InvoicePayments(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := GetInvoicePaymentsResponseBody{
		Payments:  make([]Payment, len(payments)),
		TotalPaid: totalPaid,
	}
	for i, payment := range payments {
		payment := payment
		response.Payments[i] = newPaymentResponse(&payment)
	}
	return c.JSON(http.StatusOK, &response)
}
