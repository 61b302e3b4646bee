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

// PaymentController : Payment controller struct
type PaymentController struct {
	svc *service.InvoicehubService
}

func NewPaymentController(svc *service.InvoicehubService) *PaymentController {
	return &PaymentController{svc: svc}
}

type Payment struct {
	ID            int64           `json:"id"`
	InvoiceID     int64           `json:"invoice_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     *time.Time      `json:"updated_at,omitempty"`
}

func newPaymentResponse(payment *models.Payment) Payment {
	response := Payment{
		ID:            payment.ID,
		InvoiceID:     payment.InvoiceID,
		Amount:        payment.Amount,
		PaymentDate:   payment.PaymentDate,
		PaymentMethod: payment.PaymentMethod,
		Status:        payment.Status,
		TransactionID: payment.TransactionID,
		Notes:         payment.Notes,
		CreatedAt:     payment.CreatedAt,
	}
	if !payment.UpdatedAt.IsZero() {
		updatedAt := payment.UpdatedAt.Time
		response.UpdatedAt = &updatedAt
	}
	return response
}

type CreatePaymentRequestBody struct {
	InvoiceID     int64           `json:"invoice_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date" validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"required"`
	TransactionID string          `json:"transaction_id"`
	Notes         string          `json:"notes"`
}

type UpdatePaymentRequestBody struct {
	Amount        *decimal.Decimal `json:"amount"`
	PaymentDate   *time.Time       `json:"payment_date"`
	PaymentMethod *string          `json:"payment_method"`
	TransactionID *string          `json:"transaction_id"`
	Notes         *string          `json:"notes"`
}

type UpdatePaymentStatusRequestBody struct {
	Status string `json:"status" validate:"required"`
}

type GetPaymentsResponseBody struct {
	Payments []Payment `json:"payments"`
}

// CreatePayment godoc
// @Summary      Record a new payment
// @Description  Records a pending payment against an existing invoice
// @Accept       json
// @Produce      json
// @Tags         Payment
// @Param        payment  body      CreatePaymentRequestBody  True  "Create Payment"
// @Success      201      {object}  Payment
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /payments [post]
func (controller *PaymentController) CreatePayment(c echo.Context) error {
	var body CreatePaymentRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create payment request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid create payment request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	payment, err := controller.svc.CreatePayment(c.Request().Context(), service.CreatePaymentParams{
		InvoiceID:     body.InvoiceID,
		Amount:        body.Amount,
		PaymentDate:   body.PaymentDate,
		PaymentMethod: body.PaymentMethod,
		TransactionID: body.TransactionID,
		Notes:         body.Notes,
	})
	if err != nil {
		c.Logger().Errorf("Error creating payment: invoice_id:%v error: %v", body.InvoiceID, err)
		return writeServiceError(c, err)
	}

	response := newPaymentResponse(payment)
	return c.JSON(http.StatusCreated, &response)
}

// GetPayment godoc
// @Summary      Get a specific payment
// @Description  Retrieve a payment by id
// @Produce      json
// @Tags         Payment
// @Param        id   path      int  true  "Payment ID"
// @Success      200  {object}  Payment
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /payments/{id} [get]
func (controller *PaymentController) GetPayment(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	payment, err := controller.svc.FindPayment(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := newPaymentResponse(payment)
	return c.JSON(http.StatusOK, &response)
}

// GetPayments godoc
// @Summary      Retrieve payments
// @Description  Returns a page of payments
// @Produce      json
// @Tags         Payment
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  GetPaymentsResponseBody
// @Failure      500    {object}  responses.ErrorResponse
// @Router       /payments [get]
func (controller *PaymentController) GetPayments(c echo.Context) error {
	page, limit := pageParams(c)

	payments, err := controller.svc.Payments(c.Request().Context(), page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]Payment, len(payments))
	for i, payment := range payments {
		payment := payment
		response[i] = newPaymentResponse(&payment)
	}
	return c.JSON(http.StatusOK, &GetPaymentsResponseBody{Payments: response})
}

// UpdatePayment godoc
// @Summary      Update a payment
// @Description  Applies a partial update to a payment, status excluded
// @Accept       json
// @Produce      json
// @Tags         Payment
// @Param        id       path      int                       true  "Payment ID"
// @Param        payment  body      UpdatePaymentRequestBody  True  "Update Payment"
// @Success      200      {object}  Payment
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Router       /payments/{id} [put]
func (controller *PaymentController) UpdatePayment(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	var body UpdatePaymentRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load update payment request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid update payment request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	payment, err := controller.svc.UpdatePayment(c.Request().Context(), id, service.UpdatePaymentParams{
		Amount:        body.Amount,
		PaymentDate:   body.PaymentDate,
		PaymentMethod: body.PaymentMethod,
		TransactionID: body.TransactionID,
		Notes:         body.Notes,
	})
	if err != nil {
		c.Logger().Errorf("Error updating payment: payment_id:%v error: %v", id, err)
		return writeServiceError(c, err)
	}

	response := newPaymentResponse(payment)
	return c.JSON(http.StatusOK, &response)
}

// UpdatePaymentStatus godoc
// @Summary      Update payment status
// @Description  Moves a pending payment to completed or failed
// @Accept       json
// @Produce      json
// @Tags         Payment
// @Param        id      path      int                             true  "Payment ID"
// @Param        status  body      UpdatePaymentStatusRequestBody  True  "New status"
// @Success      200     {object}  Payment
// @Failure      400     {object}  responses.ErrorResponse
// @Failure      404     {object}  responses.ErrorResponse
// @Router       /payments/{id}/status [put]
func (controller *PaymentController) UpdatePaymentStatus(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	var body UpdatePaymentStatusRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load update payment status request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	payment, err := controller.svc.UpdatePaymentStatus(c.Request().Context(), id, body.Status)
	if err != nil {
		c.Logger().Errorf("Error updating payment status: payment_id:%v status:%s error: %v", id, body.Status, err)
		return writeServiceError(c, err)
	}

	response := newPaymentResponse(payment)
	return c.JSON(http.StatusOK, &response)
}

// DeletePayment godoc
// @Summary      Delete a payment
// @Description  Deletes a payment by id
// @Tags         Payment
// @Param        id  path  int  true  "Payment ID"
// @Success      204
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /payments/{id} [delete]
func (controller *PaymentController) DeletePayment(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := controller.svc.DeletePayment(c.Request().Context(), id); err != nil {
		c.Logger().Errorf("Error deleting payment: payment_id:%v error: %v", id, err)
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
