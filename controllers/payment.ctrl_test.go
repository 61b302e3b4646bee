package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/go-playground/validator/v10"
	"github.com/invoicehub/invoicehub.go/common"
	"github.com/invoicehub/invoicehub.go/controllers"
	"github.com/invoicehub/invoicehub.go/db/models"
	"github.com/invoicehub/invoicehub.go/db/repositories/mock_repositories"
	"github.com/invoicehub/invoicehub.go/lib"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func setupPaymentController(t *testing.T) (*echo.Echo, *controllers.PaymentController, *mock_repositories.MockInvoiceRepository, *mock_repositories.MockPaymentRepository) {
	ctrl := gomock.NewController(t)
	invoiceRepo := mock_repositories.NewMockInvoiceRepository(ctrl)
	paymentRepo := mock_repositories.NewMockPaymentRepository(ctrl)

	svc := &service.InvoicehubService{
		Config: &service.Config{
			DefaultPageLimit: 10,
			MaxPageLimit:     100,
			DefaultTaxRate:   decimal.RequireFromString("0.10"),
			DefaultCurrency:  "JPY",
		},
		InvoiceRepo: invoiceRepo,
		PaymentRepo: paymentRepo,
	}

	e := echo.New()
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	return e, controllers.NewPaymentController(svc), invoiceRepo, paymentRepo
}

func TestCreatePaymentEndpoint(t *testing.T) {
	e, controller, invoiceRepo, paymentRepo := setupPaymentController(t)
	invoiceRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&models.Invoice{ID: 1}, nil)
	paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	// the status field is not part of the request contract, a caller
	// supplying one still gets a pending payment back
	body := `{
		"invoice_id": 1,
		"amount": "500",
		"payment_date": "2024-06-15T00:00:00Z",
		"payment_method": "bank_transfer",
		"status": "completed"
	}`
	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, controller.CreatePayment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response controllers.Payment
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, common.PaymentStatusPending, response.Status)
	assert.Equal(t, int64(1), response.InvoiceID)
}

func TestCreatePaymentEndpointMissingInvoice(t *testing.T) {
	e, controller, invoiceRepo, _ := setupPaymentController(t)
	invoiceRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(nil, nil)

	body := `{
		"invoice_id": 42,
		"amount": "500",
		"payment_date": "2024-06-15T00:00:00Z",
		"payment_method": "cash"
	}`
	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, controller.CreatePayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Validation Error", "message": "invoice does not exist"}`, rec.Body.String())
}

func TestCreatePaymentEndpointMissingFields(t *testing.T) {
	e, controller, _, _ := setupPaymentController(t)

	body := `{"amount": "500"}`
	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, controller.CreatePayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPaymentEndpointNotFound(t *testing.T) {
	e, controller, _, paymentRepo := setupPaymentController(t)
	paymentRepo.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/payments/404", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/payments/:id")
	c.SetParamNames("id")
	c.SetParamValues("404")

	assert.NoError(t, controller.GetPayment(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Not Found", "message": "Payment not found"}`, rec.Body.String())
}

func TestGetPaymentsEndpoint(t *testing.T) {
	e, controller, _, paymentRepo := setupPaymentController(t)
	paymentRepo.EXPECT().FindAll(gomock.Any(), 10, 0).Return([]models.Payment{
		{ID: 1, InvoiceID: 1, Amount: decimal.NewFromInt(500), Status: common.PaymentStatusPending},
		{ID: 2, InvoiceID: 1, Amount: decimal.NewFromInt(300), Status: common.PaymentStatusCompleted},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/payments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, controller.GetPayments(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response controllers.GetPaymentsResponseBody
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response.Payments, 2)
}

func TestUpdatePaymentStatusEndpoint(t *testing.T) {
	e, controller, _, paymentRepo := setupPaymentController(t)
	paymentRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&models.Payment{
		ID:     1,
		Status: common.PaymentStatusPending,
	}, nil)
	paymentRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	body := `{"status": "completed"}`
	req := httptest.NewRequest(http.MethodPut, "/payments/1/status", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/payments/:id/status")
	c.SetParamNames("id")
	c.SetParamValues("1")

	assert.NoError(t, controller.UpdatePaymentStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response controllers.Payment
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, common.PaymentStatusCompleted, response.Status)
}

func TestUpdatePaymentStatusEndpointTerminal(t *testing.T) {
	e, controller, _, paymentRepo := setupPaymentController(t)
	paymentRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&models.Payment{
		ID:     1,
		Status: common.PaymentStatusCompleted,
	}, nil)

	body := `{"status": "failed"}`
	req := httptest.NewRequest(http.MethodPut, "/payments/1/status", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/payments/:id/status")
	c.SetParamNames("id")
	c.SetParamValues("1")

	assert.NoError(t, controller.UpdatePaymentStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletePaymentEndpoint(t *testing.T) {
	e, controller, _, paymentRepo := setupPaymentController(t)
	payment := &models.Payment{ID: 1, Status: common.PaymentStatusPending}
	paymentRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(payment, nil)
	paymentRepo.EXPECT().Delete(gomock.Any(), payment).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/payments/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/payments/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")

	assert.NoError(t, controller.DeletePayment(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
