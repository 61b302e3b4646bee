package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/invoicehub/invoicehub.go/lib/responses"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// idParam parses the :id path parameter. A missing or non-numeric id is a bad
// request, not a miss.
func idParam(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

// writeServiceError translates the service error taxonomy into the response
// contract: ValidationError -> 400, NotFoundError -> 404, anything else -> 500
// with the cause captured.
func writeServiceError(c echo.Context, err error) error {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, responses.ValidationFailedError(validationErr.Message))
	case errors.As(err, &notFoundErr):
		if notFoundErr.Resource == "Payment" {
			return c.JSON(http.StatusNotFound, responses.PaymentNotFoundError)
		}
		return c.JSON(http.StatusNotFound, responses.InvoiceNotFoundError)
	default:
		c.Logger().Errorf("Unexpected service error: %v", err)
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
}
