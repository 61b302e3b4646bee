package controllers

import (
	"net/http"

	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// GetInfoController : GetInfoController struct
type GetInfoController struct {
	svc *service.InvoicehubService
}

func NewGetInfoController(svc *service.InvoicehubService) *GetInfoController {
	return &GetInfoController{svc: svc}
}

type InfoResponse struct {
	Name            string          `json:"name"`
	DefaultCurrency string          `json:"default_currency"`
	DefaultTaxRate  decimal.Decimal `json:"default_tax_rate"`
}

// GetInfo godoc
// @Summary      Get service info
// @Description  Returns the service name and billing defaults
// @Produce      json
// @Tags         System
// @Success      200  {object}  InfoResponse
// @Router       /info [get]
func (controller *GetInfoController) GetInfo(c echo.Context) error {
	name := "invoicehub"
	if controller.svc.Config.CustomName != "" {
		name = controller.svc.Config.CustomName
	}
	return c.JSON(http.StatusOK, &InfoResponse{
		Name:            name,
		DefaultCurrency: controller.svc.Config.DefaultCurrency,
		DefaultTaxRate:  controller.svc.Config.DefaultTaxRate,
	})
}
