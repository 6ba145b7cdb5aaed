package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/rutvikbarbhai/stockflow/internal/application/dto"
)

// LowStockService contrato mínimo que necesita el handler de alertas.
type LowStockService interface {
	LowStockAlerts(ctx context.Context, companyID string, windowDays int) (*dto.LowStockAlertsResponse, error)
}

// AlertHandler expone el motor de alertas de stock bajo (protegido).
type AlertHandler struct {
	svc               LowStockService
	defaultWindowDays int
}

// NewAlertHandler construye el handler. defaultWindowDays aplica cuando la
// query no trae window_days.
func NewAlertHandler(svc LowStockService, defaultWindowDays int) *AlertHandler {
	return &AlertHandler{svc: svc, defaultWindowDays: defaultWindowDays}
}

// LowStock godoc
// @Summary      Alertas de stock bajo
// @Description  Una alerta por par (producto, bodega) bajo su umbral de
//
//	categoría, con proyección de días hasta agotamiento (null si la tasa de
//	venta es cero) y el proveedor principal (null si no hay).
//
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        company_id   path   string  true   "ID de la empresa"
// @Param        window_days  query  int     false  "Ventana de velocidad de ventas (días)"  default(30)
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	// El token solo da acceso a los datos de su propia empresa.
	if pathID := c.Params("company_id"); pathID != "" && pathID != companyID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	}
	windowDays := c.QueryInt("window_days", h.defaultWindowDays)
	out, err := h.svc.LowStockAlerts(c.Context(), companyID, windowDays)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
