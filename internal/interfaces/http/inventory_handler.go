package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rutvikbarbhai/stockflow/internal/application/dto"
	"github.com/rutvikbarbhai/stockflow/internal/application/inventory"
	"github.com/rutvikbarbhai/stockflow/internal/application/usecase"
)

// InventoryHandler maneja ajustes de stock, ventas y el historial de cambios (protegido).
type InventoryHandler struct {
	adjust     *inventory.AdjustQuantityUseCase
	recordSale *inventory.RecordSaleUseCase
	changeLog  *usecase.ChangeLogUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(adjust *inventory.AdjustQuantityUseCase, recordSale *inventory.RecordSaleUseCase, changeLog *usecase.ChangeLogUseCase) *InventoryHandler {
	return &InventoryHandler{adjust: adjust, recordSale: recordSale, changeLog: changeLog}
}

// AdjustQuantity godoc
// @Summary      Ajustar stock
// @Description  Ajusta la cantidad de un par (producto, bodega) vía delta o
//
//	set_to (exactamente uno). Escribe el cambio en el historial en la misma
//	transacción. Stock negativo solo con INVENTORY_ALLOW_BACKORDER.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustQuantityRequest  true  "product_id, warehouse_id, delta|set_to, reason"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) AdjustQuantity(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AdjustQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.adjust.Adjust(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RecordSale godoc
// @Summary      Registrar venta
// @Description  Descuenta stock y registra el hecho de venta para el cálculo
//
//	de velocidad de ventas, todo en una transacción.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "product_id, warehouse_id, quantity, sold_at (opcional)"
// @Success      201   {object}  dto.RecordSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *InventoryHandler) RecordSale(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.recordSale.Record(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListChanges godoc
// @Summary      Historial de cambios de inventario
// @Description  Requiere al menos un filtro (product_id o warehouse_id).
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.InventoryChangeListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/changes [get]
func (h *InventoryHandler) ListChanges(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.changeLog.List(companyID, c.Query("product_id"), c.Query("warehouse_id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
