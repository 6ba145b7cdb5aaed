package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario (multi-bodega).
// No referencia bodega: la presencia multi-bodega se expresa solo vía Inventory.
// Price es decimal exacto de punta a punta (nunca float binario).
type Product struct {
	ID        string
	CompanyID string
	SKU       string // código único por empresa
	Name      string
	Price     decimal.Decimal
	Category  string // etiqueta para resolver el umbral de stock mínimo
	IsBundle  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
