package dto

// SupplierRef proveedor principal dentro de una alerta. El campo supplier de la
// alerta va null cuando el producto no tiene proveedor configurado (marcador
// explícito de ausencia, nunca se omite ni revienta el cálculo).
type SupplierRef struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertDTO una alerta por par (producto, bodega). La presencia del mismo
// producto en varias bodegas produce alertas independientes, nunca fusionadas.
type LowStockAlertDTO struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	SKU           string `json:"sku"`
	WarehouseID   string `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	CurrentStock  int64  `json:"current_stock"`
	Threshold     int64  `json:"threshold"`
	// null = proyección indeterminada (tasa diaria cero), nunca 0.
	DaysUntilStockout *int64       `json:"days_until_stockout"`
	Supplier          *SupplierRef `json:"supplier"`
}

// LowStockAlertsResponse respuesta de GET /api/companies/{id}/alerts/low-stock.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
