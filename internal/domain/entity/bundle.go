package entity

// BundleComponent componente de un producto compuesto (bundle → componentes,
// con cantidad por componente). Definir un bundle no propaga movimientos de
// inventario a sus componentes.
type BundleComponent struct {
	BundleID    string
	ComponentID string
	Quantity    int64
}
