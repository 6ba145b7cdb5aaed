package entity

import "time"

// Company representa una organización/tenant del sistema (multi-tenant).
// Todas las demás entidades quedan acotadas a una Company vía Warehouse o Product.
type Company struct {
	ID        string
	Name      string
	Address   string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
