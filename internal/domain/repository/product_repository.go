package repository

import "github.com/rutvikbarbhai/stockflow/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Create devuelve domain.ErrDuplicate ante violación del índice único
// (company_id, sku); el chequeo de unicidad vive en el constraint, no aquí.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
}
