package usecase

import (
	"github.com/rutvikbarbhai/stockflow/internal/application/dto"
	"github.com/rutvikbarbhai/stockflow/internal/domain"
	"github.com/rutvikbarbhai/stockflow/internal/domain/repository"
)

// ChangeLogUseCase lecturas del historial de cambios de inventario (auditoría).
type ChangeLogUseCase struct {
	changeRepo    repository.InventoryChangeRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewChangeLogUseCase construye el caso de uso.
func NewChangeLogUseCase(
	changeRepo repository.InventoryChangeRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *ChangeLogUseCase {
	return &ChangeLogUseCase{
		changeRepo:    changeRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// List devuelve el historial filtrado por producto y/o bodega, más reciente
// primero. Exige al menos un filtro y verifica que pertenezca a la empresa.
func (uc *ChangeLogUseCase) List(companyID, productID, warehouseID string, limit, offset int) (*dto.InventoryChangeListResponse, error) {
	if productID == "" && warehouseID == "" {
		return nil, domain.NewValidationError("product_id", "warehouse_id")
	}
	if productID != "" {
		product, err := uc.productRepo.GetByID(productID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}
	if warehouseID != "" {
		wh, err := uc.warehouseRepo.GetByID(warehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil || wh.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}

	list, err := uc.changeRepo.List(productID, warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryChangeResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.InventoryChangeResponse{
			ID:           c.ID,
			ProductID:    c.ProductID,
			WarehouseID:  c.WarehouseID,
			PrevQuantity: c.PrevQuantity,
			NewQuantity:  c.NewQuantity,
			Reason:       c.Reason,
			CreatedAt:    c.CreatedAt,
		})
	}
	return &dto.InventoryChangeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
