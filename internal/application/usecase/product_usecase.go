package usecase

import (
	"context"
	"time"

	"github.com/rutvikbarbhai/stockflow/internal/application/dto"
	appinventory "github.com/rutvikbarbhai/stockflow/internal/application/inventory"
	"github.com/rutvikbarbhai/stockflow/internal/domain"
	"github.com/rutvikbarbhai/stockflow/internal/domain/entity"
	"github.com/rutvikbarbhai/stockflow/internal/domain/repository"
)

// ProductUseCase lecturas de catálogo y composición de bundles. La creación de
// productos vive en inventory.ProvisionProductUseCase (transacción con stock).
type ProductUseCase struct {
	repo       repository.ProductRepository
	bundleRepo repository.BundleRepository
	txRunner   appinventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, bundleRepo repository.BundleRepository, txRunner appinventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, bundleRepo: bundleRepo, txRunner: txRunner}
}

// GetByID obtiene un producto por ID verificando la empresa.
func (uc *ProductUseCase) GetByID(companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos por empresa con paginación.
func (uc *ProductUseCase) List(companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// SetBundle reemplaza la composición del bundle y marca el producto como
// compuesto, en una sola transacción. No propaga inventario a los componentes.
func (uc *ProductUseCase) SetBundle(ctx context.Context, companyID, bundleID string, in dto.SetBundleRequest) (*dto.BundleResponse, error) {
	if len(in.Components) == 0 {
		return nil, domain.NewValidationError("components")
	}
	bundle, err := uc.repo.GetByID(bundleID)
	if err != nil {
		return nil, err
	}
	if bundle == nil || bundle.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	components := make([]*entity.BundleComponent, 0, len(in.Components))
	for _, c := range in.Components {
		if c.ComponentID == bundleID {
			return nil, domain.NewValidationError("components")
		}
		if c.Quantity <= 0 {
			return nil, domain.NewValidationError("components")
		}
		comp, err := uc.repo.GetByID(c.ComponentID)
		if err != nil {
			return nil, err
		}
		if comp == nil || comp.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
		components = append(components, &entity.BundleComponent{
			BundleID:    bundleID,
			ComponentID: c.ComponentID,
			Quantity:    c.Quantity,
		})
	}

	err = uc.txRunner.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		bundleRepo repository.BundleRepository,
	) error {
		if err := bundleRepo.ReplaceComponents(bundleID, components); err != nil {
			return err
		}
		if !bundle.IsBundle {
			bundle.IsBundle = true
			bundle.UpdatedAt = time.Now()
			return productRepo.Update(bundle)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.BundleResponse{BundleID: bundleID, Components: in.Components}, nil
}

// GetBundle devuelve la composición actual de un bundle.
func (uc *ProductUseCase) GetBundle(companyID, bundleID string) (*dto.BundleResponse, error) {
	bundle, err := uc.repo.GetByID(bundleID)
	if err != nil {
		return nil, err
	}
	if bundle == nil || bundle.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	components, err := uc.bundleRepo.ListComponents(bundleID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BundleComponentDTO, 0, len(components))
	for _, c := range components {
		items = append(items, dto.BundleComponentDTO{ComponentID: c.ComponentID, Quantity: c.Quantity})
	}
	return &dto.BundleResponse{BundleID: bundleID, Components: items}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		SKU:       p.SKU,
		Name:      p.Name,
		Price:     p.Price,
		Category:  p.Category,
		IsBundle:  p.IsBundle,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
