package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-control-api/internal/application/dto"
	"github.com/jhoicas/inventory-control-api/internal/domain/entity"
	"github.com/jhoicas/inventory-control-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
// El stock no se modifica por aquí: toda mutación de existencias pasa por el ajuste transaccional.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto activo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		Code:         in.Code,
		Name:         in.Name,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		SupplierID:   in.SupplierID,
		UnitPrice:    in.UnitPrice,
		ReorderLevel: in.ReorderLevel,
		ImageURL:     in.ImageURL,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(&repository.ProductView{Product: *product}), nil
}

// GetByID obtiene un producto por ID (incluye inactivos, como la vista de detalle).
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	view, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, nil
	}
	return toProductResponse(view), nil
}

// Update actualiza un producto; los campos nil del request no se tocan.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	view, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, nil
	}
	product := view.Product
	if in.Code != nil {
		product.Code = *in.Code
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}
	if in.SupplierID != nil {
		product.SupplierID = in.SupplierID
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	if in.ReorderLevel != nil {
		product.ReorderLevel = *in.ReorderLevel
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, &product); err != nil {
		return nil, err
	}
	view.Product = product
	return toProductResponse(view), nil
}

// List lista los productos activos con stock total.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	views, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(views))
	for _, v := range views {
		items = append(items, *toProductResponse(v))
	}
	return items, nil
}

// Deactivate marca el producto como inactivo (soft delete).
func (uc *ProductUseCase) Deactivate(ctx context.Context, id int64) error {
	return uc.repo.Deactivate(ctx, id)
}

func toProductResponse(v *repository.ProductView) *dto.ProductResponse {
	p := v.Product
	return &dto.ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		SupplierID:   p.SupplierID,
		UnitPrice:    p.UnitPrice,
		ReorderLevel: p.ReorderLevel,
		ImageURL:     p.ImageURL,
		IsActive:     p.IsActive,
		CategoryName: v.CategoryName,
		SupplierName: v.SupplierName,
		TotalStock:   v.TotalStock,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
