package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-control-api/internal/application/dto"
	"github.com/jhoicas/inventory-control-api/internal/application/usecase"
	"github.com/jhoicas/inventory-control-api/internal/domain/entity"
	"github.com/jhoicas/inventory-control-api/internal/domain/repository"
)

// fakeProductRepo repositorio en memoria, suficiente para los casos de uso.
type fakeProductRepo struct {
	byID        map[int64]*repository.ProductView
	nextID      int64
	deactivated []int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[int64]*repository.ProductView)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.nextID++
	product.ID = r.nextID
	copied := *product
	r.byID[product.ID] = &repository.ProductView{Product: copied}
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id int64) (*repository.ProductView, error) {
	v, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *v
	return &copied, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	v, ok := r.byID[product.ID]
	if !ok {
		return nil
	}
	v.Product = *product
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context) ([]*repository.ProductView, error) {
	var out []*repository.ProductView
	for _, v := range r.byID {
		if v.Product.IsActive {
			copied := *v
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Deactivate(ctx context.Context, id int64) error {
	r.deactivated = append(r.deactivated, id)
	if v, ok := r.byID[id]; ok {
		v.Product.IsActive = false
	}
	return nil
}

func strPtr(s string) *string { return &s }

// Create debe dejar el producto activo y con timestamps asignados.
func TestProductUseCase_CreateQuedaActivo(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Code:      "SKU-1",
		Name:      "Tornillo 3mm",
		UnitPrice: decimal.RequireFromString("0.25"),
	})
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.True(t, out.IsActive, "un producto recién creado debe quedar activo")
	assert.False(t, out.CreatedAt.IsZero())
}

// Update parcial: solo los campos presentes en el request cambian, el resto se conserva.
func TestProductUseCase_UpdateParcialConservaCampos(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Code:         "SKU-1",
		Name:         "Tornillo 3mm",
		Description:  "caja x100",
		UnitPrice:    decimal.RequireFromString("0.25"),
		ReorderLevel: 50,
	})
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		Name: strPtr("Tornillo 3mm galvanizado"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Tornillo 3mm galvanizado", out.Name)
	assert.Equal(t, "SKU-1", out.Code, "code no venía en el request, no debe cambiar")
	assert.Equal(t, "caja x100", out.Description)
	assert.Equal(t, 50, out.ReorderLevel)
	assert.True(t, out.UpdatedAt.After(out.CreatedAt) || out.UpdatedAt.Equal(out.CreatedAt))
}

// Update sobre un ID inexistente devuelve nil sin error (404 lo decide el handler).
func TestProductUseCase_UpdateInexistenteRetornaNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Update(context.Background(), 999, dto.UpdateProductRequest{Name: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// Deactivate es soft delete: el producto desaparece del listado pero sigue accesible por ID.
func TestProductUseCase_DeactivateEsSoftDelete(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Code: "SKU-1", Name: "Tornillo", UnitPrice: decimal.Zero,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(context.Background(), created.ID))

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list, "los inactivos no deben aparecer en el listado")

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "el detalle debe seguir accesible tras desactivar")
	assert.False(t, got.IsActive)
}
