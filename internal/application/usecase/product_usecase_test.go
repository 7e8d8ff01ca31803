package usecase_test

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/jhoicas/pedidos-api/pkg/normalize"
)

// fakeProductRepo aplica los mismos filtros que el repositorio real:
// categoría y rango de precio exactos, texto sin mayúsculas ni tildes.
type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) { return r.GetByID(id) }

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(id int64, stock int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.MinPrice != nil && p.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && p.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		if filter.Text != "" && !normalize.Contains(p.Name, filter.Text) && !normalize.Contains(p.Description, filter.Text) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) Categories() ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range r.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	delete(r.products, id)
	return nil
}

func newProductUC(t *testing.T) (*usecase.ProductUseCase, *fakeProductRepo) {
	t.Helper()
	repo := newFakeProductRepo()
	return usecase.NewProductUseCase(repo), repo
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func seedCatalog(t *testing.T, uc *usecase.ProductUseCase) {
	t.Helper()
	for _, p := range []dto.CreateProductRequest{
		{Name: "Cafe", Description: "Café molido 500g", Category: "Bebidas", Price: mustDecimal(t, "30.00"), Stock: 50},
		{Name: "Azúcar", Description: "Azúcar refinada 1kg", Category: "Abarrotes", Price: mustDecimal(t, "15.00"), Stock: 200},
		{Name: "Té verde", Description: "Caja de 20 sobres", Category: "Bebidas", Price: mustDecimal(t, "22.50"), Stock: 80},
	} {
		_, err := uc.Create(p)
		require.NoError(t, err)
	}
}

func TestProductCreate_RedondeaPrecio(t *testing.T) {
	uc, _ := newProductUC(t)

	out, err := uc.Create(dto.CreateProductRequest{
		Name: "Cafe", Price: mustDecimal(t, "30.005"), Stock: 10,
	})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(mustDecimal(t, "30.01")), "el precio se redondea a 2 decimales, fue %s", out.Price)
}

func TestProductCreate_Invalido(t *testing.T) {
	uc, _ := newProductUC(t)

	_, err := uc.Create(dto.CreateProductRequest{Name: "", Price: mustDecimal(t, "10"), Stock: 1})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{Name: "Cafe", Price: mustDecimal(t, "-1"), Stock: 1})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{Name: "Cafe", Price: mustDecimal(t, "10"), Stock: -1})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductList_FiltroDeTextoSinTildes(t *testing.T) {
	uc, _ := newProductUC(t)
	seedCatalog(t, uc)

	// "azucar" sin tilde debe encontrar "Azúcar"
	out, err := uc.List("azucar", "", nil, nil)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Azúcar", out.Items[0].Name)

	// También busca en la descripción
	out, err = uc.List("cafe", "", nil, nil)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Cafe", out.Items[0].Name)
}

func TestProductList_FiltroCategoriaYPrecio(t *testing.T) {
	uc, _ := newProductUC(t)
	seedCatalog(t, uc)

	out, err := uc.List("", "Bebidas", nil, nil)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	min := mustDecimal(t, "20")
	max := mustDecimal(t, "25")
	out, err = uc.List("", "", &min, &max)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Té verde", out.Items[0].Name)

	assert.Equal(t, []string{"Abarrotes", "Bebidas"}, out.Categories)
}

func TestProductList_RangoInvalido(t *testing.T) {
	uc, _ := newProductUC(t)

	min := mustDecimal(t, "50")
	max := mustDecimal(t, "10")
	_, err := uc.List("", "", &min, &max)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_CamposOpcionales(t *testing.T) {
	uc, _ := newProductUC(t)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Cafe", Category: "Bebidas", Price: mustDecimal(t, "30.00"), Stock: 50,
	})
	require.NoError(t, err)

	newPrice := mustDecimal(t, "32.50")
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(newPrice))
	assert.Equal(t, "Cafe", out.Name, "los campos no enviados se conservan")
	assert.Equal(t, 50, out.Stock)

	empty := ""
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Name: &empty})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc, _ := newProductUC(t)

	out, err := uc.Update(99, dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductDelete(t *testing.T) {
	uc, repo := newProductUC(t)

	created, err := uc.Create(dto.CreateProductRequest{Name: "Cafe", Price: mustDecimal(t, "30.00"), Stock: 1})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.NotContains(t, repo.products, created.ID)

	err = uc.Delete(created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
