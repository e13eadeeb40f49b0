package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fruteria-pos/internal/application/dto"
	"github.com/jhoicas/fruteria-pos/internal/application/usecase"
	"github.com/jhoicas/fruteria-pos/internal/domain"
	"github.com/jhoicas/fruteria-pos/internal/domain/entity"
	"github.com/jhoicas/fruteria-pos/internal/infrastructure/memory"
	"github.com/jhoicas/fruteria-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newCatalog(t *testing.T) *memory.CatalogRepository {
	t.Helper()
	apple, err := entity.NewItem("Apple", decimal.RequireFromString("0.50"))
	require.NoError(t, err)
	pear, err := entity.NewItem("Pear", decimal.RequireFromString("1.25"))
	require.NoError(t, err)
	return memory.NewCatalogRepository([]entity.Item{apple, pear})
}

// ──────────────────────────────────────────────────────────────────────────────
// MenuUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestMenu_ListaCatalogo(t *testing.T) {
	uc := usecase.NewMenuUseCase(newCatalog(t))

	menu, err := uc.Menu(context.Background())
	require.NoError(t, err)
	require.Len(t, menu.Items, 2)
	assert.Equal(t, 1, menu.Items[0].Number)
	assert.Equal(t, "Apple", menu.Items[0].Name)
	assert.True(t, menu.Items[0].UnitPrice.Equal(decimal.RequireFromString("0.50")))
	assert.Equal(t, 2, menu.Items[1].Number)
}

func TestMenu_CatalogoVacio(t *testing.T) {
	uc := usecase.NewMenuUseCase(memory.NewCatalogRepository(nil))
	menu, err := uc.Menu(context.Background())
	require.NoError(t, err)
	assert.Empty(t, menu.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// PurchaseUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestAddLine_CalculaSubtotal(t *testing.T) {
	uc := usecase.NewPurchaseUseCase(newCatalog(t), logger.Nop())
	p := uc.Start()

	line, err := uc.AddLine(context.Background(), p, dto.AddLineRequest{
		ItemNumber: 1,
		Quantity:   decimal.RequireFromString("3.0"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Apple", line.Name)
	assert.True(t, line.Subtotal.Equal(decimal.RequireFromString("1.50")))
	assert.Equal(t, 1, p.Len())
}

func TestAddLine_CantidadCero(t *testing.T) {
	uc := usecase.NewPurchaseUseCase(newCatalog(t), logger.Nop())
	p := uc.Start()

	line, err := uc.AddLine(context.Background(), p, dto.AddLineRequest{ItemNumber: 2, Quantity: decimal.Zero})
	require.NoError(t, err)
	assert.Equal(t, "Pear", line.Name)
	assert.True(t, line.Subtotal.IsZero())
}

func TestAddLine_ArticuloInexistente(t *testing.T) {
	uc := usecase.NewPurchaseUseCase(newCatalog(t), logger.Nop())
	p := uc.Start()

	_, err := uc.AddLine(context.Background(), p, dto.AddLineRequest{ItemNumber: 7, Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, p.Len(), "la compra no cambia si el renglón es rechazado")
}

func TestAddLine_CantidadNegativa(t *testing.T) {
	uc := usecase.NewPurchaseUseCase(newCatalog(t), logger.Nop())
	p := uc.Start()

	_, err := uc.AddLine(context.Background(), p, dto.AddLineRequest{ItemNumber: 1, Quantity: decimal.NewFromFloat(-2.0)})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Zero(t, p.Len())
}

func TestSummary_TotalEsSumaDeSubtotales(t *testing.T) {
	uc := usecase.NewPurchaseUseCase(newCatalog(t), logger.Nop())
	p := uc.Start()
	ctx := context.Background()

	_, err := uc.AddLine(ctx, p, dto.AddLineRequest{ItemNumber: 1, Quantity: decimal.NewFromInt(3)})
	require.NoError(t, err)
	_, err = uc.AddLine(ctx, p, dto.AddLineRequest{ItemNumber: 2, Quantity: decimal.RequireFromString("0.4")})
	require.NoError(t, err)

	sum := uc.Summary(p)
	assert.Equal(t, p.ID, sum.ID)
	require.Len(t, sum.Lines, 2)
	assert.True(t, sum.Total.Equal(decimal.RequireFromString("2.00")), "total %s", sum.Total)
}

// reloadableCatalog catálogo que el test puede reemplazar entre llamadas.
type reloadableCatalog struct {
	current *memory.CatalogRepository
}

func (c *reloadableCatalog) List(ctx context.Context) ([]entity.CatalogEntry, error) {
	return c.current.List(ctx)
}

func (c *reloadableCatalog) GetByNumber(ctx context.Context, number int) (entity.CatalogEntry, error) {
	return c.current.GetByNumber(ctx, number)
}

// Los renglones ya registrados no cambian si el catálogo se recarga con otro precio.
func TestSummary_RenglonesConservanPrecioRegistrado(t *testing.T) {
	catalog := &reloadableCatalog{current: newCatalog(t)}
	uc := usecase.NewPurchaseUseCase(catalog, logger.Nop())
	p := uc.Start()
	ctx := context.Background()

	_, err := uc.AddLine(ctx, p, dto.AddLineRequest{ItemNumber: 1, Quantity: decimal.NewFromInt(2)})
	require.NoError(t, err)

	pricier, err := entity.NewItem("Apple", decimal.RequireFromString("0.75"))
	require.NoError(t, err)
	catalog.current = memory.NewCatalogRepository([]entity.Item{pricier})

	_, err = uc.AddLine(ctx, p, dto.AddLineRequest{ItemNumber: 1, Quantity: decimal.NewFromInt(2)})
	require.NoError(t, err)

	sum := uc.Summary(p)
	require.Len(t, sum.Lines, 2)
	assert.True(t, sum.Lines[0].UnitPrice.Equal(decimal.RequireFromString("0.50")))
	assert.True(t, sum.Lines[0].Subtotal.Equal(decimal.NewFromInt(1)))
	assert.True(t, sum.Lines[1].UnitPrice.Equal(decimal.RequireFromString("0.75")))
	assert.True(t, sum.Total.Equal(decimal.RequireFromString("2.50")))
}
