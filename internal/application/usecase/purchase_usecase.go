package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/fruteria-pos/internal/application/dto"
	"github.com/jhoicas/fruteria-pos/internal/domain/entity"
	"github.com/jhoicas/fruteria-pos/internal/domain/repository"
	"github.com/jhoicas/fruteria-pos/pkg/logger"
)

// PurchaseUseCase registra compras en caja: abre la compra, agrega renglones y arma el ticket.
type PurchaseUseCase struct {
	catalog repository.CatalogRepository
	log     *logger.Logger
	now     func() time.Time
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(catalog repository.CatalogRepository, log *logger.Logger) *PurchaseUseCase {
	return &PurchaseUseCase{
		catalog: catalog,
		log:     log.Named("purchase"),
		now:     time.Now,
	}
}

// Start abre una compra vacía.
func (uc *PurchaseUseCase) Start() *entity.Purchase {
	p := entity.NewPurchase(uc.now())
	uc.log.Debug().Str("purchase_id", p.ID).Msg("compra abierta")
	return p
}

// AddLine busca el artículo por número de menú, calcula el subtotal y lo agrega a la compra.
// Devuelve domain.ErrNotFound o domain.ErrInvalidQuantity envueltos; en ese caso la compra no cambia.
func (uc *PurchaseUseCase) AddLine(ctx context.Context, purchase *entity.Purchase, in dto.AddLineRequest) (*dto.PurchaseLineResponse, error) {
	entry, err := uc.catalog.GetByNumber(ctx, in.ItemNumber)
	if err != nil {
		uc.log.Warn().Err(err).Int("item_number", in.ItemNumber).Msg("artículo rechazado")
		return nil, err
	}
	line, err := entity.NewPurchaseLine(entry.Item, in.Quantity)
	if err != nil {
		uc.log.Warn().Err(err).Str("item", entry.Item.Name()).Msg("cantidad rechazada")
		return nil, fmt.Errorf("agregar renglón: %w", err)
	}
	purchase.Add(line)

	uc.log.Debug().
		Str("purchase_id", purchase.ID).
		Str("item", entry.Item.Name()).
		Str("quantity", line.Quantity().String()).
		Str("subtotal", line.Subtotal().String()).
		Msg("renglón agregado")

	resp := toPurchaseLineResponse(line)
	return &resp, nil
}

// Summary arma el ticket de la compra con su total.
func (uc *PurchaseUseCase) Summary(purchase *entity.Purchase) *dto.PurchaseResponse {
	lines := purchase.Lines()
	out := make([]dto.PurchaseLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, toPurchaseLineResponse(l))
	}
	return &dto.PurchaseResponse{
		ID:        purchase.ID,
		CreatedAt: purchase.CreatedAt,
		Lines:     out,
		Total:     purchase.Total(),
	}
}

func toPurchaseLineResponse(l entity.PurchaseLine) dto.PurchaseLineResponse {
	return dto.PurchaseLineResponse{
		Name:      l.Item().Name(),
		UnitPrice: l.Item().UnitPrice(),
		Quantity:  l.Quantity(),
		Subtotal:  l.Subtotal(),
	}
}
