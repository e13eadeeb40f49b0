package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruteria-pos/internal/domain"
)

// PurchaseLine representa un renglón de una compra: una copia del artículo, la cantidad
// solicitada (admite fracciones para venta por peso) y el subtotal derivado.
// Invariante: Subtotal == Item.UnitPrice * Quantity.
type PurchaseLine struct {
	item     Item
	quantity decimal.Decimal
	subtotal decimal.Decimal
}

// NewPurchaseLine construye el renglón calculando el subtotal. Rechaza cantidades negativas.
func NewPurchaseLine(item Item, quantity decimal.Decimal) (PurchaseLine, error) {
	if quantity.IsNegative() {
		return PurchaseLine{}, fmt.Errorf("%s x %s: %w", item.Name(), quantity.String(), domain.ErrInvalidQuantity)
	}
	return PurchaseLine{
		item:     item,
		quantity: quantity,
		subtotal: item.UnitPrice().Mul(quantity),
	}, nil
}

// Item copia del artículo vendido.
func (l PurchaseLine) Item() Item { return l.item }

// Quantity cantidad vendida.
func (l PurchaseLine) Quantity() decimal.Decimal { return l.quantity }

// Subtotal precio unitario por cantidad.
func (l PurchaseLine) Subtotal() decimal.Decimal { return l.subtotal }
