package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase agrupa los renglones de una misma compra en caja.
// No es seguro para uso concurrente: pertenece a una sola sesión.
type Purchase struct {
	ID        string
	CreatedAt time.Time
	lines     []PurchaseLine
}

// NewPurchase abre una compra vacía.
func NewPurchase(now time.Time) *Purchase {
	return &Purchase{
		ID:        uuid.New().String(),
		CreatedAt: now,
	}
}

// Add agrega un renglón al final de la compra.
func (p *Purchase) Add(line PurchaseLine) {
	p.lines = append(p.lines, line)
}

// Lines devuelve una copia de los renglones en orden de registro.
func (p *Purchase) Lines() []PurchaseLine {
	out := make([]PurchaseLine, len(p.lines))
	copy(out, p.lines)
	return out
}

// Len número de renglones.
func (p *Purchase) Len() int { return len(p.lines) }

// Total suma de los subtotales.
func (p *Purchase) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range p.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
