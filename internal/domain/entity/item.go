package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/fruteria-pos/internal/domain"
)

// NameDisplayWidth ancho recomendado para mostrar el nombre de un artículo (50 con el terminador).
// Es una convención de presentación: el nombre se guarda completo.
const NameDisplayWidth = 49

// Item representa un artículo del catálogo (una fruta) con su precio unitario.
// Es un valor inmutable: se construye con NewItem y se copia libremente.
type Item struct {
	name      string
	unitPrice decimal.Decimal
}

// NewItem valida y construye un artículo. Rechaza precios negativos y nombres vacíos.
func NewItem(name string, unitPrice decimal.Decimal) (Item, error) {
	name = strings.TrimSpace(norm.NFC.String(name))
	if name == "" {
		return Item{}, fmt.Errorf("nombre vacío: %w", domain.ErrInvalidInput)
	}
	if unitPrice.IsNegative() {
		return Item{}, fmt.Errorf("%s (%s): %w", name, unitPrice.String(), domain.ErrInvalidPrice)
	}
	return Item{name: name, unitPrice: unitPrice}, nil
}

// Name nombre del artículo.
func (i Item) Name() string { return i.name }

// UnitPrice precio por unidad (o por kilo en venta a granel).
func (i Item) UnitPrice() decimal.Decimal { return i.unitPrice }
