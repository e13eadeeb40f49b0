package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddLineRequest entrada para registrar un renglón: número de menú y cantidad.
type AddLineRequest struct {
	ItemNumber int             `json:"item_number"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// PurchaseLineResponse salida de un renglón.
type PurchaseLineResponse struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse resumen de la compra (ticket).
type PurchaseResponse struct {
	ID        string                 `json:"id"`
	CreatedAt time.Time              `json:"created_at"`
	Lines     []PurchaseLineResponse `json:"lines"`
	Total     decimal.Decimal        `json:"total"`
}
