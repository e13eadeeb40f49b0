package dto

import "github.com/shopspring/decimal"

// MenuEntry una fila del menú.
type MenuEntry struct {
	Number    int             `json:"number"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// MenuResponse menú completo en orden de número.
type MenuResponse struct {
	Items []MenuEntry `json:"items"`
}
