package entity

// CatalogEntry artículo del menú con el número que digita el cliente (desde 1).
type CatalogEntry struct {
	Number int
	Item   Item
}
