// Package memory implementa los puertos de repositorio en memoria.
package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/fruteria-pos/internal/domain"
	"github.com/jhoicas/fruteria-pos/internal/domain/entity"
)

// CatalogRepository implementa repository.CatalogRepository sobre una lista fija de artículos.
type CatalogRepository struct {
	entries []entity.CatalogEntry
}

// NewCatalogRepository numera los artículos en el orden recibido, empezando en 1.
func NewCatalogRepository(items []entity.Item) *CatalogRepository {
	entries := make([]entity.CatalogEntry, 0, len(items))
	for i, it := range items {
		entries = append(entries, entity.CatalogEntry{Number: i + 1, Item: it})
	}
	return &CatalogRepository{entries: entries}
}

// List devuelve una copia del catálogo.
func (r *CatalogRepository) List(ctx context.Context) ([]entity.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]entity.CatalogEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// GetByNumber busca un artículo por su número de menú.
func (r *CatalogRepository) GetByNumber(ctx context.Context, number int) (entity.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return entity.CatalogEntry{}, err
	}
	if number < 1 || number > len(r.entries) {
		return entity.CatalogEntry{}, fmt.Errorf("artículo %d: %w", number, domain.ErrNotFound)
	}
	return r.entries[number-1], nil
}
