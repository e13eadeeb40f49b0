package repository

import (
	"context"

	"github.com/jhoicas/fruteria-pos/internal/domain/entity"
)

// CatalogRepository define el puerto de lectura del catálogo de artículos (DIP).
type CatalogRepository interface {
	List(ctx context.Context) ([]entity.CatalogEntry, error)
	// GetByNumber devuelve domain.ErrNotFound si el número no está en el menú.
	GetByNumber(ctx context.Context, number int) (entity.CatalogEntry, error)
}
