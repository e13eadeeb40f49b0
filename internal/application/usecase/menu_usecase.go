package usecase

import (
	"context"

	"github.com/jhoicas/fruteria-pos/internal/application/dto"
	"github.com/jhoicas/fruteria-pos/internal/domain/repository"
)

// MenuUseCase arma el menú a partir del catálogo.
type MenuUseCase struct {
	catalog repository.CatalogRepository
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(catalog repository.CatalogRepository) *MenuUseCase {
	return &MenuUseCase{catalog: catalog}
}

// Menu lista los artículos disponibles en orden de número.
func (uc *MenuUseCase) Menu(ctx context.Context) (*dto.MenuResponse, error) {
	entries, err := uc.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MenuEntry, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.MenuEntry{
			Number:    e.Number,
			Name:      e.Item.Name(),
			UnitPrice: e.Item.UnitPrice(),
		})
	}
	return &dto.MenuResponse{Items: items}, nil
}
