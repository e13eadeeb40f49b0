package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrInvalidPrice    = errors.New("precio unitario negativo")
	ErrInvalidQuantity = errors.New("cantidad negativa")
)
