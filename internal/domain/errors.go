package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrNotFound venta sobre un producto que nunca fue reabastecido.
	ErrNotFound = errors.New("producto no encontrado")
	// ErrInvalidInput cantidad no positiva u otra entrada inválida del caller.
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrInsufficientStock la venta excede el stock disponible.
	ErrInsufficientStock = errors.New("stock insuficiente")
	// ErrDuplicate conflicto de unicidad reportado por el store (inserción concurrente).
	// Nunca llega al caller: el caso de uso lo absorbe en la ruta de recuperación.
	ErrDuplicate = errors.New("registro duplicado")
	// ErrConflict conflicto con el estado actual que no pudo resolverse.
	ErrConflict = errors.New("conflicto con el estado actual")
)
