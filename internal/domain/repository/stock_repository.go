package repository

import (
	"context"

	"github.com/jhoicas/inventario-commands/internal/domain/entity"
)

// StockRepository define el puerto de acceso al stock por producto.
// Las operaciones de escritura se usan dentro de una unidad de trabajo
// para garantizar consistencia.
type StockRepository interface {
	// Get lee el registro sin bloquear. Devuelve (nil, nil) si el producto no existe.
	Get(ctx context.Context, productID string) (*entity.StockRecord, error)

	// GetForUpdate lee bloqueando la fila (SELECT FOR UPDATE) hasta el fin de la
	// unidad de trabajo. Bloquea a otras unidades de trabajo sobre el mismo
	// producto. Devuelve (nil, nil) si el producto nunca fue reabastecido.
	GetForUpdate(ctx context.Context, productID string) (*entity.StockRecord, error)

	// Insert crea el registro. Un conflicto de unicidad con una inserción
	// concurrente se reporta como domain.ErrDuplicate y deja la transacción
	// utilizable para la ruta de recuperación.
	Insert(ctx context.Context, rec *entity.StockRecord) error

	// Update persiste la cantidad mutada de un registro existente.
	Update(ctx context.Context, rec *entity.StockRecord) error
}
