package inventory

import (
	"context"

	"github.com/jhoicas/inventario-commands/internal/domain/event"
	"github.com/jhoicas/inventario-commands/internal/domain/repository"
)

// UnitOfWork expone el registro de acciones diferidas de la transacción en curso.
// Los hooks encolados corren una sola vez, en orden de encolado, estrictamente
// después de un commit exitoso; un rollback los descarta.
type UnitOfWork interface {
	AfterCommit(fn func(ctx context.Context))
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de stock atado a esa tx y la unidad de trabajo para hooks
// post-commit. Garantiza atomicidad de las mutaciones de stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(stockRepo repository.StockRepository, uow UnitOfWork) error) error
}

// EventPublisher publica eventos de stock hacia el lado de consulta.
// Entrega at-least-once, fire-and-forget: un fallo del transporte se reporta
// al invocador del hook post-commit, nunca al caller del comando.
type EventPublisher interface {
	PublishStockUpdate(ctx context.Context, evt event.StockUpdate) error
}
