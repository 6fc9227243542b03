package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/inventario-commands/internal/application/inventory"
	"github.com/jhoicas/inventario-commands/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL y drena los
// hooks post-commit una vez confirmado el commit.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con un repositorio de stock atado a
// la tx y hace Commit o Rollback. Los hooks encolados vía AfterCommit corren
// en orden de encolado solo tras un commit exitoso; cualquier fallo anterior
// los descarta junto con el rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	uow inventory.UnitOfWork,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	hooks := &commitHooks{}
	if err := fn(NewStockRepository(tx), hooks); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	// La mutación ya es durable: una cancelación del request no debe abortar
	// la notificación de un estado commiteado.
	hooks.run(context.WithoutCancel(ctx))
	return nil
}

var _ inventory.UnitOfWork = (*commitHooks)(nil)

// commitHooks cola de acciones diferidas de una unidad de trabajo.
type commitHooks struct {
	fns []func(ctx context.Context)
}

// AfterCommit encola fn para ejecutarla tras el commit.
func (h *commitHooks) AfterCommit(fn func(ctx context.Context)) {
	h.fns = append(h.fns, fn)
}

// run ejecuta los hooks en orden de encolado y vacía la cola.
func (h *commitHooks) run(ctx context.Context) {
	for _, fn := range h.fns {
		fn(ctx)
	}
	h.fns = nil
}
