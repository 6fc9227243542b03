package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/inventario-commands/internal/domain"
	"github.com/jhoicas/inventario-commands/internal/domain/entity"
	"github.com/jhoicas/inventario-commands/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el registro de stock sin bloquear. (nil, nil) si no existe.
func (r *StockRepo) Get(ctx context.Context, productID string) (*entity.StockRecord, error) {
	query := `
		SELECT product_id, quantity, updated_at
		FROM stock_records WHERE product_id = $1`
	return r.scanOne(ctx, query, productID)
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE) hasta
// el fin de la transacción. Otra transacción sobre el mismo producto espera
// aquí hasta el commit o rollback de esta. (nil, nil) si no existe.
func (r *StockRepo) GetForUpdate(ctx context.Context, productID string) (*entity.StockRecord, error) {
	query := `
		SELECT product_id, quantity, updated_at
		FROM stock_records WHERE product_id = $1
		FOR UPDATE`
	return r.scanOne(ctx, query, productID)
}

func (r *StockRepo) scanOne(ctx context.Context, query, productID string) (*entity.StockRecord, error) {
	var rec entity.StockRecord
	err := r.q.QueryRow(ctx, query, productID).Scan(&rec.ProductID, &rec.Quantity, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &rec, nil
}

// Insert crea el registro. Un 23505 se traduce a domain.ErrDuplicate.
//
// Dentro de una transacción el INSERT corre en un savepoint (pgx.Tx.Begin
// anidado): sin él, el conflicto de unicidad abortaría la transacción
// completa y la ruta de recuperación del caller no podría continuar.
func (r *StockRepo) Insert(ctx context.Context, rec *entity.StockRecord) error {
	query := `
		INSERT INTO stock_records (product_id, quantity, updated_at)
		VALUES ($1, $2, $3)`

	if tx, ok := r.q.(pgx.Tx); ok {
		sp, err := tx.Begin(ctx)
		if err != nil {
			return fmt.Errorf("savepoint: %w", err)
		}
		if _, err := sp.Exec(ctx, query, rec.ProductID, rec.Quantity, rec.UpdatedAt); err != nil {
			_ = sp.Rollback(ctx)
			return insertError(err)
		}
		if err := sp.Commit(ctx); err != nil {
			return fmt.Errorf("liberar savepoint: %w", err)
		}
		return nil
	}

	if _, err := r.q.Exec(ctx, query, rec.ProductID, rec.Quantity, rec.UpdatedAt); err != nil {
		return insertError(err)
	}
	return nil
}

func insertError(err error) error {
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return fmt.Errorf("insert stock: %w", err)
}

// Update persiste la cantidad de un registro existente.
func (r *StockRepo) Update(ctx context.Context, rec *entity.StockRecord) error {
	query := `
		UPDATE stock_records
		SET quantity = $2, updated_at = $3
		WHERE product_id = $1`
	tag, err := r.q.Exec(ctx, query, rec.ProductID, rec.Quantity, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
