package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-commands/internal/domain"
	"github.com/jhoicas/inventario-commands/internal/domain/entity"
	"github.com/jhoicas/inventario-commands/internal/domain/event"
	"github.com/jhoicas/inventario-commands/internal/domain/repository"
	"github.com/jhoicas/inventario-commands/pkg/logger"
)

// CommandUseCase ejecuta los comandos de inventario (venta y reabastecimiento)
// de forma transaccional: bloqueo de fila (SELECT FOR UPDATE), validación de
// invariantes sobre la fila bloqueada y publicación del evento de stock
// diferida hasta después del commit.
type CommandUseCase struct {
	txRunner  TxRunner
	publisher EventPublisher
	log       *logger.Logger
}

// NewCommandUseCase construye el caso de uso.
func NewCommandUseCase(txRunner TxRunner, publisher EventPublisher, log *logger.Logger) *CommandUseCase {
	return &CommandUseCase{txRunner: txRunner, publisher: publisher, log: log}
}

// Sell descuenta quantitySold del stock del producto.
// Falla con domain.ErrNotFound si el producto nunca fue reabastecido (vender
// no crea productos), con domain.ErrInvalidInput si quantitySold <= 0 y con
// domain.ErrInsufficientStock si el stock disponible no alcanza. La
// verificación de stock ocurre siempre con la fila ya bloqueada; hacerla
// antes del bloqueo permitiría que otro escritor la invalide.
func (uc *CommandUseCase) Sell(ctx context.Context, productID string, quantitySold int64) (*entity.StockRecord, error) {
	cmdID := uuid.New().String()

	var updated *entity.StockRecord
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, uow UnitOfWork) error {
		rec, err := stockRepo.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		if quantitySold <= 0 {
			return domain.ErrInvalidInput
		}
		if rec.Quantity < quantitySold {
			return domain.ErrInsufficientStock
		}
		rec.Quantity -= quantitySold
		rec.UpdatedAt = time.Now()
		if err := stockRepo.Update(ctx, rec); err != nil {
			return err
		}
		uc.notifyAfterCommit(uow, cmdID, rec.ProductID, rec.Quantity)
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("command_id", cmdID).
		Str("product_id", productID).
		Int64("quantity_sold", quantitySold).
		Int64("new_quantity", updated.Quantity).
		Msg("venta registrada")
	return updated, nil
}

// Restock suma quantityAdded al stock del producto, creándolo si no existe.
// Rechaza quantityAdded <= 0 con domain.ErrInvalidInput antes de tocar el store.
//
// La primera inserción de un producto puede competir con otra unidad de
// trabajo; si el store reporta el conflicto de unicidad, se re-adquiere el
// bloqueo sobre la fila ya commiteada por el otro escritor y se suma sobre
// ella. La recuperación se intenta exactamente una vez y el conflicto nunca
// llega al caller.
func (uc *CommandUseCase) Restock(ctx context.Context, productID string, quantityAdded int64) (*entity.StockRecord, error) {
	if quantityAdded <= 0 {
		return nil, domain.ErrInvalidInput
	}
	cmdID := uuid.New().String()

	var updated *entity.StockRecord
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, uow UnitOfWork) error {
		rec, err := stockRepo.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		now := time.Now()
		if rec == nil {
			rec = &entity.StockRecord{ProductID: productID, Quantity: quantityAdded, UpdatedAt: now}
			if err := stockRepo.Insert(ctx, rec); err != nil {
				if !errors.Is(err, domain.ErrDuplicate) {
					return err
				}
				rec, err = uc.recoverFirstInsert(ctx, stockRepo, productID, quantityAdded, now)
				if err != nil {
					return err
				}
			}
		} else {
			rec.Quantity += quantityAdded
			rec.UpdatedAt = now
			if err := stockRepo.Update(ctx, rec); err != nil {
				return err
			}
		}
		uc.notifyAfterCommit(uow, cmdID, productID, rec.Quantity)
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("command_id", cmdID).
		Str("product_id", productID).
		Int64("quantity_added", quantityAdded).
		Int64("new_quantity", updated.Quantity).
		Msg("reabastecimiento registrado")
	return updated, nil
}

// recoverFirstInsert resuelve la carrera de primera inserción: para cuando el
// store reportó el 23505 la inserción competidora ya está commiteada, así que
// el GetForUpdate encuentra (y bloquea) la fila y la suma es aditiva en vez de
// un fallo espurio para el caller.
func (uc *CommandUseCase) recoverFirstInsert(
	ctx context.Context,
	stockRepo repository.StockRepository,
	productID string,
	quantityAdded int64,
	now time.Time,
) (*entity.StockRecord, error) {
	rec, err := stockRepo.GetForUpdate(ctx, productID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		// el registro desapareció entre el conflicto y la relectura
		return nil, domain.ErrConflict
	}
	rec.Quantity += quantityAdded
	rec.UpdatedAt = now
	if err := stockRepo.Update(ctx, rec); err != nil {
		return nil, err
	}
	uc.log.Debug().
		Str("product_id", productID).
		Msg("conflicto de primera inserción absorbido")
	return rec, nil
}

// notifyAfterCommit encola la publicación del evento para después del commit.
// Un fallo del transporte se loguea y no afecta la mutación ya commiteada.
func (uc *CommandUseCase) notifyAfterCommit(uow UnitOfWork, cmdID, productID string, newQuantity int64) {
	evt := event.StockUpdate{ProductID: productID, NewQuantity: newQuantity}
	uow.AfterCommit(func(ctx context.Context) {
		if err := uc.publisher.PublishStockUpdate(ctx, evt); err != nil {
			uc.log.Error().
				Err(err).
				Str("command_id", cmdID).
				Str("product_id", productID).
				Int64("new_quantity", newQuantity).
				Msg("fallo al publicar actualización de stock")
		}
	})
}
