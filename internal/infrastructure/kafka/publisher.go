package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"github.com/jhoicas/inventario-commands/internal/application/inventory"
	"github.com/jhoicas/inventario-commands/internal/domain/event"
	"github.com/jhoicas/inventario-commands/pkg/config"
)

var _ inventory.EventPublisher = (*Publisher)(nil)

// Writer es el subconjunto de kafka.Writer que usa el publisher; permite
// inyectar un fake en tests.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher publica eventos StockUpdate en el tópico configurado.
// La key del mensaje es el productId: el balanceador por hash envía todas las
// actualizaciones de un producto a la misma partición, preservando en el wire
// el orden de commit por producto.
type Publisher struct {
	writer Writer
}

// NewPublisher construye el publisher sobre un writer ya configurado.
func NewPublisher(w Writer) *Publisher {
	return &Publisher{writer: w}
}

// NewWriter crea el kafka.Writer del servicio. RequireAll: el broker confirma
// la réplica antes de dar por entregado el evento.
func NewWriter(cfg config.BrokerConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
}

// PublishStockUpdate serializa y envía el evento. Entrega at-least-once;
// el caller decide qué hacer con el error (el hook post-commit lo loguea).
func (p *Publisher) PublishStockUpdate(ctx context.Context, evt event.StockUpdate) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal stock update: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(evt.ProductID),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publicar stock update: %w", err)
	}
	return nil
}
