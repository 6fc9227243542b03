package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-commands/internal/domain/event"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

// El mensaje lleva el productId como key (partición estable por producto) y
// el payload JSON con los nombres que espera el servicio de consulta.
func TestPublishStockUpdate_MensajeYKey(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisher(w)

	err := p.PublishStockUpdate(context.Background(), event.StockUpdate{ProductID: "SKU-1", NewQuantity: 42})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, []byte("SKU-1"), msg.Key)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &payload))
	assert.Equal(t, "SKU-1", payload["productId"])
	assert.EqualValues(t, 42, payload["newQuantity"])
}

func TestPublishStockUpdate_PropagaErrorDelWriter(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker caído")}
	p := NewPublisher(w)

	err := p.PublishStockUpdate(context.Background(), event.StockUpdate{ProductID: "SKU-1", NewQuantity: 1})
	assert.ErrorContains(t, err, "broker caído")
}
