package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestProducer_PublishEvent_EncodesJSON(t *testing.T) {
	w := &recordingWriter{}
	p := &Producer{w: w, timeout: time.Second}

	err := p.PublishEvent(context.Background(), TopicOrders, "order-1", map[string]any{
		"type":   "order_created",
		"status": "Pending",
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, TopicOrders, msg.Topic)
	assert.Equal(t, "order-1", string(msg.Key))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "order_created", body["type"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestProducer_PublishEvent_WrapsWriterError(t *testing.T) {
	boom := errors.New("broker down")
	p := &Producer{w: &recordingWriter{err: boom}, timeout: time.Second}

	err := p.PublishEvent(context.Background(), TopicCatalog, "k", struct{}{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestProducer_PublishEvent_RejectsUnencodable(t *testing.T) {
	p := &Producer{w: &recordingWriter{}, timeout: time.Second}

	err := p.PublishEvent(context.Background(), TopicCatalog, "k", make(chan int))
	require.Error(t, err)
}
