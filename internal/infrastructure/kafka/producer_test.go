package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWriter запоминает отправленные сообщения и возвращает заданную ошибку.
type fakeWriter struct {
	sent   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestNewProducer_WriterConfig(t *testing.T) {
	p := NewProducer(&Config{
		Brokers:      "k1:9092,k2:9092",
		Topic:        "opscalc.operations",
		BatchTimeout: 5 * time.Millisecond,
	})
	t.Cleanup(func() { _ = p.Close() })

	w, ok := p.w.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "opscalc.operations", w.Topic)
	assert.Equal(t, 5*time.Millisecond, w.BatchTimeout)
	assert.Equal(t, kafka.RequireOne, w.RequiredAcks)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
}

func TestProducer_Send(t *testing.T) {
	fw := &fakeWriter{}
	p := &Producer{w: fw, topic: "opscalc.operations"}

	require.NoError(t, p.Send(context.Background(), []byte("a@b.com"), []byte(`{"id":"op-1"}`)))

	require.Len(t, fw.sent, 1)
	msg := fw.sent[0]
	assert.Equal(t, []byte("a@b.com"), msg.Key)
	assert.JSONEq(t, `{"id":"op-1"}`, string(msg.Value))
	assert.False(t, msg.Time.IsZero())
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "content-type", msg.Headers[0].Key)
	assert.Equal(t, []byte("application/json"), msg.Headers[0].Value)

	require.NoError(t, p.Close())
	assert.True(t, fw.closed)
}

func TestProducer_SendError(t *testing.T) {
	brokerErr := errors.New("leader not available")
	p := &Producer{w: &fakeWriter{err: brokerErr}, topic: "opscalc.operations"}

	err := p.Send(context.Background(), []byte("a@b.com"), []byte(`{}`))

	assert.ErrorIs(t, err, brokerErr)
	assert.Contains(t, err.Error(), "opscalc.operations")
}
