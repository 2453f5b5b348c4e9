package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeting struct {
	Text string `json:"text"`
}

func TestWatermillBridge_PublishSubscribe(t *testing.T) {
	bus := NewWatermillBridge()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	err := bus.Subscribe(ctx, "test.topic", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	err = bus.Publish(ctx, Message{
		Topic:    "test.topic",
		UserID:   "donor-1",
		Payload:  []byte("hello"),
		Metadata: map[string]string{"source": "test"},
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "test.topic", msg.Topic)
		assert.Equal(t, "donor-1", msg.UserID)
		assert.Equal(t, "hello", string(msg.Payload))
		assert.Equal(t, "test", msg.Metadata["source"])
		assert.NotEmpty(t, msg.Metadata["timestamp"])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestTypedEvent_RoundTrip(t *testing.T) {
	bus := NewWatermillBridge()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := NewEvent[greeting]("test.greeting")
	got := make(chan greeting, 1)
	require.NoError(t, Subscribe(ctx, bus, event, func(ctx context.Context, msg Message, g greeting) error {
		got <- g
		return nil
	}))

	require.NoError(t, Publish(ctx, bus, event, "ngo-1", greeting{Text: "hi"}))

	select {
	case g := <-got:
		assert.Equal(t, "hi", g.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for typed event")
	}
}

func TestDecode_BadPayload(t *testing.T) {
	event := NewEvent[greeting]("test.greeting")
	_, err := Decode(event, Message{Topic: event.Name(), Payload: []byte("{")})
	assert.Error(t, err)
}
