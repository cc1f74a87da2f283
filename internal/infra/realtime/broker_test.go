package realtime

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"knect/config"
	"knect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func change(connector uuid.UUID, id string) entity.ConnectionChange {
	return entity.ConnectionChange{
		ID:   id,
		Type: entity.ChangeInsert,
		Connection: entity.Connection{
			ID:            uuid.New(),
			ConnectorID:   connector,
			ConnectedToID: uuid.New(),
			MetAt:         time.Now().UTC(),
		},
	}
}

func TestBroker_RoutesByConnector(t *testing.T) {
	broker := newBroker(4, slog.New(slog.DiscardHandler))
	alice, bob := uuid.New(), uuid.New()

	aliceCh, cancelAlice := broker.Subscribe(context.Background(), alice)
	defer cancelAlice()
	bobCh, cancelBob := broker.Subscribe(context.Background(), bob)
	defer cancelBob()

	broker.Publish(change(alice, "e1"))

	select {
	case got := <-aliceCh:
		assert.Equal(t, "e1", got.ID)
	case <-time.After(time.Second):
		t.Fatal("alice did not receive her change")
	}

	select {
	case got := <-bobCh:
		t.Fatalf("bob received foreign change %s", got.ID)
	default:
	}
}

func TestBroker_DropsWhenBufferFull(t *testing.T) {
	broker := newBroker(1, slog.New(slog.DiscardHandler))
	connector := uuid.New()

	ch, cancel := broker.Subscribe(context.Background(), connector)
	defer cancel()

	broker.Publish(change(connector, "e1"))
	broker.Publish(change(connector, "e2"))

	got := <-ch
	assert.Equal(t, "e1", got.ID)
	select {
	case extra := <-ch:
		t.Fatalf("unexpected buffered change %s", extra.ID)
	default:
	}
}

func TestBroker_CancelClosesStream(t *testing.T) {
	broker := newBroker(1, slog.New(slog.DiscardHandler))
	connector := uuid.New()

	ch, cancel := broker.Subscribe(context.Background(), connector)
	require.Equal(t, 1, broker.SubscriberCount(connector))

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, broker.SubscriberCount(connector))

	broker.Publish(change(connector, "after-cancel"))
}

func TestBroker_ContextEndUnsubscribes(t *testing.T) {
	broker := newBroker(1, slog.New(slog.DiscardHandler))
	connector := uuid.New()

	ctx, cancelCtx := context.WithCancel(context.Background())
	ch, _ := broker.Subscribe(ctx, connector)
	cancelCtx()

	select {
	case _, open := <-ch:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("stream was not closed after context end")
	}
	assert.Equal(t, 0, broker.SubscriberCount(connector))
}

func TestBroker_CloseEndsStreams(t *testing.T) {
	broker := newBroker(4, slog.New(slog.DiscardHandler))
	alice, bob := uuid.New(), uuid.New()

	aliceCh, cancelAlice := broker.Subscribe(context.Background(), alice)
	bobCh, _ := broker.Subscribe(context.Background(), bob)

	broker.Close()
	broker.Close()

	for _, ch := range []<-chan entity.ConnectionChange{aliceCh, bobCh} {
		select {
		case _, open := <-ch:
			assert.False(t, open)
		case <-time.After(time.Second):
			t.Fatal("stream was not closed by Close")
		}
	}
	assert.Equal(t, 0, broker.SubscriberCount(alice))
	cancelAlice()

	late, cancelLate := broker.Subscribe(context.Background(), alice)
	defer cancelLate()
	_, open := <-late
	assert.False(t, open)
	assert.Equal(t, 0, broker.SubscriberCount(alice))

	broker.Publish(change(alice, "after-close"))
}

func TestNewBroker_ClosesOnStop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	broker := NewBroker(lc, &config.Config{Realtime: &config.RealtimeConfig{SubscriberBuffer: 2}}, slog.New(slog.DiscardHandler))
	connector := uuid.New()

	lc.RequireStart()
	ch, _ := broker.Subscribe(context.Background(), connector)
	lc.RequireStop()

	_, open := <-ch
	assert.False(t, open)
}
