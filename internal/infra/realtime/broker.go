package realtime

import (
	"context"
	"log/slog"
	"sync"

	"knect/config"
	"knect/internal/domain/entity"
	"knect/internal/domain/service"

	"github.com/google/uuid"
	"github.com/rs/xid"
	"go.uber.org/fx"
)

const defaultBuffer = 16

type subscriber struct {
	id      xid.ID
	changes chan entity.ConnectionChange
	once    sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.changes) })
}

// Broker is an in-process ChangeBroker. Changes are routed by connector id; a subscriber whose
// buffer is full misses the change instead of stalling the publisher.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[xid.ID]*subscriber
	buffer      int
	closed      bool
	logger      *slog.Logger
}

// NewBroker creates a broker sized from the realtime configuration. Open streams are closed when
// the application stops.
func NewBroker(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) service.ChangeBroker {
	buffer := defaultBuffer
	if cfg != nil && cfg.Realtime != nil && cfg.Realtime.SubscriberBuffer > 0 {
		buffer = cfg.Realtime.SubscriberBuffer
	}

	broker := newBroker(buffer, logger)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			broker.Close()

			return nil
		},
	})

	return broker
}

func newBroker(buffer int, logger *slog.Logger) *Broker {
	return &Broker{
		subscribers: make(map[uuid.UUID]map[xid.ID]*subscriber),
		buffer:      buffer,
		logger:      logger,
	}
}

func (b *Broker) Publish(change entity.ConnectionChange) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subscribers[change.Connection.ConnectorID] {
		select {
		case sub.changes <- change:
		default:
			b.logger.Warn("Dropping change for slow subscriber",
				slog.String("subscriber_id", sub.id.String()),
				slog.String("event_id", change.ID),
			)
		}
	}
}

func (b *Broker) Subscribe(ctx context.Context, connectorID uuid.UUID) (<-chan entity.ConnectionChange, func()) {
	sub := &subscriber{
		id:      xid.New(),
		changes: make(chan entity.ConnectionChange, b.buffer),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		sub.close()

		return sub.changes, func() {}
	}
	if b.subscribers[connectorID] == nil {
		b.subscribers[connectorID] = make(map[xid.ID]*subscriber)
	}
	b.subscribers[connectorID][sub.id] = sub
	b.mu.Unlock()

	stop := make(chan struct{})
	var stopOnce sync.Once
	cancel := func() {
		stopOnce.Do(func() {
			close(stop)
			b.remove(connectorID, sub)
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-stop:
		}
	}()

	return sub.changes, cancel
}

// Close ends every open stream and rejects later subscriptions. It is safe to call more than once.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	count := 0
	for connectorID, subs := range b.subscribers {
		for _, sub := range subs {
			sub.close()
			count++
		}
		delete(b.subscribers, connectorID)
	}
	b.logger.Info("Change broker closed", slog.Int("streams", count))
}

// SubscriberCount returns the live subscribers of a connector.
func (b *Broker) SubscriberCount(connectorID uuid.UUID) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subscribers[connectorID])
}

func (b *Broker) remove(connectorID uuid.UUID, sub *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if subs, ok := b.subscribers[connectorID]; ok {
		delete(subs, sub.id)
		if len(subs) == 0 {
			delete(b.subscribers, connectorID)
		}
	}
	sub.close()
}
