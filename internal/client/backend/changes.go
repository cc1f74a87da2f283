package backend

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"knect/internal/domain/entity"
	domainerrors "knect/internal/domain/errors"
	"knect/internal/infra/realtime"

	"github.com/pkg/errors"
)

// SubscribeChanges follows the connection change feed of the signed-in user, reconnecting after
// failures. The channel is closed once the returned func is called or ctx ends.
func (c *Client) SubscribeChanges(ctx context.Context) (<-chan entity.ConnectionChange, func()) {
	ctx, cancel := context.WithCancel(ctx)
	out := make(chan entity.ConnectionChange, 16)

	go func() {
		defer close(out)
		for {
			err := c.follow(ctx, out)
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, domainerrors.ErrAuthRequired) {
				c.logger.Info("Change feed stopped, session ended")

				return
			}
			c.logger.Debug("Change feed disconnected", slog.Any("error", err))

			timer := time.NewTimer(c.reconnectDelay)
			select {
			case <-ctx.Done():
				timer.Stop()

				return
			case <-timer.C:
			}
		}
	}()

	return out, cancel
}

// follow reads one connection of the change feed until it ends.
func (c *Client) follow(ctx context.Context, out chan<- entity.ConnectionChange) error {
	if err := c.ensureFresh(ctx); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, request{method: http.MethodGet, path: apiPrefix + "/connections/changes"})
	if err != nil {
		return err
	}
	req.Header.Set("Accept", realtime.ContentTypeEventStream)

	resp, err := c.stream.Do(req)
	if err != nil {
		return domainerrors.ErrNetworkFailure.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return c.refresh(ctx)
	}
	if resp.StatusCode != http.StatusOK {
		return decode(resp, nil)
	}

	for change, err := range realtime.Changes(resp.Body) {
		var malformed *realtime.MalformedEventError
		if errors.As(err, &malformed) {
			c.logger.Warn("Skipping malformed change event", slog.String("id", malformed.ID), slog.Any("error", malformed.Err))

			continue
		}
		if err != nil {
			return err
		}

		select {
		case out <- change:
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		}
	}

	return errors.New("change feed closed by server")
}
