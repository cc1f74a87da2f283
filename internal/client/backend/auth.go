package backend

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	domainerrors "knect/internal/domain/errors"
	"knect/internal/domain/service"
	"knect/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// refreshLeeway renews access tokens that are about to expire before they are sent.
const refreshLeeway = 30 * time.Second

// CurrentIdentity returns the stored identity, or uuid.Nil when signed out.
func (c *Client) CurrentIdentity(context.Context) (uuid.UUID, error) {
	session, err := c.currentSession()
	if err != nil || session == nil {
		return uuid.Nil, err
	}

	return session.UserID, nil
}

// SignIn exchanges credentials for a session and stores it.
func (c *Client) SignIn(ctx context.Context, email, password string) error {
	var out usecase.AuthOutput
	err := c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/auth/sign-in",
		body:      map[string]string{"email": email, "password": password},
		anonymous: true,
	}, &out)
	if err != nil {
		return err
	}

	return c.establish(&out)
}

// SignUp creates an account and stores its session.
func (c *Client) SignUp(ctx context.Context, email, password, fullName string) error {
	var out usecase.AuthOutput
	err := c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/auth/sign-up",
		body:      map[string]string{"email": email, "password": password, "full_name": fullName},
		anonymous: true,
	}, &out)
	if err != nil {
		return err
	}

	return c.establish(&out)
}

// SignOut revokes the refresh token and forgets the session. The local session is dropped even
// when the server cannot be reached.
func (c *Client) SignOut(ctx context.Context) error {
	session, err := c.currentSession()
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}

	err = c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/auth/sign-out",
		body:      map[string]string{"refresh_token": session.RefreshToken},
		anonymous: true,
	}, nil)
	if err != nil {
		c.logger.Warn("Failed to revoke refresh token", slog.Any("error", err))
	}
	c.dropSession()

	return nil
}

// WatchIdentity reports identity changes made through this client. The channel is closed once
// the returned func is called or ctx ends.
func (c *Client) WatchIdentity(ctx context.Context) (<-chan uuid.UUID, func()) {
	ch := make(chan uuid.UUID, 1)

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.watchers[id] = ch
	c.mu.Unlock()

	done := make(chan struct{})
	stop := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if _, ok := c.watchers[id]; ok {
			delete(c.watchers, id)
			close(ch)
			close(done)
		}
	}
	go func() {
		select {
		case <-ctx.Done():
			stop()
		case <-done:
		}
	}()

	return ch, stop
}

func (c *Client) establish(out *usecase.AuthOutput) error {
	if out.User == nil {
		return errors.New("sign-in response without user")
	}

	session := &Tokens{AccessToken: out.AccessToken, RefreshToken: out.RefreshToken, UserID: out.User.ID}
	if err := c.tokens.Save(session); err != nil {
		return err
	}

	c.mu.Lock()
	c.session = session
	c.loaded = true
	c.broadcastLocked(session.UserID)
	c.mu.Unlock()

	return nil
}

func (c *Client) currentSession() (*Tokens, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		session, err := c.tokens.Load()
		if err != nil {
			return nil, err
		}
		c.session = session
		c.loaded = true
	}
	if c.session == nil {
		return nil, nil
	}
	copied := *c.session

	return &copied, nil
}

// refresh renews the access token. A rejected refresh token ends the session.
func (c *Client) refresh(ctx context.Context) error {
	session, err := c.currentSession()
	if err != nil {
		return err
	}
	if session == nil || session.RefreshToken == "" {
		c.dropSession()

		return domainerrors.ErrAuthRequired
	}

	var out usecase.AuthOutput
	err = c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/auth/refresh",
		body:      map[string]string{"refresh_token": session.RefreshToken},
		anonymous: true,
	}, &out)
	if errors.Is(err, domainerrors.ErrRefreshTokenInvalid) || errors.Is(err, domainerrors.ErrInvalidCredentials) {
		c.dropSession()

		return domainerrors.ErrAuthRequired
	}
	if err != nil {
		return err
	}

	session.AccessToken = out.AccessToken
	if out.RefreshToken != "" {
		session.RefreshToken = out.RefreshToken
	}
	if err := c.tokens.Save(session); err != nil {
		return err
	}

	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	return nil
}

// ensureFresh refreshes ahead of time when the access token is about to expire. Tokens that
// cannot be parsed are sent as they are and left to the server.
func (c *Client) ensureFresh(ctx context.Context) error {
	session, err := c.currentSession()
	if err != nil || session == nil {
		return err
	}

	var claims service.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(session.AccessToken, &claims); err != nil {
		return nil
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > refreshLeeway {
		return nil
	}

	return c.refresh(ctx)
}

func (c *Client) dropSession() {
	if err := c.tokens.Clear(); err != nil {
		c.logger.Warn("Failed to clear stored session", slog.Any("error", err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded && c.session == nil {
		return
	}
	c.session = nil
	c.loaded = true
	c.broadcastLocked(uuid.Nil)
}

// broadcastLocked delivers id to every watcher, replacing an undelivered older value.
func (c *Client) broadcastLocked(id uuid.UUID) {
	for _, ch := range c.watchers {
		select {
		case <-ch:
		default:
		}
		ch <- id
	}
}
