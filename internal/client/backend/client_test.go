package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"knect/internal/domain/entity"
	domainerrors "knect/internal/domain/errors"
	"knect/internal/domain/service"
	"knect/internal/infra/realtime"
	"knect/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data, "meta": map[string]string{"request_id": "req-1"}})
}

func writeError(w http.ResponseWriter, status int, code, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]any{"code": code, "message": message}
	if details != nil {
		body["details"] = details
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"error": body, "meta": map[string]string{"request_id": "req-1"}})
}

func accessToken(t *testing.T, userID uuid.UUID, ttl time.Duration) string {
	t.Helper()

	claims := service.Claims{
		UserID: userID,
		Type:   service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return signed
}

func newTestClient(t *testing.T, handler http.Handler, tokens TokenStore) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Params{
		BaseURL:        server.URL + "/",
		Tokens:         tokens,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		ReconnectDelay: 10 * time.Millisecond,
		HTTPClient:     server.Client(),
	})
	require.NoError(t, err)

	return client
}

func signedIn(t *testing.T, userID uuid.UUID) *MemoryTokenStore {
	t.Helper()

	store := &MemoryTokenStore{}
	require.NoError(t, store.Save(&Tokens{
		AccessToken:  accessToken(t, userID, time.Hour),
		RefreshToken: "refresh-1",
		UserID:       userID,
	}))

	return store
}

func TestNewClient_RejectsBadBaseURL(t *testing.T) {
	_, err := NewClient(Params{BaseURL: "localhost"})
	require.Error(t, err)
}

func TestClient_SignIn(t *testing.T) {
	userID := uuid.New()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/sign-in", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Empty(t, r.Header.Get("Authorization"))
		if body["password"] != "secret" {
			writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password.", nil)

			return
		}
		writeData(w, http.StatusOK, map[string]any{
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
			"user":          map[string]any{"id": userID},
		})
	})
	tokens := &MemoryTokenStore{}
	client := newTestClient(t, mux, tokens)

	changes, stop := client.WatchIdentity(context.Background())
	defer stop()

	err := client.SignIn(context.Background(), "ada@example.com", "wrong")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	require.NoError(t, client.SignIn(context.Background(), "ada@example.com", "secret"))

	select {
	case id := <-changes:
		assert.Equal(t, userID, id)
	case <-time.After(time.Second):
		t.Fatal("identity change not delivered")
	}

	id, err := client.CurrentIdentity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, userID, id)

	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, &Tokens{AccessToken: "access-1", RefreshToken: "refresh-1", UserID: userID}, stored)
}

func TestClient_ErrorMapping(t *testing.T) {
	userID := uuid.New()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/connections/scan", func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusUnprocessableEntity, "SELF_SCAN", "You can't scan your own pass.", nil)
	})
	mux.HandleFunc("PUT /api/v1/profile", func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid input.", map[string]string{"full_name": "max=120"})
	})
	mux.HandleFunc("GET /api/v1/pass/token", func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusTeapot, "BREWING", "Short and stout.", "still brewing")
	})
	mux.HandleFunc("GET /api/v1/connections", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	client := newTestClient(t, mux, signedIn(t, userID))
	ctx := context.Background()

	_, err := client.Scan(ctx, "knect://user/"+userID.String(), nil)
	require.ErrorIs(t, err, domainerrors.ErrSelfScan)

	_, err = client.SaveProfile(ctx, usecase.ProfileInput{FullName: "x"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.JSONEq(t, `{"full_name":"max=120"}`, appErr.Details())

	_, err = client.PassToken(ctx)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BREWING", appErr.ErrorCode())
	assert.Equal(t, http.StatusTeapot, appErr.HTTPCode())
	assert.Equal(t, "still brewing", appErr.Details())

	_, err = client.ListConnections(ctx)
	require.ErrorIs(t, err, domainerrors.ErrNetworkFailure)
}

func TestClient_RequiresSession(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		calls.Add(1)
	}), &MemoryTokenStore{})

	_, err := client.ListConnections(context.Background())

	require.ErrorIs(t, err, domainerrors.ErrAuthRequired)
	assert.Zero(t, calls.Load())
}

func TestClient_RefreshesOnUnauthorized(t *testing.T) {
	userID := uuid.New()
	fresh := accessToken(t, userID, time.Hour)
	var refreshes atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshes.Add(1)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refresh-1", body["refresh_token"])
		writeData(w, http.StatusOK, map[string]any{"access_token": fresh, "user": map[string]any{"id": userID}})
	})
	mux.HandleFunc("GET /api/v1/connections", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+fresh {
			writeError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token.", nil)

			return
		}
		assert.Equal(t, "grace", r.URL.Query().Get("q"))
		writeData(w, http.StatusOK, []map[string]any{{"id": uuid.New(), "full_name": "Grace"}})
	})
	tokens := signedIn(t, userID)
	stale, err := tokens.Load()
	require.NoError(t, err)
	require.NotEqual(t, fresh, stale.AccessToken)
	client := newTestClient(t, mux, tokens)

	views, err := client.SearchConnections(context.Background(), "grace")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Grace", views[0].FullName)
	assert.Equal(t, int32(1), refreshes.Load())

	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, fresh, stored.AccessToken)
	assert.Equal(t, "refresh-1", stored.RefreshToken)
}

func TestClient_RefreshesExpiringToken(t *testing.T) {
	userID := uuid.New()
	fresh := accessToken(t, userID, time.Hour)
	var refreshes atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, _ *http.Request) {
		refreshes.Add(1)
		writeData(w, http.StatusOK, map[string]any{"access_token": fresh, "refresh_token": "refresh-2", "user": map[string]any{"id": userID}})
	})
	mux.HandleFunc("GET /api/v1/pass/token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+fresh, r.Header.Get("Authorization"))
		writeData(w, http.StatusOK, map[string]string{"token": "knect://user/" + userID.String()})
	})
	tokens := &MemoryTokenStore{}
	require.NoError(t, tokens.Save(&Tokens{
		AccessToken:  accessToken(t, userID, 5*time.Second),
		RefreshToken: "refresh-1",
		UserID:       userID,
	}))
	client := newTestClient(t, mux, tokens)

	token, err := client.PassToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "knect://user/"+userID.String(), token)
	assert.Equal(t, int32(1), refreshes.Load())
	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "refresh-2", stored.RefreshToken)
}

func TestClient_RejectedRefreshEndsSession(t *testing.T) {
	userID := uuid.New()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Session expired.", nil)
	})
	mux.HandleFunc("GET /api/v1/profiles/{id}", func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token.", nil)
	})
	tokens := signedIn(t, userID)
	client := newTestClient(t, mux, tokens)
	changes, stop := client.WatchIdentity(context.Background())
	defer stop()

	_, err := client.GetProfile(context.Background(), uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrAuthRequired)
	select {
	case id := <-changes:
		assert.Equal(t, uuid.Nil, id)
	case <-time.After(time.Second):
		t.Fatal("sign-out not delivered")
	}
	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Nil(t, stored)

	id, err := client.CurrentIdentity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)
}

func TestClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client, err := NewClient(Params{BaseURL: server.URL, Tokens: signedIn(t, uuid.New())})
	require.NoError(t, err)

	_, err = client.GetConnection(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNetworkFailure)
}

func TestClient_SignOutDropsSessionOffline(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	tokens := signedIn(t, uuid.New())
	client, err := NewClient(Params{BaseURL: server.URL, Tokens: tokens, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)

	require.NoError(t, client.SignOut(context.Background()))

	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestClient_UpsertPairAndAvatar(t *testing.T) {
	userID, otherID := uuid.New(), uuid.New()
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/v1/connections", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Pair []entity.Connection `json:"pair"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Pair, 2)
		writeData(w, http.StatusOK, entity.PairOutcome{Pair: [2]entity.Connection{body.Pair[0], body.Pair[1]}, AlreadyConnected: true})
	})
	mux.HandleFunc("PUT /api/v1/profile/avatar", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)
		assert.Equal(t, "png-bytes", string(raw))
		writeData(w, http.StatusOK, map[string]string{"avatar_url": "http://cdn/avatars/a.png"})
	})
	mux.HandleFunc("GET /api/v1/pass", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	})
	mux.HandleFunc("DELETE /api/v1/connections/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	client := newTestClient(t, mux, signedIn(t, userID))
	ctx := context.Background()

	pair := entity.NewMutualPair(userID, otherID, time.Now().UTC(), nil)
	outcome, err := client.UpsertPair(ctx, pair)
	require.NoError(t, err)
	assert.True(t, outcome.AlreadyConnected)
	assert.Equal(t, otherID, outcome.Pair[0].ConnectedToID)

	url, err := client.UploadAvatar(ctx, []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/avatars/a.png", url)

	png, err := client.PassQRCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)

	require.NoError(t, client.DeleteConnection(ctx, uuid.New()))
}

func TestClient_SubscribeChanges(t *testing.T) {
	userID := uuid.New()
	var connects atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/connections/changes", func(w http.ResponseWriter, r *http.Request) {
		n := connects.Add(1)
		stream, err := realtime.Upgrade(w, r)
		require.NoError(t, err)
		_ = stream.Comment("connected")
		_, _ = io.WriteString(w, "id: bad\ndata: {not json\n\n")

		_ = stream.Send(entity.ConnectionChange{
			ID:         fmt.Sprintf("evt-%d", n),
			Type:       entity.ChangeInsert,
			Connection: entity.Connection{ConnectorID: userID},
		})
		if n > 1 {
			<-r.Context().Done()
		}
	})
	client := newTestClient(t, mux, signedIn(t, userID))

	changes, cancel := client.SubscribeChanges(context.Background())

	first := <-changes
	assert.Equal(t, "evt-1", first.ID)
	assert.Equal(t, userID, first.Connection.ConnectorID)

	second := <-changes
	assert.Equal(t, "evt-2", second.ID)

	cancel()
	select {
	case _, open := <-changes:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("change feed not closed")
	}
}

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileTokenStore(path)

	tokens, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, tokens)

	want := &Tokens{AccessToken: "a", RefreshToken: "r", UserID: uuid.New()}
	require.NoError(t, store.Save(want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := NewFileTokenStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	tokens, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, tokens)
}
