package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"knect/internal/domain/entity"
	domainerrors "knect/internal/domain/errors"
	"knect/internal/domain/pass"
	"knect/internal/infra/realtime"
	mockUsecase "knect/internal/mocks/usecase"
	"knect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newConnectionHandler(t *testing.T) (*mockUsecase.MockConnectionUsecase, *ConnectionHandler) {
	t.Helper()

	connectionUC := mockUsecase.NewMockConnectionUsecase(t)

	return connectionUC, NewConnectionHandler(ConnectionHandlerParams{
		ConnectionUC: connectionUC,
		Logger:       newDiscardLogger(),
	})
}

func TestConnectionHandler_List(t *testing.T) {
	userID := uuid.New()
	connectionUC, h := newConnectionHandler(t)
	e := newTestEcho()
	e.GET("/connections", h.List, asUser(userID))

	view := &entity.ConnectionView{
		Connection: entity.Connection{ID: uuid.New(), ConnectorID: userID, ConnectedToID: uuid.New()},
		FullName:   "Grace Hopper",
	}
	connectionUC.EXPECT().List(mock.Anything, userID, "grace").Return([]*entity.ConnectionView{view}, nil)

	rec := serve(e, http.MethodGet, "/connections?q=grace", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var views []entity.ConnectionView
	decodeData(t, rec, &views)
	require.Len(t, views, 1)
	assert.Equal(t, "Grace Hopper", views[0].FullName)
}

func TestConnectionHandler_Get(t *testing.T) {
	userID := uuid.New()

	t.Run("rejects a malformed id", func(t *testing.T) {
		_, h := newConnectionHandler(t)
		e := newTestEcho()
		e.GET("/connections/:id", h.Get, asUser(userID))

		rec := serve(e, http.MethodGet, "/connections/not-a-uuid", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})

	t.Run("maps a missing connection", func(t *testing.T) {
		connectionUC, h := newConnectionHandler(t)
		e := newTestEcho()
		e.GET("/connections/:id", h.Get, asUser(userID))

		id := uuid.New()
		connectionUC.EXPECT().Get(mock.Anything, userID, id).Return(nil, domainerrors.ErrConnectionNotFound)

		rec := serve(e, http.MethodGet, "/connections/"+id.String(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "CONNECTION_NOT_FOUND", decodeError(t, rec).Code)
	})
}

func TestConnectionHandler_UpsertPair(t *testing.T) {
	userID := uuid.New()
	counterpartID := uuid.New()
	metAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("stores the pair", func(t *testing.T) {
		connectionUC, h := newConnectionHandler(t)
		e := newTestEcho()
		e.PUT("/connections", h.UpsertPair, asUser(userID))

		connectionUC.EXPECT().
			UpsertPair(mock.Anything, userID, mock.Anything).
			RunAndReturn(func(_ context.Context, _ uuid.UUID, pair [2]entity.Connection) (*entity.PairOutcome, error) {
				return &entity.PairOutcome{Pair: pair, AlreadyConnected: true}, nil
			})

		body := `{"pair":[` +
			`{"connector_id":"` + userID.String() + `","connected_to_id":"` + counterpartID.String() + `","met_at":"2026-03-14T09:30:00Z"},` +
			`{"connector_id":"` + counterpartID.String() + `","connected_to_id":"` + userID.String() + `","met_at":"2026-03-14T09:30:00Z"}]}`
		rec := serve(e, http.MethodPut, "/connections", body)

		require.Equal(t, http.StatusOK, rec.Code)
		var outcome entity.PairOutcome
		decodeData(t, rec, &outcome)
		assert.True(t, outcome.AlreadyConnected)
		assert.Equal(t, userID, outcome.Pair[0].ConnectorID)
		assert.True(t, metAt.Equal(outcome.Pair[1].MetAt))
	})

	t.Run("requires exactly two rows", func(t *testing.T) {
		_, h := newConnectionHandler(t)
		e := newTestEcho()
		e.PUT("/connections", h.UpsertPair, asUser(userID))

		body := `{"pair":[{"connector_id":"` + userID.String() + `","connected_to_id":"` + counterpartID.String() + `"}]}`
		rec := serve(e, http.MethodPut, "/connections", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		errInfo := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
		assert.Equal(t, map[string]any{"pair": "len=2"}, errInfo.Details)
	})
}

func TestConnectionHandler_Scan(t *testing.T) {
	userID := uuid.New()
	counterpartID := uuid.New()
	payload := pass.Encode(counterpartID)

	t.Run("forwards a full coordinate", func(t *testing.T) {
		connectionUC, h := newConnectionHandler(t)
		e := newTestEcho()
		e.POST("/connections/scan", h.Scan, asUser(userID))

		connectionUC.EXPECT().
			Scan(mock.Anything, userID, usecase.ScanInput{Payload: payload, Coordinate: entity.NewCoordinate(25.03, 121.56)}).
			Return(&usecase.ScanOutput{Message: "You are now linked with Grace."}, nil)

		rec := serve(e, http.MethodPost, "/connections/scan",
			`{"payload":"`+payload+`","latitude":25.03,"longitude":121.56}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var out usecase.ScanOutput
		decodeData(t, rec, &out)
		assert.Equal(t, "You are now linked with Grace.", out.Message)
	})

	t.Run("drops a half coordinate", func(t *testing.T) {
		connectionUC, h := newConnectionHandler(t)
		e := newTestEcho()
		e.POST("/connections/scan", h.Scan, asUser(userID))

		connectionUC.EXPECT().
			Scan(mock.Anything, userID, usecase.ScanInput{Payload: payload}).
			Return(&usecase.ScanOutput{}, nil)

		rec := serve(e, http.MethodPost, "/connections/scan", `{"payload":"`+payload+`","latitude":25.03}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects an out of range latitude", func(t *testing.T) {
		_, h := newConnectionHandler(t)
		e := newTestEcho()
		e.POST("/connections/scan", h.Scan, asUser(userID))

		rec := serve(e, http.MethodPost, "/connections/scan",
			`{"payload":"`+payload+`","latitude":91,"longitude":0}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"latitude": "max=90"}, decodeError(t, rec).Details)
	})

	t.Run("maps a self scan", func(t *testing.T) {
		connectionUC, h := newConnectionHandler(t)
		e := newTestEcho()
		e.POST("/connections/scan", h.Scan, asUser(userID))

		connectionUC.EXPECT().Scan(mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrSelfScan)

		rec := serve(e, http.MethodPost, "/connections/scan", `{"payload":"`+pass.Encode(userID)+`"}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		errInfo := decodeError(t, rec)
		assert.Equal(t, "SELF_SCAN", errInfo.Code)
		assert.Equal(t, "You can't connect with yourself.", errInfo.Message)
	})
}

func TestConnectionHandler_Delete(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()
	connectionUC, h := newConnectionHandler(t)
	e := newTestEcho()
	e.DELETE("/connections/:id", h.Delete, asUser(userID))

	connectionUC.EXPECT().Delete(mock.Anything, userID, id).Return(nil)

	rec := serve(e, http.MethodDelete, "/connections/"+id.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestConnectionHandler_Changes(t *testing.T) {
	userID := uuid.New()
	connectionUC, h := newConnectionHandler(t)
	e := newTestEcho()
	e.GET("/connections/changes", h.Changes, asUser(userID))

	changes := make(chan entity.ConnectionChange, 1)
	changes <- entity.ConnectionChange{
		ID:         "evt-1",
		Type:       entity.ChangeInsert,
		Connection: entity.Connection{ID: uuid.New(), ConnectorID: userID, ConnectedToID: uuid.New()},
		ActorID:    userID,
	}
	close(changes)

	cancelled := false
	connectionUC.EXPECT().Changes(mock.Anything, userID).Return(changes, func() { cancelled = true })

	rec := serve(e, http.MethodGet, "/connections/changes", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), realtime.ContentTypeEventStream)
	assert.True(t, cancelled)

	var received []entity.ConnectionChange
	for change, err := range realtime.Changes(rec.Body) {
		require.NoError(t, err)
		received = append(received, change)
	}
	require.Len(t, received, 1)
	assert.Equal(t, "evt-1", received[0].ID)
	assert.Equal(t, entity.ChangeInsert, received[0].Type)
	assert.Equal(t, userID, received[0].ActorID)
}
