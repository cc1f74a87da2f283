package handler

import (
	"log/slog"
	"net/http"
	"time"

	"knect/config"
	"knect/internal/delivery/api/middleware"
	"knect/internal/delivery/api/response"
	deliverycontext "knect/internal/delivery/context"
	"knect/internal/domain/entity"
	"knect/internal/infra/realtime"
	"knect/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultHeartbeat = 25 * time.Second

// ConnectionHandlerParams holds dependencies for ConnectionHandler, injected by Fx.
type ConnectionHandlerParams struct {
	fx.In

	ConnectionUC usecase.ConnectionUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// ConnectionHandler serves the connection list, the pair upsert, scans and the change stream.
type ConnectionHandler struct {
	connectionUC usecase.ConnectionUsecase
	heartbeat    time.Duration
	logger       *slog.Logger
}

// NewConnectionHandler is the constructor for ConnectionHandler.
func NewConnectionHandler(params ConnectionHandlerParams) *ConnectionHandler {
	heartbeat := defaultHeartbeat
	if params.Config != nil && params.Config.Realtime != nil && params.Config.Realtime.HeartbeatInterval > 0 {
		heartbeat = params.Config.Realtime.HeartbeatInterval
	}

	return &ConnectionHandler{
		connectionUC: params.ConnectionUC,
		heartbeat:    heartbeat,
		logger:       params.Logger,
	}
}

// UpsertPairRequest is the body of PUT /connections.
type UpsertPairRequest struct {
	Pair []entity.Connection `json:"pair" validate:"len=2"`
}

// ScanRequest is the body of POST /connections/scan.
type ScanRequest struct {
	Payload   string   `json:"payload" validate:"required,max=512"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// List returns the caller's connections, newest first, optionally filtered with ?q=.
func (h *ConnectionHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	views, err := h.connectionUC.List(c.Request().Context(), userID, c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views)
}

// Get returns one of the caller's connections.
func (h *ConnectionHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	view, err := h.connectionUC.Get(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UpsertPair stores a mirrored pair built by the client.
func (h *ConnectionHandler) UpsertPair(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	var req UpsertPairRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	outcome, err := h.connectionUC.UpsertPair(c.Request().Context(), userID, [2]entity.Connection{req.Pair[0], req.Pair[1]})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outcome)
}

// Scan runs the connection protocol server-side for a scanned payload.
func (h *ConnectionHandler) Scan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	var req ScanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := usecase.ScanInput{Payload: req.Payload}
	if req.Latitude != nil && req.Longitude != nil {
		input.Coordinate = entity.NewCoordinate(*req.Latitude, *req.Longitude)
	}

	out, err := h.connectionUC.Scan(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// Delete removes the caller's row of a connection.
func (h *ConnectionHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.connectionUC.Delete(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Map returns the caller's located connections as GeoJSON.
func (h *ConnectionHandler) Map(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	collection, err := h.connectionUC.Map(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, collection)
}

// Changes streams the caller's connection changes as Server-Sent Events until the client leaves.
func (h *ConnectionHandler) Changes(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	ctx := c.Request().Context()
	log := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	changes, cancel := h.connectionUC.Changes(ctx, userID)
	defer cancel()

	res := c.Response()
	// The stream outlives the server write timeout.
	if err := http.NewResponseController(res.Writer).SetWriteDeadline(time.Time{}); err != nil {
		log.Debug("Write deadline not adjustable", slog.Any("error", err))
	}
	stream, err := realtime.Upgrade(res, c.Request())
	if err != nil {
		return err
	}
	if err := stream.Comment("connected"); err != nil {
		return nil
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := stream.Comment("ping"); err != nil {
				return nil
			}
		case change, open := <-changes:
			if !open {
				return nil
			}
			if err := stream.Send(change); err != nil {
				log.Debug("Change stream closed", slog.String("eventID", change.ID), slog.Any("error", err))

				return nil
			}
		}
	}
}
