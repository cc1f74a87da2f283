package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliverycontext "knect/internal/delivery/context"
	"knect/internal/domain/entity"
	domainerrors "knect/internal/domain/errors"
	"knect/internal/domain/pass"
	"knect/internal/domain/repository"
	"knect/internal/domain/service"
	"knect/internal/infra/geo"
	"knect/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.uber.org/fx"
)

type connectionService struct {
	txManager      repository.TransactionManager
	connectionRepo repository.ConnectionRepository
	profileRepo    repository.ProfileRepository
	broker         service.ChangeBroker
	publisher      service.EventPublisher
	logger         *slog.Logger
	now            func() time.Time
}

// ConnectionServiceParams holds dependencies for ConnectionService, injected by Fx.
type ConnectionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ConnectionRepo repository.ConnectionRepository
	ProfileRepo    repository.ProfileRepository
	Broker         service.ChangeBroker
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewConnectionService creates the connection use case.
func NewConnectionService(params ConnectionServiceParams) usecase.ConnectionUsecase {
	return &connectionService{
		txManager:      params.TxManager,
		connectionRepo: params.ConnectionRepo,
		profileRepo:    params.ProfileRepo,
		broker:         params.Broker,
		publisher:      params.Publisher,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *connectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the caller's connections, newest meeting first, optionally filtered by name or title.
func (srv *connectionService) List(ctx context.Context, userID uuid.UUID, query string) ([]*entity.ConnectionView, error) {
	views, err := srv.connectionRepo.ListByConnector(ctx, userID, repository.ConnectionFilter{
		Query: strings.TrimSpace(query),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connections")
	}

	return views, nil
}

// Get returns one of the caller's connections.
func (srv *connectionService) Get(ctx context.Context, userID, id uuid.UUID) (*entity.ConnectionView, error) {
	view, err := srv.connectionRepo.FindOwned(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return nil, domainerrors.ErrConnectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find connection")
	}

	return view, nil
}

// UpsertPair stores a client-built mirrored pair. Repeating the call updates the same two rows.
func (srv *connectionService) UpsertPair(ctx context.Context, userID uuid.UUID, pair [2]entity.Connection) (*entity.PairOutcome, error) {
	if err := validatePair(userID, pair); err != nil {
		return nil, err
	}

	counterpart := pair[0].ConnectedToID
	if pair[0].ConnectorID != userID {
		counterpart = pair[0].ConnectorID
	}
	if _, err := srv.profileRepo.FindByID(ctx, counterpart); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrUnknownUser
		}

		return nil, errors.Wrap(err, "failed to find counterpart profile")
	}

	return srv.commit(ctx, userID, pair)
}

// Scan runs the connection protocol for a scanned pass payload on behalf of userID.
func (srv *connectionService) Scan(ctx context.Context, userID uuid.UUID, input usecase.ScanInput) (*usecase.ScanOutput, error) {
	counterpartID, err := pass.Decode(input.Payload)
	if err != nil {
		return nil, err
	}
	if counterpartID == userID {
		return nil, domainerrors.ErrSelfScan
	}

	counterpart, err := srv.profileRepo.FindByID(ctx, counterpartID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrUnknownUser
		}

		return nil, errors.Wrap(err, "failed to find counterpart profile")
	}

	coord := input.Coordinate
	if coord != nil && !coord.Valid() {
		srv.log(ctx).Warn("Dropping out of range scan coordinate",
			slog.Float64("latitude", coord.Latitude), slog.Float64("longitude", coord.Longitude))
		coord = nil
	}

	outcome, err := srv.commit(ctx, userID, entity.NewMutualPair(userID, counterpartID, srv.now(), coord))
	if err != nil {
		return nil, err
	}

	return &usecase.ScanOutput{
		Counterpart:      counterpart,
		Pair:             outcome.Pair,
		AlreadyConnected: outcome.AlreadyConnected,
		Message:          outcome.Message(counterpart.DisplayName()),
	}, nil
}

// Delete removes the caller's own row. The counterpart keeps theirs.
func (srv *connectionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	deleted, err := srv.connectionRepo.DeleteOwned(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return domainerrors.ErrConnectionNotFound
		}

		return errors.Wrap(err, "failed to delete connection")
	}

	srv.emit(ctx, userID, entity.ChangeDelete, *deleted)

	return nil
}

// Map plots the caller's located connections.
func (srv *connectionService) Map(ctx context.Context, userID uuid.UUID) (*geojson.FeatureCollection, error) {
	views, err := srv.List(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	return geo.ConnectionMap(views), nil
}

// Changes subscribes to the change feed of the caller's own rows.
func (srv *connectionService) Changes(ctx context.Context, userID uuid.UUID) (<-chan entity.ConnectionChange, func()) {
	return srv.broker.Subscribe(ctx, userID)
}

func (srv *connectionService) commit(ctx context.Context, userID uuid.UUID, pair [2]entity.Connection) (*entity.PairOutcome, error) {
	outcome := &entity.PairOutcome{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewConnectionRepository()

		exists, err := repo.Exists(ctx, pair[0].ConnectorID, pair[0].ConnectedToID)
		if err != nil {
			return errors.Wrap(err, "failed to check existing connection")
		}

		saved, err := repo.UpsertPair(ctx, pair)
		if err != nil {
			return errors.Wrap(err, "failed to upsert connection pair")
		}

		outcome.Pair = saved
		outcome.AlreadyConnected = exists

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store connection pair",
			slog.String("connectorID", pair[0].ConnectorID.String()),
			slog.String("connectedToID", pair[0].ConnectedToID.String()),
			slog.Any("error", err))

		// Constraint failures the repository maps to domain errors, such as a counterpart deleted
		// since the lookup, keep their kind.
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			return nil, err
		}

		return nil, domainerrors.ErrStorageWriteFailed.WrapMessage(err.Error())
	}

	changeType := entity.ChangeInsert
	if outcome.AlreadyConnected {
		changeType = entity.ChangeUpdate
	}
	for _, row := range outcome.Pair {
		srv.emit(ctx, userID, changeType, row)
	}

	srv.log(ctx).Info("Connection pair stored",
		slog.String("connectorID", pair[0].ConnectorID.String()),
		slog.String("connectedToID", pair[0].ConnectedToID.String()),
		slog.Bool("alreadyConnected", outcome.AlreadyConnected))

	return outcome, nil
}

// emit fans the change out to live subscribers and to the push pipeline. Publish failures are
// logged only; the rows are already committed.
func (srv *connectionService) emit(ctx context.Context, actorID uuid.UUID, changeType entity.ChangeType, row entity.Connection) {
	change := entity.ConnectionChange{
		ID:         xid.New().String(),
		Type:       changeType,
		Connection: row,
		ActorID:    actorID,
		OccurredAt: srv.now().UTC(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
	}

	srv.broker.Publish(change)

	if err := srv.publisher.PublishConnectionChange(ctx, &change); err != nil {
		srv.log(ctx).Warn("Failed to publish connection change",
			slog.String("eventID", change.ID), slog.Any("error", err))
	}
}

func validatePair(userID uuid.UUID, pair [2]entity.Connection) error {
	first, second := pair[0], pair[1]

	if first.ConnectorID == first.ConnectedToID {
		return domainerrors.ErrSelfScan
	}
	if first.ConnectorID == uuid.Nil || first.ConnectedToID == uuid.Nil {
		return domainerrors.ErrInvalidPair.WithDetails("both identities are required")
	}
	if !first.IsMirrorOf(&second) {
		return domainerrors.ErrInvalidPair.WithDetails("rows must mirror each other")
	}
	if first.ConnectorID != userID && second.ConnectorID != userID {
		return domainerrors.ErrInvalidPair.WithDetails("caller must be the connector of one row")
	}
	if first.MetAt.IsZero() {
		return domainerrors.ErrInvalidPair.WithDetails("met_at is required")
	}
	if (first.Latitude == nil) != (first.Longitude == nil) {
		return domainerrors.ErrInvalidPair.WithDetails("latitude and longitude must be set together")
	}
	if loc := first.Location(); loc != nil && !loc.Valid() {
		return domainerrors.ErrInvalidPair.WithDetails("coordinate out of range")
	}

	return nil
}
