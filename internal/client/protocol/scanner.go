// Package protocol turns a scanned Knect Pass into a mutual, located connection.
package protocol

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"knect/internal/client/location"
	"knect/internal/domain/entity"
	domainerrors "knect/internal/domain/errors"
	"knect/internal/domain/pass"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrBusy is returned for scans that arrive while another scan is being processed.
var ErrBusy = errors.New("scan already in progress")

// Identity reports who is signed in.
type Identity interface {
	CurrentUserID() (uuid.UUID, bool)
}

// Profiles looks up public profiles.
type Profiles interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
}

// Connections commits connection pairs.
type Connections interface {
	UpsertPair(ctx context.Context, pair [2]entity.Connection) (*entity.PairOutcome, error)
}

// Locator resolves the meeting place. A nil fix means the location is unknown.
type Locator interface {
	Resolve(ctx context.Context) *location.Fix
}

// Params holds the collaborators of a Scanner.
type Params struct {
	Identity    Identity
	Profiles    Profiles
	Connections Connections
	Locator     Locator
	Logger      *slog.Logger
}

// Result is the outcome of a successful scan.
type Result struct {
	Counterpart      *entity.Profile
	Pair             [2]entity.Connection
	AlreadyConnected bool
	Message          string
}

// Scanner processes one scan at a time. Scans arriving while it is disarmed are ignored.
type Scanner struct {
	identity    Identity
	profiles    Profiles
	connections Connections
	locator     Locator
	logger      *slog.Logger
	now         func() time.Time
	busy        atomic.Bool
}

// NewScanner returns an armed Scanner.
func NewScanner(params Params) *Scanner {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Scanner{
		identity:    params.Identity,
		profiles:    params.Profiles,
		connections: params.Connections,
		locator:     params.Locator,
		logger:      logger,
		now:         time.Now,
	}
}

// Armed reports whether the next scan will be processed.
func (s *Scanner) Armed() bool {
	return !s.busy.Load()
}

// HandleScan runs the connection protocol for a decoded QR payload. The scanner is disarmed for the
// duration of the call and re-armed on every exit path.
func (s *Scanner) HandleScan(ctx context.Context, payload string) (*Result, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer s.busy.Store(false)

	counterpartID, err := pass.Decode(payload)
	if err != nil {
		return nil, err
	}

	userID, ok := s.identity.CurrentUserID()
	if !ok {
		return nil, domainerrors.ErrAuthRequired
	}
	if counterpartID == userID {
		return nil, domainerrors.ErrSelfScan
	}

	counterpart, err := s.profiles.GetProfile(ctx, counterpartID)
	if err != nil {
		return nil, lookupError(err)
	}
	if counterpart == nil {
		return nil, domainerrors.ErrUnknownUser
	}

	fix := s.locator.Resolve(ctx)
	pair := entity.NewMutualPair(userID, counterpartID, s.now(), fix.Coordinate())

	outcome, err := s.connections.UpsertPair(ctx, pair)
	if err != nil {
		s.logger.Error("Failed to commit connection pair",
			slog.String("counterpartID", counterpartID.String()), slog.Any("error", err))

		return nil, commitError(err)
	}

	return &Result{
		Counterpart:      counterpart,
		Pair:             outcome.Pair,
		AlreadyConnected: outcome.AlreadyConnected,
		Message:          outcome.Message(counterpart.DisplayName()),
	}, nil
}

func lookupError(err error) error {
	switch {
	case errors.Is(err, domainerrors.ErrProfileNotFound), errors.Is(err, domainerrors.ErrUnknownUser):
		return domainerrors.ErrUnknownUser
	case errors.Is(err, domainerrors.ErrAuthRequired), errors.Is(err, domainerrors.ErrRefreshTokenInvalid):
		return domainerrors.ErrAuthRequired
	default:
		return domainerrors.ErrNetworkFailure.WrapMessage(err.Error())
	}
}

func commitError(err error) error {
	switch {
	case errors.Is(err, domainerrors.ErrNetworkFailure):
		return domainerrors.ErrNetworkFailure.WrapMessage(err.Error())
	case errors.Is(err, domainerrors.ErrAuthRequired), errors.Is(err, domainerrors.ErrRefreshTokenInvalid):
		return domainerrors.ErrAuthRequired
	case errors.Is(err, domainerrors.ErrUnknownUser), errors.Is(err, domainerrors.ErrSelfScan):
		return err
	default:
		return domainerrors.ErrStorageWriteFailed.WrapMessage(err.Error())
	}
}

const genericFailureMessage = "Something went wrong. Please try again."

// Message returns the text shown to the user for a scan error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrBusy) {
		return "A scan is already being processed."
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return genericFailureMessage
}
