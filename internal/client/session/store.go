// Package session holds the client's view of who is signed in and what they know.
package session

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"knect/internal/client/location"
	"knect/internal/domain/entity"
	domainerrors "knect/internal/domain/errors"
	"knect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// State is the authentication state of the store.
type State int

const (
	StateUnauthenticated State = iota
	StateResolving
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateResolving:
		return "resolving"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Auth is the authentication collaborator.
type Auth interface {
	// CurrentIdentity returns the signed-in identity, or uuid.Nil when signed out.
	CurrentIdentity(ctx context.Context) (uuid.UUID, error)
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password, fullName string) error
	SignOut(ctx context.Context) error
	// WatchIdentity reports every identity change; uuid.Nil means signed out.
	WatchIdentity(ctx context.Context) (<-chan uuid.UUID, func())
}

// Profiles reads and writes profiles and avatars of the signed-in user.
type Profiles interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	SaveProfile(ctx context.Context, input usecase.ProfileInput) (*entity.Profile, error)
	// UploadAvatar stores the image and returns its durable URL.
	UploadAvatar(ctx context.Context, data []byte, contentType string) (string, error)
}

// Connections reads the connection graph of the signed-in user.
type Connections interface {
	ListConnections(ctx context.Context) ([]*entity.ConnectionView, error)
	DeleteConnection(ctx context.Context, id uuid.UUID) error
	// SubscribeChanges streams connection changes until ctx ends or the returned func is called.
	SubscribeChanges(ctx context.Context) (<-chan entity.ConnectionChange, func())
}

// Locator resolves the device position. A nil fix means unknown.
type Locator interface {
	Resolve(ctx context.Context) *location.Fix
}

// Params holds the collaborators of a Store.
type Params struct {
	Auth        Auth
	Profiles    Profiles
	Connections Connections
	Locator     Locator
	Logger      *slog.Logger
}

// Snapshot is a copy of the store state.
type Snapshot struct {
	State         State
	UserID        uuid.UUID
	Profile       *entity.Profile
	Connections   []*entity.ConnectionView
	Location      *location.Fix
	Loading       bool
	AvatarPreview string
}

// AvatarURL returns the local preview while an upload is pending, otherwise the stored avatar.
func (s Snapshot) AvatarURL() string {
	if s.AvatarPreview != "" {
		return s.AvatarPreview
	}

	return s.Profile.Avatar()
}

type slice int

const (
	sliceProfile slice = iota
	sliceConnections
	sliceLocation
	sliceCount
)

var allSlices = []slice{sliceProfile, sliceConnections, sliceLocation}

// ticket fences one fetch: its result is applied only while the identity epoch is unchanged and
// no newer fetch of the same slice has been applied.
type ticket struct {
	slice  slice
	seq    uint64
	epoch  uint64
	userID uuid.UUID
}

// Store is the single source of truth for the signed-in user's session. It is created with New,
// started with Start and released with Stop.
type Store struct {
	auth        Auth
	profiles    Profiles
	connections Connections
	locator     Locator
	logger      *slog.Logger

	mu            sync.RWMutex
	state         State
	userID        uuid.UUID
	epoch         uint64
	profile       *entity.Profile
	list          []*entity.ConnectionView
	fix           *location.Fix
	loading       int
	avatarPreview string
	avatarGen     uint64
	issued        [sliceCount]uint64
	applied       [sliceCount]uint64
	unsubscribe   func()

	updates chan struct{}
	runCtx  context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New returns an unstarted store in the Unauthenticated state.
func New(params Params) *Store {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		auth:        params.Auth,
		profiles:    params.Profiles,
		connections: params.Connections,
		locator:     params.Locator,
		logger:      logger,
		state:       StateUnauthenticated,
		updates:     make(chan struct{}, 1),
	}
}

// Start resolves the current identity, loads its data and begins following auth changes.
func (s *Store) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.runCtx != nil {
		s.mu.Unlock()

		return errors.New("session store already started")
	}
	s.runCtx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	s.state = StateResolving
	s.mu.Unlock()
	s.notify()

	changes, stopWatch := s.auth.WatchIdentity(s.runCtx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer stopWatch()
		for {
			select {
			case <-s.runCtx.Done():
				return
			case id, ok := <-changes:
				if !ok {
					return
				}
				if s.setIdentity(id) {
					s.goRefresh(allSlices, true)
				}
			}
		}
	}()

	id, err := s.auth.CurrentIdentity(ctx)
	if err != nil {
		s.logger.Warn("Failed to resolve current identity", slog.Any("error", err))
		id = uuid.Nil
	}
	if s.setIdentity(id) {
		s.refresh(ctx, allSlices, true)
	} else {
		s.settleResolving()
	}

	return nil
}

// Stop releases the change subscription and waits for background work.
func (s *Store) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	release := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if release != nil {
		release()
	}
	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// Updates signals state changes. Signals are coalesced; read Snapshot after each one.
func (s *Store) Updates() <-chan struct{} {
	return s.updates
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		State:         s.state,
		UserID:        s.userID,
		Profile:       s.profile,
		Connections:   slices.Clone(s.list),
		Location:      s.fix,
		Loading:       s.loading > 0,
		AvatarPreview: s.avatarPreview,
	}
}

// CurrentUserID returns the signed-in identity.
func (s *Store) CurrentUserID() (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.userID, s.state == StateAuthenticated
}

// Search filters the current connections by a case-insensitive substring of name or title.
func (s *Store) Search(query string) []*entity.ConnectionView {
	list := s.Snapshot().Connections
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return list
	}

	return slices.DeleteFunc(list, func(view *entity.ConnectionView) bool {
		return !strings.Contains(strings.ToLower(view.FullName), query) &&
			!strings.Contains(strings.ToLower(view.JobTitle), query)
	})
}

// Refresh re-fetches profile, connections and location for the current identity. It is a no-op
// while signed out and safe to call concurrently.
func (s *Store) Refresh(ctx context.Context) {
	s.refresh(ctx, allSlices, true)
}

// SignIn delegates to the auth collaborator. The state follows from its change notification.
func (s *Store) SignIn(ctx context.Context, email, password string) error {
	return errors.WithStack(s.auth.SignIn(ctx, email, password))
}

// SignUp delegates to the auth collaborator.
func (s *Store) SignUp(ctx context.Context, email, password, fullName string) error {
	return errors.WithStack(s.auth.SignUp(ctx, email, password, fullName))
}

// SignOut delegates to the auth collaborator.
func (s *Store) SignOut(ctx context.Context) error {
	return errors.WithStack(s.auth.SignOut(ctx))
}

// SaveProfile upserts the user's profile and applies the stored version.
func (s *Store) SaveProfile(ctx context.Context, input usecase.ProfileInput) (*entity.Profile, error) {
	t, ok := s.issue(sliceProfile)
	if !ok {
		return nil, domainerrors.ErrAuthRequired
	}

	profile, err := s.profiles.SaveProfile(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	s.apply(t, func() { s.profile = profile })

	return profile, nil
}

// UpdateAvatar shows localRef as the avatar right away and uploads data in the caller's goroutine.
// Once the upload commits the preview is replaced by the durable URL; on failure the preview is
// dropped and the error returned.
func (s *Store) UpdateAvatar(ctx context.Context, localRef string, data []byte, contentType string) (string, error) {
	s.mu.Lock()
	if s.state != StateAuthenticated {
		s.mu.Unlock()

		return "", domainerrors.ErrAuthRequired
	}
	s.avatarGen++
	gen, epoch := s.avatarGen, s.epoch
	s.avatarPreview = localRef
	s.mu.Unlock()
	s.notify()

	url, err := s.profiles.UploadAvatar(ctx, data, contentType)

	s.mu.Lock()
	current := s.epoch == epoch && s.avatarGen == gen
	if current {
		s.avatarPreview = ""
	}
	var (
		t       ticket
		missing bool
	)
	if current && err == nil {
		missing = s.profile == nil
		if !missing {
			t = s.issueLocked(sliceProfile)
		}
	}
	s.mu.Unlock()
	s.notify()

	if err != nil {
		return "", errors.WithStack(err)
	}
	if !current {
		return url, nil
	}

	if missing {
		s.goRefresh([]slice{sliceProfile}, false)

		return url, nil
	}
	// Profile fetches issued before the upload carry the old avatar and are fenced out by t.
	s.apply(t, func() {
		if s.profile == nil {
			return
		}
		updated := *s.profile
		updated.AvatarURL = &url
		s.profile = &updated
	})

	return url, nil
}

// DeleteConnection removes one of the user's connections and reloads the list.
func (s *Store) DeleteConnection(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.CurrentUserID(); !ok {
		return domainerrors.ErrAuthRequired
	}

	if err := s.connections.DeleteConnection(ctx, id); err != nil {
		return errors.WithStack(err)
	}
	s.refresh(ctx, []slice{sliceConnections}, false)

	return nil
}

// setIdentity moves the store to the state implied by id. It reports whether a new identity was
// entered and needs its data loaded.
func (s *Store) setIdentity(id uuid.UUID) bool {
	s.mu.Lock()
	if (s.state == StateAuthenticated && s.userID == id) || (s.state == StateUnauthenticated && id == uuid.Nil) {
		s.mu.Unlock()

		return false
	}

	release := s.unsubscribe
	s.unsubscribe = nil
	s.epoch++
	s.userID = id
	s.profile = nil
	s.list = nil
	s.avatarPreview = ""

	entered := id != uuid.Nil
	if entered {
		s.state = StateAuthenticated
	} else if s.state != StateResolving {
		s.state = StateUnauthenticated
	}
	epoch := s.epoch
	s.mu.Unlock()

	if release != nil {
		release()
	}
	if entered {
		s.subscribe(id, epoch)
	}
	s.notify()

	return entered
}

// settleResolving ends the launch lookup without an identity.
func (s *Store) settleResolving() {
	s.mu.Lock()
	changed := s.state == StateResolving
	if changed {
		s.state = StateUnauthenticated
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// subscribe opens the change stream for one identity. The handler closes over that identity and
// epoch, so events from an earlier session can never touch the state of a later one.
func (s *Store) subscribe(userID uuid.UUID, epoch uint64) {
	ctx, cancel := context.WithCancel(s.runCtx)
	changes, stop := s.connections.SubscribeChanges(ctx)
	release := func() {
		cancel()
		stop()
	}

	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		release()

		return
	}
	s.unsubscribe = release
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case change, ok := <-changes:
				if !ok {
					return
				}
				if change.Connection.ConnectorID != userID {
					continue
				}
				s.refresh(ctx, []slice{sliceConnections}, false)
			}
		}
	}()
}

func (s *Store) goRefresh(targets []slice, manual bool) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.refresh(s.runCtx, targets, manual)
	}()
}

// refresh runs the requested fetches in parallel. Each fetch is isolated: a failure is logged and
// leaves its slice as it was. Only manual refreshes toggle the loading indicator.
func (s *Store) refresh(ctx context.Context, targets []slice, manual bool) {
	tickets := make([]ticket, 0, len(targets))
	s.mu.Lock()
	if s.state != StateAuthenticated {
		s.mu.Unlock()

		return
	}
	for _, target := range targets {
		tickets = append(tickets, s.issueLocked(target))
	}
	if manual {
		s.loading++
	}
	s.mu.Unlock()
	if manual {
		s.notify()
	}

	var g errgroup.Group
	for _, t := range tickets {
		g.Go(func() error {
			s.fetch(ctx, t)

			return nil
		})
	}
	_ = g.Wait()

	if manual {
		s.mu.Lock()
		s.loading--
		s.mu.Unlock()
		s.notify()
	}
}

func (s *Store) fetch(ctx context.Context, t ticket) {
	log := s.logger.With(slog.String("userID", t.userID.String()))

	switch t.slice {
	case sliceProfile:
		profile, err := s.profiles.GetProfile(ctx, t.userID)
		if err != nil {
			log.Warn("Failed to fetch profile", slog.Any("error", err))

			return
		}
		s.apply(t, func() { s.profile = profile })
	case sliceConnections:
		list, err := s.connections.ListConnections(ctx)
		if err != nil {
			log.Warn("Failed to fetch connections", slog.Any("error", err))

			return
		}
		slices.SortStableFunc(list, func(a, b *entity.ConnectionView) int {
			return b.MetAt.Compare(a.MetAt)
		})
		s.apply(t, func() { s.list = list })
	case sliceLocation:
		fix := s.locator.Resolve(ctx)
		if fix == nil {
			log.Debug("Location unknown, keeping the previous fix")

			return
		}
		s.apply(t, func() { s.fix = fix })
	}
}

func (s *Store) issue(target slice) (ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthenticated {
		return ticket{}, false
	}

	return s.issueLocked(target), true
}

func (s *Store) issueLocked(target slice) ticket {
	s.issued[target]++

	return ticket{slice: target, seq: s.issued[target], epoch: s.epoch, userID: s.userID}
}

// apply runs set under the lock if the ticket is still current.
func (s *Store) apply(t ticket, set func()) bool {
	s.mu.Lock()
	if t.epoch != s.epoch || t.seq <= s.applied[t.slice] {
		s.mu.Unlock()
		s.logger.Debug("Discarding stale result", slog.Int("slice", int(t.slice)), slog.Uint64("seq", t.seq))

		return false
	}
	s.applied[t.slice] = t.seq
	set()
	s.mu.Unlock()
	s.notify()

	return true
}

func (s *Store) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}
