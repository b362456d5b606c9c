package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/multierr"

	"github.com/paylinkbr/paylink-core/internal/identity"
	pkgerrors "github.com/paylinkbr/paylink-core/pkg/errors"
	"github.com/paylinkbr/paylink-core/pkg/logger"
	"github.com/paylinkbr/paylink-core/pkg/storage"
)

// Store is the single source of truth for the active session. Only the auth
// gateway mutates it; everything else reads. Overlapping writers are not
// deduplicated: the last Set wins, matching the platform's double-submit
// behavior.
type Store struct {
	mu      sync.RWMutex
	current *identity.Identity
	token   string

	store storage.Store
	logg  *logger.Logger
}

func NewStore(store storage.Store, logg *logger.Logger) *Store {
	return &Store{store: store, logg: logg}
}

// Bootstrap rehydrates the session from durable storage. Malformed or
// partial persisted state is discarded and the process starts
// unauthenticated; this never fails the caller.
func (s *Store) Bootstrap(ctx context.Context) {
	rawIdentity, err := s.store.Get(ctx, KeyIdentity)
	if err != nil {
		s.discardPersisted(ctx, err)
		return
	}
	token, err := s.store.Get(ctx, KeyToken)
	if err != nil {
		s.discardPersisted(ctx, err)
		return
	}

	id, err := identity.Decode([]byte(rawIdentity))
	if err != nil {
		s.discardPersisted(ctx, err)
		return
	}
	if strings.TrimSpace(token) == "" || tokenExpired(token) {
		s.discardPersisted(ctx, pkgerrors.New(pkgerrors.CodeMalformedSession, "stored token unusable"))
		return
	}

	s.mu.Lock()
	s.current = id
	s.token = token
	s.mu.Unlock()

	if s.logg != nil {
		ctx = s.logg.WithIdentityID(ctx, id.ID)
		ctx = s.logg.WithActorRole(ctx, id.Role.String())
		s.logg.Info(ctx, "session rehydrated")
	}
}

// Current returns the active identity, or nil when unauthenticated.
func (s *Store) Current() *identity.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token returns the active bearer credential, or empty.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set persists the identity/token pair and updates the in-memory snapshot.
func (s *Store) Set(ctx context.Context, id *identity.Identity, token string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	encoded, err := identity.Encode(id)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, KeyIdentity, encoded); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist identity")
	}
	if err := s.store.Set(ctx, KeyToken, token); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist token")
	}

	s.mu.Lock()
	s.current = id
	s.token = token
	s.mu.Unlock()
	return nil
}

// Clear removes the session pair and every enumerated cache key. In-memory
// state is dropped even when storage deletions fail; the combined deletion
// error is returned so callers can log it.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.token = ""
	s.mu.Unlock()

	var errs error
	for _, key := range PurgeKeys {
		if err := s.store.Del(ctx, key); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, errs, "purge session state")
	}
	return nil
}

func (s *Store) discardPersisted(ctx context.Context, cause error) {
	if errors.Is(cause, storage.ErrNotFound) {
		return
	}
	if s.logg != nil {
		s.logg.Warn(ctx, "discarding unusable persisted session")
	}
	_ = s.store.Del(ctx, KeyIdentity, KeyToken)
}

// tokenExpired applies a structural check to JWT-shaped tokens: a stored
// token that already carries an elapsed exp claim can never authenticate, so
// bootstrapping with it would present a logged-in UI that every fetch
// contradicts. Opaque tokens pass through untouched.
func tokenExpired(token string) bool {
	if strings.Count(token, ".") != 2 {
		return false
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(nowFunc())
}
