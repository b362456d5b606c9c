package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/paylinkbr/paylink-core/internal/backend"
	"github.com/paylinkbr/paylink-core/internal/identity"
	"github.com/paylinkbr/paylink-core/internal/session"
	"github.com/paylinkbr/paylink-core/pkg/enums"
	pkgerrors "github.com/paylinkbr/paylink-core/pkg/errors"
	"github.com/paylinkbr/paylink-core/pkg/logger"
	"github.com/paylinkbr/paylink-core/pkg/metrics"
	"github.com/paylinkbr/paylink-core/pkg/storage"
)

// Service is the only component allowed to mutate the session store.
type Service interface {
	Login(ctx context.Context, email, password string) (*identity.Identity, error)
	Signup(ctx context.Context, req SignupRequest) SignupResult
	SignupSeller(ctx context.Context, req SellerSignupRequest) (*backend.RegisterSellerResponse, error)
	Logout(ctx context.Context) error
}

type authAPI interface {
	Login(ctx context.Context, req backend.LoginRequest) (*backend.LoginResponse, error)
	Register(ctx context.Context, req backend.RegisterRequest) (json.RawMessage, error)
	RegisterSeller(ctx context.Context, req backend.RegisterSellerRequest) (*backend.RegisterSellerResponse, error)
}

type service struct {
	api     authAPI
	session *session.Store
	cache   storage.Store
	logg    *logger.Logger
	metrics *metrics.AuthMetrics
}

// ServiceParams bundles the dependencies required to build the gateway.
type ServiceParams struct {
	API     authAPI
	Session *session.Store
	Cache   storage.Store
	Logger  *logger.Logger
	Metrics *metrics.AuthMetrics
}

// NewService constructs the auth gateway with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.API == nil {
		return nil, fmt.Errorf("backend api client is required")
	}
	if params.Session == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if params.Cache == nil {
		return nil, fmt.Errorf("cache store is required")
	}
	return &service{
		api:     params.API,
		session: params.Session,
		cache:   params.Cache,
		logg:    params.Logger,
		metrics: params.Metrics,
	}, nil
}

// Login exchanges credentials for a session. On success the session store is
// the new source of truth; for admin identities the login response's panel
// snapshot is persisted so the dashboard renders without a follow-up fetch.
// Failures surface once with a display-ready message; retrying is the
// caller's decision.
func (s *service) Login(ctx context.Context, email, password string) (*identity.Identity, error) {
	resp, err := s.api.Login(ctx, backend.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.metrics.IncLogin("failure")
		return nil, loginError(err)
	}

	id, err := identity.Decode(resp.User)
	if err != nil {
		s.metrics.IncLogin("failure")
		return nil, pkgerrors.Wrap(pkgerrors.CodeAuthFailed, err, msgLoginFallback)
	}

	if err := s.session.Set(ctx, id, resp.Token); err != nil {
		s.metrics.IncLogin("failure")
		return nil, err
	}

	if id.Role == enums.RoleAdmin && len(resp.Painel) > 0 {
		if err := s.cache.Set(ctx, session.KeyPanelCache, string(resp.Painel)); err != nil {
			// The session itself is valid; the dashboard will fetch
			// listings on demand instead.
			if s.logg != nil {
				s.logg.Error(ctx, "persist panel snapshot", err)
			}
		}
	}

	if s.logg != nil {
		logCtx := s.logg.WithIdentityID(ctx, id.ID)
		logCtx = s.logg.WithActorRole(logCtx, id.Role.String())
		s.logg.Info(logCtx, "login succeeded")
	}
	s.metrics.IncLogin("success")
	return id, nil
}

func loginError(err error) error {
	if serverErr := backend.AsError(err); serverErr != nil && serverErr.Message != "" {
		return pkgerrors.Wrap(pkgerrors.CodeAuthFailed, err, serverErr.Message)
	}
	return pkgerrors.Wrap(pkgerrors.CodeAuthFailed, err, msgLoginFallback)
}

// Logout tears the session down locally. There is no server-side
// invalidation call; the purge of the role-scoped caches is the whole point.
func (s *service) Logout(ctx context.Context) error {
	err := s.session.Clear(ctx)
	if err != nil && s.logg != nil {
		s.logg.Error(ctx, "logout purge incomplete", err)
	}
	return err
}
