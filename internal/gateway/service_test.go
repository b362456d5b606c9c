package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/paylinkbr/paylink-core/internal/backend"
	"github.com/paylinkbr/paylink-core/internal/session"
	"github.com/paylinkbr/paylink-core/pkg/enums"
	pkgerrors "github.com/paylinkbr/paylink-core/pkg/errors"
	"github.com/paylinkbr/paylink-core/pkg/storage"
)

type stubAPI struct {
	loginResp *backend.LoginResponse
	loginErr  error
	loginCall int

	registerResp json.RawMessage
	registerErr  error
	registerCall int

	sellerResp *backend.RegisterSellerResponse
	sellerErr  error
	sellerCall int
	sellerReq  backend.RegisterSellerRequest
}

func (s *stubAPI) Login(_ context.Context, _ backend.LoginRequest) (*backend.LoginResponse, error) {
	s.loginCall++
	return s.loginResp, s.loginErr
}

func (s *stubAPI) Register(_ context.Context, _ backend.RegisterRequest) (json.RawMessage, error) {
	s.registerCall++
	return s.registerResp, s.registerErr
}

func (s *stubAPI) RegisterSeller(_ context.Context, req backend.RegisterSellerRequest) (*backend.RegisterSellerResponse, error) {
	s.sellerCall++
	s.sellerReq = req
	return s.sellerResp, s.sellerErr
}

func buildService(t *testing.T, api *stubAPI) (Service, *session.Store, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemory()
	sessions := session.NewStore(mem, nil)
	svc, err := NewService(ServiceParams{
		API:     api,
		Session: sessions,
		Cache:   mem,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, sessions, mem
}

func TestLoginSuccessSetsSession(t *testing.T) {
	api := &stubAPI{
		loginResp: &backend.LoginResponse{
			User:  json.RawMessage(`{"id":"u-1","nome":"Bia","cargo":"marketplace","dataInfo":{"id":"mkt-1"}}`),
			Token: "tok-1",
		},
	}
	svc, sessions, _ := buildService(t, api)

	id, err := svc.Login(context.Background(), "bia@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if id.Role != enums.RoleMarketplace {
		t.Fatalf("expected marketplace role, got %s", id.Role)
	}
	if current := sessions.Current(); current == nil || current.ID != "u-1" {
		t.Fatalf("session not set: %+v", current)
	}
	if sessions.Token() != "tok-1" {
		t.Fatalf("token not set")
	}
}

func TestLoginAdminPersistsPanelSnapshot(t *testing.T) {
	painel := `{"marketplaces":[{"id":"m-1"}],"sellers":[]}`
	api := &stubAPI{
		loginResp: &backend.LoginResponse{
			User:   json.RawMessage(`{"id":"adm-1","cargo":"admin"}`),
			Token:  "tok-adm",
			Painel: json.RawMessage(painel),
		},
	}
	svc, _, mem := buildService(t, api)

	if _, err := svc.Login(context.Background(), "admin@example.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	cached, err := mem.Get(context.Background(), session.KeyPanelCache)
	if err != nil {
		t.Fatalf("panel cache missing: %v", err)
	}
	if cached != painel {
		t.Fatalf("panel cache mismatch: %s", cached)
	}
}

func TestLoginNonAdminDoesNotPersistPanel(t *testing.T) {
	api := &stubAPI{
		loginResp: &backend.LoginResponse{
			User:   json.RawMessage(`{"id":"u-2","cargo":"seller"}`),
			Token:  "tok-2",
			Painel: json.RawMessage(`{"marketplaces":[]}`),
		},
	}
	svc, _, mem := buildService(t, api)

	if _, err := svc.Login(context.Background(), "s@example.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := mem.Get(context.Background(), session.KeyPanelCache); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("panel cache should only exist for admin sessions, got %v", err)
	}
}

func TestLoginFailureUsesServerMessage(t *testing.T) {
	api := &stubAPI{loginErr: &backend.Error{Status: 401, Message: "credenciais inválidas"}}
	svc, sessions, _ := buildService(t, api)

	_, err := svc.Login(context.Background(), "x@example.com", "bad")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeAuthFailed {
		t.Fatalf("expected auth failed error, got %v", err)
	}
	if typed.Message() != "credenciais inválidas" {
		t.Fatalf("expected server message, got %q", typed.Message())
	}
	if sessions.Current() != nil {
		t.Fatalf("failed login must not create a session")
	}
}

func TestLoginFailureFallbackMessage(t *testing.T) {
	api := &stubAPI{loginErr: errors.New("connection refused")}
	svc, _, _ := buildService(t, api)

	_, err := svc.Login(context.Background(), "x@example.com", "bad")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Message() != msgLoginFallback {
		t.Fatalf("expected fallback message, got %v", err)
	}
}

func TestLoginRejectsUnrecognizedRole(t *testing.T) {
	api := &stubAPI{
		loginResp: &backend.LoginResponse{
			User:  json.RawMessage(`{"id":"u-3","cargo":"root"}`),
			Token: "tok-3",
		},
	}
	svc, sessions, _ := buildService(t, api)

	if _, err := svc.Login(context.Background(), "x@example.com", "pw"); err == nil {
		t.Fatalf("expected error for unrecognized role")
	}
	if sessions.Current() != nil {
		t.Fatalf("unrecognized role must not authenticate")
	}
}

func TestLogoutClearsSessionAndCaches(t *testing.T) {
	api := &stubAPI{
		loginResp: &backend.LoginResponse{
			User:  json.RawMessage(`{"id":"u-1","cargo":"marketplace","dataInfo":{"id":"mkt-1"}}`),
			Token: "tok-1",
		},
	}
	svc, sessions, mem := buildService(t, api)

	if _, err := svc.Login(context.Background(), "bia@example.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	for _, key := range session.PurgeKeys {
		if err := mem.Set(context.Background(), key, "cached"); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if sessions.Current() != nil {
		t.Fatalf("session survived logout")
	}
	for _, key := range session.PurgeKeys {
		if _, err := mem.Get(context.Background(), key); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("key %s survived logout", key)
		}
	}
}
