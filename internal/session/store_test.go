package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/paylinkbr/paylink-core/internal/identity"
	"github.com/paylinkbr/paylink-core/pkg/enums"
	"github.com/paylinkbr/paylink-core/pkg/storage"
)

func testIdentity() *identity.Identity {
	return &identity.Identity{
		ID:    "u-100",
		Name:  "Rafael",
		Email: "rafael@example.com",
		Role:  enums.RoleMarketplace,
		DataInfo: map[string]any{
			"id": "mkt-100",
		},
	}
}

func TestSetThenBootstrapRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()

	first := NewStore(mem, nil)
	if err := first.Set(ctx, testIdentity(), "token-abc"); err != nil {
		t.Fatalf("set: %v", err)
	}

	// A fresh store over the same durable state simulates a reload.
	second := NewStore(mem, nil)
	second.Bootstrap(ctx)

	current := second.Current()
	if current == nil {
		t.Fatalf("expected rehydrated identity")
	}
	if current.ID != "u-100" || current.Role != enums.RoleMarketplace {
		t.Fatalf("rehydrated identity mismatch: %+v", current)
	}
	if second.Token() != "token-abc" {
		t.Fatalf("rehydrated token mismatch: %q", second.Token())
	}
}

func TestBootstrapWithoutPersistedStateStaysUnauthenticated(t *testing.T) {
	store := NewStore(storage.NewMemory(), nil)
	store.Bootstrap(context.Background())
	if store.Current() != nil {
		t.Fatalf("expected unauthenticated start")
	}
}

func TestBootstrapDiscardsMalformedIdentity(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	if err := mem.Set(ctx, KeyIdentity, `{"id":"u-1","cargo":"root"}`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := mem.Set(ctx, KeyToken, "token"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	store := NewStore(mem, nil)
	store.Bootstrap(ctx)

	if store.Current() != nil {
		t.Fatalf("malformed identity must not authenticate")
	}
	if _, err := mem.Get(ctx, KeyIdentity); err != storage.ErrNotFound {
		t.Fatalf("malformed persisted identity should be discarded, got %v", err)
	}
}

func TestBootstrapDiscardsPartialPair(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	encoded, err := identity.Encode(testIdentity())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := mem.Set(ctx, KeyIdentity, encoded); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// No token persisted.

	store := NewStore(mem, nil)
	store.Bootstrap(ctx)
	if store.Current() != nil {
		t.Fatalf("identity without token must not authenticate")
	}
}

func TestBootstrapDiscardsExpiredJWT(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	encoded, err := identity.Encode(testIdentity())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u-100",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	token, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if err := mem.Set(ctx, KeyIdentity, encoded); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := mem.Set(ctx, KeyToken, token); err != nil {
		t.Fatalf("seed: %v", err)
	}

	store := NewStore(mem, nil)
	store.Bootstrap(ctx)
	if store.Current() != nil {
		t.Fatalf("expired token must not authenticate")
	}
}

func TestBootstrapAcceptsOpaqueToken(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	encoded, err := identity.Encode(testIdentity())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := mem.Set(ctx, KeyIdentity, encoded); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := mem.Set(ctx, KeyToken, "opaque-bearer-credential"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	store := NewStore(mem, nil)
	store.Bootstrap(ctx)
	if store.Current() == nil {
		t.Fatalf("opaque token should rehydrate the session")
	}
}

func TestClearPurgesEveryEnumeratedKey(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()

	store := NewStore(mem, nil)
	if err := store.Set(ctx, testIdentity(), "token-abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	for _, key := range PurgeKeys {
		if err := mem.Set(ctx, key, "cached"); err != nil {
			t.Fatalf("seed cache %s: %v", key, err)
		}
	}
	// An unrelated key must survive the purge: Clear is an allow-list.
	if err := mem.Set(ctx, "other:app:state", "keep"); err != nil {
		t.Fatalf("seed unrelated: %v", err)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if store.Current() != nil {
		t.Fatalf("expected cleared session")
	}
	for _, key := range PurgeKeys {
		if _, err := mem.Get(ctx, key); err != storage.ErrNotFound {
			t.Fatalf("key %s survived the purge (err=%v)", key, err)
		}
	}
	if _, err := mem.Get(ctx, "other:app:state"); err != nil {
		t.Fatalf("unrelated key was purged: %v", err)
	}
}

func TestLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemory(), nil)

	first := testIdentity()
	second := &identity.Identity{ID: "u-200", Role: enums.RoleAdmin}

	if err := store.Set(ctx, first, "token-1"); err != nil {
		t.Fatalf("set first: %v", err)
	}
	if err := store.Set(ctx, second, "token-2"); err != nil {
		t.Fatalf("set second: %v", err)
	}

	if current := store.Current(); current == nil || current.ID != "u-200" {
		t.Fatalf("expected the later login to win, got %+v", current)
	}
	if store.Token() != "token-2" {
		t.Fatalf("expected token-2, got %q", store.Token())
	}
}
