package identity

import (
	"testing"

	"github.com/paylinkbr/paylink-core/pkg/enums"
	pkgerrors "github.com/paylinkbr/paylink-core/pkg/errors"
)

func TestDecodeValidIdentity(t *testing.T) {
	raw := []byte(`{"id":"u-1","nome":"Ana","email":"ana@example.com","cargo":"marketplace","dataInfo":{"id":"mkt-7"}}`)
	id, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if id.Role != enums.RoleMarketplace {
		t.Fatalf("expected marketplace role, got %s", id.Role)
	}
	if id.MarketplaceScopeID() != "mkt-7" {
		t.Fatalf("expected scope mkt-7, got %q", id.MarketplaceScopeID())
	}
}

func TestDecodeRejectsUnknownRole(t *testing.T) {
	raw := []byte(`{"id":"u-1","cargo":"root"}`)
	if _, err := Decode(raw); !pkgerrors.IsCode(err, pkgerrors.CodeMalformedSession) {
		t.Fatalf("expected malformed session error, got %v", err)
	}
}

func TestDecodeRejectsMissingID(t *testing.T) {
	raw := []byte(`{"cargo":"admin"}`)
	if _, err := Decode(raw); !pkgerrors.IsCode(err, pkgerrors.CodeMalformedSession) {
		t.Fatalf("expected malformed session error, got %v", err)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte(`{"id":`)); !pkgerrors.IsCode(err, pkgerrors.CodeMalformedSession) {
		t.Fatalf("expected malformed session error, got %v", err)
	}
}

func TestMarketplaceScopeIDOnlyForMarketplaceRole(t *testing.T) {
	admin := &Identity{ID: "u-2", Role: enums.RoleAdmin, DataInfo: map[string]any{"id": "mkt-9"}}
	if got := admin.MarketplaceScopeID(); got != "" {
		t.Fatalf("admin identity should have no marketplace scope, got %q", got)
	}
	seller := &Identity{ID: "u-3", Role: enums.RoleSeller, MarketplaceID: "mkt-3"}
	if got := seller.MarketplaceScopeID(); got != "" {
		t.Fatalf("seller identity should have no marketplace scope, got %q", got)
	}
}
