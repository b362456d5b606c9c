package identity

import (
	"encoding/json"
	"strings"

	"github.com/paylinkbr/paylink-core/pkg/enums"
	pkgerrors "github.com/paylinkbr/paylink-core/pkg/errors"
)

// Identity is the authenticated user record. Pure data; the role drives all
// access decisions and never changes within a session.
type Identity struct {
	ID            string         `json:"id"`
	Name          string         `json:"nome"`
	Email         string         `json:"email"`
	Role          enums.Role     `json:"cargo"`
	MarketplaceID string         `json:"marketplaceId,omitempty"`
	DataInfo      map[string]any `json:"dataInfo,omitempty"`
}

// MarketplaceScopeID returns the marketplace id a marketplace identity
// registers sellers under: its own catalog id from the role-scoped payload.
func (i *Identity) MarketplaceScopeID() string {
	if i == nil || i.Role != enums.RoleMarketplace || i.DataInfo == nil {
		return ""
	}
	if id, ok := i.DataInfo["id"].(string); ok {
		return strings.TrimSpace(id)
	}
	return ""
}

// Validate enforces the structural rules checked at every deserialization
// boundary. An unrecognized role is rejected here so no downstream switch
// ever sees one.
func (i *Identity) Validate() error {
	if i == nil {
		return pkgerrors.New(pkgerrors.CodeMalformedSession, "identity is nil")
	}
	if strings.TrimSpace(i.ID) == "" {
		return pkgerrors.New(pkgerrors.CodeMalformedSession, "identity id is empty")
	}
	if !i.Role.IsValid() {
		return pkgerrors.New(pkgerrors.CodeMalformedSession, "unrecognized role").
			WithDetails(map[string]any{"role": string(i.Role)})
	}
	return nil
}

// Decode parses a serialized identity and fails fast on structural problems.
func Decode(raw []byte) (*Identity, error) {
	var id Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeMalformedSession, err, "decode identity")
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &id, nil
}

// Encode serializes an identity for durable storage.
func Encode(id *Identity) (string, error) {
	raw, err := json.Marshal(id)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode identity")
	}
	return string(raw), nil
}
