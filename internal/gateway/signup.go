package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/paylinkbr/paylink-core/internal/backend"
	"github.com/paylinkbr/paylink-core/pkg/enums"
)

// SignupRequest registers a new marketplace operator.
type SignupRequest struct {
	Name            string `json:"nome" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmpassword" validate:"required,eqfield=Password"`
	MarketplaceID   string `json:"marketplaceId,omitempty"`
}

// SignupResult is a value, not an error: callers branch on the Error field.
// The login path throws and this one doesn't; the asymmetry is inherited
// from the platform's API contract and downstream call sites depend on it.
type SignupResult struct {
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

func (s *service) Signup(ctx context.Context, req SignupRequest) SignupResult {
	data, err := s.api.Register(ctx, backend.RegisterRequest{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            enums.RoleMarketplace.String(),
		MarketplaceID:   req.MarketplaceID,
		Status:          "active",
	})
	if err != nil {
		s.metrics.IncRegistration("marketplace", "failure")
		return SignupResult{Error: classifyRegistrationError(err)}
	}
	s.metrics.IncRegistration("marketplace", "success")
	return SignupResult{Data: data}
}

// classifyRegistrationError maps a failed registration exchange onto the
// four display messages the UI branches on: bad request (with the server's
// own words), unauthorized, server error, and no-response.
func classifyRegistrationError(err error) string {
	if errors.Is(err, backend.ErrNoResponse) {
		return msgNoResponse
	}
	serverErr := backend.AsError(err)
	if serverErr == nil {
		return msgUnknown
	}
	switch serverErr.Status {
	case http.StatusBadRequest:
		if serverErr.Message != "" {
			return msgBadRequestPrefix + serverErr.Message
		}
		return msgBadRequestPrefix + msgUnknown
	case http.StatusUnauthorized, http.StatusForbidden:
		return msgUnauthorized
	case http.StatusInternalServerError:
		return msgServerError
	}
	return msgUnknown
}
