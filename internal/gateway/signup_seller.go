package gateway

import (
	"context"
	"strings"

	"github.com/paylinkbr/paylink-core/internal/backend"
	pkgerrors "github.com/paylinkbr/paylink-core/pkg/errors"
)

// SellerSignupRequest registers a seller under a marketplace.
type SellerSignupRequest struct {
	SellerID        string `json:"id_seller"`
	Name            string `json:"nome" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmpassword" validate:"required,eqfield=Password"`
	MarketplaceID   string `json:"marketplaceId,omitempty"`
	DefaultFee      string `json:"taxa_padrao,omitempty"`
	InterestPassOn  string `json:"taxa_repasse_juros,omitempty"`
}

// SignupSeller resolves the marketplace scope before anything leaves the
// device. A marketplace operator always registers sellers under their own
// marketplace (the request field is ignored for them), so one operator can
// never attach a seller to another operator's catalog. With no resolvable
// scope the call fails before the network round-trip.
func (s *service) SignupSeller(ctx context.Context, req SellerSignupRequest) (*backend.RegisterSellerResponse, error) {
	marketplaceID := strings.TrimSpace(req.MarketplaceID)
	if caller := s.session.Current(); caller != nil {
		if scoped := caller.MarketplaceScopeID(); scoped != "" {
			marketplaceID = scoped
		} else if marketplaceID == "" {
			marketplaceID = strings.TrimSpace(caller.MarketplaceID)
		}
	}
	if marketplaceID == "" {
		s.metrics.IncRegistration("seller", "failure")
		return nil, pkgerrors.New(pkgerrors.CodeMissingScope, msgReauthenticate)
	}

	resp, err := s.api.RegisterSeller(ctx, backend.RegisterSellerRequest{
		SellerID:        req.SellerID,
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		MarketplaceID:   marketplaceID,
		DefaultFee:      req.DefaultFee,
		InterestPassOn:  req.InterestPassOn,
	})
	if err != nil {
		s.metrics.IncRegistration("seller", "failure")
		if serverErr := backend.AsError(err); serverErr != nil && serverErr.Message != "" {
			return nil, pkgerrors.Wrap(pkgerrors.CodeRegistration, err, serverErr.Message)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeRegistration, err, msgSellerSignupFailed)
	}
	s.metrics.IncRegistration("seller", "success")
	return resp, nil
}
