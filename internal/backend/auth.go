package backend

import (
	"context"
	"encoding/json"
	"net/http"
)

// LoginRequest carries raw credentials to the backend.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the credential-exchange result. User is left raw so the
// caller applies strict identity validation; Painel is the admin-only
// denormalized listing snapshot, persisted verbatim as a cache.
type LoginResponse struct {
	User   json.RawMessage `json:"user"`
	Token  string          `json:"token"`
	Painel json.RawMessage `json:"painel,omitempty"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterRequest creates a marketplace-role identity.
type RegisterRequest struct {
	Name            string `json:"nome"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
	Role            string `json:"cargo"`
	MarketplaceID   string `json:"marketplaceId,omitempty"`
	Status          string `json:"status"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/register", req, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// RegisterSellerRequest creates a seller-role identity scoped to a
// marketplace. MarketplaceID is filled in by the gateway after scope
// resolution, never trusted from the original caller.
type RegisterSellerRequest struct {
	SellerID        string `json:"id_seller"`
	Name            string `json:"nome"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
	MarketplaceID   string `json:"marketplaceId"`
	DefaultFee      string `json:"taxa_padrao"`
	InterestPassOn  string `json:"taxa_repasse_juros"`
}

// RegisterSellerResponse pairs the created identity with its first token.
type RegisterSellerResponse struct {
	User  json.RawMessage `json:"user"`
	Token string          `json:"token"`
}

func (c *Client) RegisterSeller(ctx context.Context, req RegisterSellerRequest) (*RegisterSellerResponse, error) {
	var resp RegisterSellerResponse
	if err := c.do(ctx, http.MethodPost, "/register-seller", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
