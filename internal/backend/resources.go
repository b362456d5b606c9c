package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Cliente is a marketplace account as the backend lists it.
type Cliente struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"cargo"`
}

// Seller is a seller account scoped to a marketplace.
type Seller struct {
	ID            string `json:"id"`
	Name          string `json:"nome"`
	Email         string `json:"email"`
	MarketplaceID string `json:"marketplaceId"`
	DefaultFee    string `json:"taxa_padrao"`
}

// Transaction is one row of a payment-link transaction history.
type Transaction struct {
	ID        string `json:"id"`
	LinkID    string `json:"id_link"`
	Amount    string `json:"valor"`
	Status    string `json:"status"`
	CreatedAt string `json:"data"`
}

func (c *Client) ListClientes(ctx context.Context) ([]Cliente, error) {
	var out []Cliente
	if err := c.do(ctx, http.MethodGet, "/clientes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCliente(ctx context.Context, id string) (*Cliente, error) {
	var out Cliente
	if err := c.do(ctx, http.MethodGet, "/cliente/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCliente(ctx context.Context, id string, fields map[string]any) error {
	return c.do(ctx, http.MethodPut, "/cliente/"+url.PathEscape(id), fields, nil)
}

func (c *Client) DeleteCliente(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/cliente/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListSellers(ctx context.Context) ([]Seller, error) {
	var out []Seller
	if err := c.do(ctx, http.MethodGet, "/sellers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSeller(ctx context.Context, id string) (*Seller, error) {
	var out Seller
	if err := c.do(ctx, http.MethodGet, "/seller/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListTransactions(ctx context.Context) ([]Transaction, error) {
	var out []Transaction
	if err := c.do(ctx, http.MethodGet, "/transacoes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetInterestSchedule returns the raw per-installment schedule for a seller.
func (c *Client) GetInterestSchedule(ctx context.Context, sellerID string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/juros/"+url.PathEscape(sellerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PutInterestSchedule submits a full replacement schedule for a seller.
func (c *Client) PutInterestSchedule(ctx context.Context, sellerID string, schedule any) error {
	return c.do(ctx, http.MethodPut, "/juros/"+url.PathEscape(sellerID), schedule, nil)
}

// GetPaymentPage fetches the public payment-page payload for a link slug.
// Reachable without a session.
func (c *Client) GetPaymentPage(ctx context.Context, slug string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/pagamento/"+url.PathEscape(slug), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
