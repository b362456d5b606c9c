package panel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paylinkbr/paylink-core/internal/backend"
	"github.com/paylinkbr/paylink-core/internal/session"
	pkgerrors "github.com/paylinkbr/paylink-core/pkg/errors"
	"github.com/paylinkbr/paylink-core/pkg/logger"
	"github.com/paylinkbr/paylink-core/pkg/storage"
)

// Snapshot is the denormalized admin dashboard payload: the full marketplace
// and seller listings, cached at login so the first render needs no fetch.
type Snapshot struct {
	Marketplaces []backend.Cliente `json:"marketplaces"`
	Sellers      []backend.Seller  `json:"sellers"`
}

type listingAPI interface {
	ListClientes(ctx context.Context) ([]backend.Cliente, error)
	ListSellers(ctx context.Context) ([]backend.Seller, error)
}

// Service serves the admin panel from cache and refreshes it on demand.
type Service struct {
	api   listingAPI
	cache storage.Store
	logg  *logger.Logger
}

func NewService(api listingAPI, cache storage.Store, logg *logger.Logger) (*Service, error) {
	if api == nil {
		return nil, fmt.Errorf("listing api is required")
	}
	if cache == nil {
		return nil, fmt.Errorf("cache store is required")
	}
	return &Service{api: api, cache: cache, logg: logg}, nil
}

// Cached returns the stored snapshot, falling back to a refresh when the
// cache is empty or unreadable.
func (s *Service) Cached(ctx context.Context) (*Snapshot, error) {
	raw, err := s.cache.Get(ctx, session.KeyPanelCache)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) && s.logg != nil {
			s.logg.Warn(ctx, "panel cache unreadable, refreshing")
		}
		return s.Refresh(ctx)
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return s.Refresh(ctx)
	}
	return &snap, nil
}

// Refresh re-fetches both listings and rewrites the panel and listing
// caches.
func (s *Service) Refresh(ctx context.Context) (*Snapshot, error) {
	marketplaces, err := s.api.ListClientes(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch marketplaces")
	}
	sellers, err := s.api.ListSellers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch sellers")
	}

	snap := &Snapshot{Marketplaces: marketplaces, Sellers: sellers}
	s.writeCache(ctx, session.KeyPanelCache, snap)
	s.writeCache(ctx, session.KeyMarketplacesCache, marketplaces)
	s.writeCache(ctx, session.KeySellersCache, sellers)
	return snap, nil
}

func (s *Service) writeCache(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err == nil {
		err = s.cache.Set(ctx, key, string(raw))
	}
	if err != nil && s.logg != nil {
		s.logg.Error(ctx, "write panel cache", err)
	}
}
