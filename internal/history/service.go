package history

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

type transactionsAPI interface {
	ListTransactions(ctx context.Context) ([]backend.Transaction, error)
}

// Service fetches the transaction history for the signed-in identity and
// keeps the last listing cached for offline redisplay.
type Service struct {
	api   transactionsAPI
	cache storage.Store
	logg  *logger.Logger
}

func NewService(api transactionsAPI, cache storage.Store, logg *logger.Logger) (*Service, error) {
	if api == nil {
		return nil, fmt.Errorf("transactions api is required")
	}
	if cache == nil {
		return nil, fmt.Errorf("cache store is required")
	}
	return &Service{api: api, cache: cache, logg: logg}, nil
}

// List fetches the current history, falling back to the cached listing when
// the backend is unreachable.
func (s *Service) List(ctx context.Context) ([]backend.Transaction, error) {
	transactions, err := s.api.ListTransactions(ctx)
	if err != nil {
		if cached, ok := s.cachedList(ctx); ok {
			if s.logg != nil {
				s.logg.Warn(ctx, "serving cached transaction history")
			}
			return cached, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch transactions")
	}

	raw, encodeErr := json.Marshal(transactions)
	if encodeErr == nil {
		encodeErr = s.cache.Set(ctx, session.KeyTransactionsCache, string(raw))
	}
	if encodeErr != nil && s.logg != nil {
		s.logg.Error(ctx, "write transaction cache", encodeErr)
	}
	return transactions, nil
}

func (s *Service) cachedList(ctx context.Context) ([]backend.Transaction, bool) {
	raw, err := s.cache.Get(ctx, session.KeyTransactionsCache)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) && s.logg != nil {
			s.logg.Warn(ctx, "transaction cache unreadable")
		}
		return nil, false
	}
	var transactions []backend.Transaction
	if err := json.Unmarshal([]byte(raw), &transactions); err != nil {
		return nil, false
	}
	return transactions, true
}
