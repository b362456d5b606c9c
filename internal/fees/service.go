package fees

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paylinkbr/paylink-core/internal/session"
	pkgerrors "github.com/paylinkbr/paylink-core/pkg/errors"
	"github.com/paylinkbr/paylink-core/pkg/logger"
	"github.com/paylinkbr/paylink-core/pkg/storage"
)

type scheduleAPI interface {
	GetInterestSchedule(ctx context.Context, sellerID string) (json.RawMessage, error)
	PutInterestSchedule(ctx context.Context, sellerID string, schedule any) error
}

// Service manages the per-seller interest schedule with a device cache in
// front of the backend.
type Service struct {
	api   scheduleAPI
	cache storage.Store
	logg  *logger.Logger
}

func NewService(api scheduleAPI, cache storage.Store, logg *logger.Logger) (*Service, error) {
	if api == nil {
		return nil, fmt.Errorf("schedule api is required")
	}
	if cache == nil {
		return nil, fmt.Errorf("cache store is required")
	}
	return &Service{api: api, cache: cache, logg: logg}, nil
}

// Get serves the cached schedule when it belongs to the requested seller,
// otherwise fetches from the backend and recaches.
func (s *Service) Get(ctx context.Context, sellerID string) (*Schedule, error) {
	if cached := s.cached(ctx, sellerID); cached != nil {
		return cached, nil
	}

	raw, err := s.api.GetInterestSchedule(ctx, sellerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch interest schedule")
	}
	var schedule Schedule
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode interest schedule")
	}
	schedule.SellerID = sellerID
	s.recache(ctx, &schedule)
	return &schedule, nil
}

// Save validates the fixed 21-slot shape, submits the replacement to the
// backend, and recaches on success. Validation failures never reach the
// network.
func (s *Service) Save(ctx context.Context, schedule *Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	if err := s.api.PutInterestSchedule(ctx, schedule.SellerID, schedule); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save interest schedule")
	}
	s.recache(ctx, schedule)
	return nil
}

func (s *Service) cached(ctx context.Context, sellerID string) *Schedule {
	raw, err := s.cache.Get(ctx, session.KeyInterestScheduleCache)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) && s.logg != nil {
			s.logg.Warn(ctx, "interest schedule cache unreadable")
		}
		return nil
	}
	var schedule Schedule
	if err := json.Unmarshal([]byte(raw), &schedule); err != nil {
		return nil
	}
	if schedule.SellerID != sellerID {
		return nil
	}
	return &schedule
}

func (s *Service) recache(ctx context.Context, schedule *Schedule) {
	raw, err := json.Marshal(schedule)
	if err == nil {
		err = s.cache.Set(ctx, session.KeyInterestScheduleCache, string(raw))
	}
	if err != nil && s.logg != nil {
		s.logg.Error(ctx, "write interest schedule cache", err)
	}
}
