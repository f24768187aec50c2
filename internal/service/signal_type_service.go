package service

import (
	"context"

	"company-pulse-be/internal/cache"
	"company-pulse-be/internal/dto"
)

type ISignalTypeService interface {
	GetAllowed(ctx context.Context, forceRefresh bool) ([]*dto.SignalTypeResponse, error)
	InvalidateCache(ctx context.Context) error
}

type signalTypeService struct {
	cache        *cache.SignalTypeCache
	invalidation *cache.InvalidationListener
}

func NewSignalTypeService(c *cache.SignalTypeCache, invalidation *cache.InvalidationListener) ISignalTypeService {
	return &signalTypeService{cache: c, invalidation: invalidation}
}

func (s *signalTypeService) GetAllowed(ctx context.Context, forceRefresh bool) ([]*dto.SignalTypeResponse, error) {
	options, err := s.cache.GetAllowed(ctx, forceRefresh)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SignalTypeResponse, 0, len(options))
	for _, opt := range options {
		result = append(result, &dto.SignalTypeResponse{
			Id:          opt.Id,
			Name:        opt.Name,
			Description: opt.Description,
		})
	}
	return result, nil
}

func (s *signalTypeService) InvalidateCache(ctx context.Context) error {
	s.cache.Invalidate()
	if s.invalidation != nil {
		s.invalidation.Broadcast(ctx, cache.TargetSignalType)
	}
	return nil
}
