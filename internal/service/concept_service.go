package service

import (
	"context"
	"encoding/json"
	"fmt"

	"company-pulse-be/internal/cache"
	"company-pulse-be/internal/constant"
	"company-pulse-be/internal/dto"
	"company-pulse-be/internal/entity"
	"company-pulse-be/internal/pkg/logger"
	"company-pulse-be/internal/repository/contract"
	"company-pulse-be/pkg/events"
	pktNats "company-pulse-be/pkg/nats"
	"company-pulse-be/pkg/normalizer"
)

type IConceptService interface {
	Normalize(ctx context.Context, req *dto.NormalizeRequest) (*dto.NormalizeResponse, error)
	// MintCanonical turns an unresolved label into a canonical concept, unless
	// a near-duplicate already landed in storage since the cache snapshot.
	MintCanonical(ctx context.Context, kind, label string, embedding []float32) error
	InvalidateCache(ctx context.Context, kind string) error
}

type conceptService struct {
	conceptRepo  contract.ConceptRepository
	norm         *normalizer.Normalizer
	tagCache     *cache.ConceptCache
	themeCache   *cache.ConceptCache
	invalidation *cache.InvalidationListener
	natsPub      *pktNats.Publisher
	threshold    float64
	logger       logger.ILogger
}

func NewConceptService(
	conceptRepo contract.ConceptRepository,
	norm *normalizer.Normalizer,
	tagCache *cache.ConceptCache,
	themeCache *cache.ConceptCache,
	invalidation *cache.InvalidationListener,
	natsPub *pktNats.Publisher,
	threshold float64,
	log logger.ILogger,
) IConceptService {
	return &conceptService{
		conceptRepo:  conceptRepo,
		norm:         norm,
		tagCache:     tagCache,
		themeCache:   themeCache,
		invalidation: invalidation,
		natsPub:      natsPub,
		threshold:    threshold,
		logger:       log,
	}
}

func (s *conceptService) Normalize(ctx context.Context, req *dto.NormalizeRequest) (*dto.NormalizeResponse, error) {
	result, err := s.norm.Normalize(ctx, req.Label, req.Embedding, req.Kind)
	if err != nil {
		return nil, err
	}

	res := &dto.NormalizeResponse{
		RawLabel:        result.RawLabel,
		ConfidenceScore: result.ConfidenceScore,
		IsNewCanonical:  result.IsNewCanonical,
	}
	if result.ResolvedConcept != nil {
		res.ResolvedId = &result.ResolvedConcept.Id
		res.ResolvedName = &result.ResolvedConcept.Name
	}
	return res, nil
}

func (s *conceptService) MintCanonical(ctx context.Context, kind, label string, embedding []float32) error {
	if kind != constant.ConceptKindTag && kind != constant.ConceptKindTheme {
		return fmt.Errorf("unknown concept kind %q", kind)
	}

	// The cache snapshot that flagged this label may be stale; check storage
	// directly before minting so two instances don't create twins.
	if len(embedding) > 0 {
		existing, err := s.conceptRepo.SearchSimilarWithScore(ctx, kind, embedding, 1, s.threshold)
		if err != nil {
			return fmt.Errorf("near-duplicate check: %w", err)
		}
		if len(existing) > 0 {
			s.logger.Info("concept_service", "Skipping mint, near-duplicate exists", map[string]interface{}{
				"kind":       kind,
				"label":      label,
				"existing":   existing[0].Row.Id,
				"similarity": existing[0].Similarity,
			})
			return nil
		}
	}

	embeddingJson := ""
	if len(embedding) > 0 {
		raw, err := json.Marshal(embedding)
		if err != nil {
			return fmt.Errorf("serialize embedding: %w", err)
		}
		embeddingJson = string(raw)
	}

	row := &entity.CanonicalConceptRow{
		Kind:          kind,
		Name:          label,
		EmbeddingJson: embeddingJson,
	}
	if err := s.conceptRepo.Create(ctx, row); err != nil {
		return fmt.Errorf("create canonical concept: %w", err)
	}

	s.logger.Info("concept_service", "Minted canonical concept", map[string]interface{}{
		"kind": kind,
		"id":   row.Id,
		"name": row.Name,
	})

	if err := s.InvalidateCache(ctx, kind); err != nil {
		return err
	}

	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, events.NewCanonicalMintedEvent(row.Id, kind, row.Name)); err != nil {
			s.logger.Warn("concept_service", "Failed to publish mint event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	return nil
}

func (s *conceptService) InvalidateCache(ctx context.Context, kind string) error {
	switch kind {
	case constant.ConceptKindTag:
		s.tagCache.Invalidate()
	case constant.ConceptKindTheme:
		s.themeCache.Invalidate()
	default:
		return fmt.Errorf("unknown concept kind %q", kind)
	}

	if s.invalidation != nil {
		s.invalidation.Broadcast(ctx, kind)
	}
	return nil
}
