package contract

import (
	"context"

	"company-pulse-be/internal/entity"
	"company-pulse-be/internal/repository/specification"
)

// ScoredConcept wraps a canonical concept row with its similarity score
type ScoredConcept struct {
	Row        *entity.CanonicalConceptRow
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type ConceptRepository interface {
	Create(ctx context.Context, row *entity.CanonicalConceptRow) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CanonicalConceptRow, error)
	// FindAllByKind is the cache load path: every row of one vocabulary kind,
	// ordered by id, embedded or not.
	FindAllByKind(ctx context.Context, kind string) ([]*entity.CanonicalConceptRow, error)
	// SearchSimilarWithScore returns the nearest concepts of a kind with their
	// cosine similarity, filtered by threshold.
	SearchSimilarWithScore(ctx context.Context, kind string, embedding []float32, limit int, threshold float64) ([]*ScoredConcept, error)
}
