package entity

import "time"

// CanonicalConceptRow is the persisted shape of a canonical tag/theme as read
// from storage. EmbeddingJson is the serialized vector and may be empty when
// the concept has not been embedded yet.
type CanonicalConceptRow struct {
	Id            int64
	Kind          string
	Name          string
	Description   string
	EmbeddingJson string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// CanonicalConcept is the cached, parsed form used for similarity matching.
// Instances inside a published snapshot are never mutated.
type CanonicalConcept struct {
	Id          int64
	Name        string
	Description string
	Embedding   []float32
}

// NormalizationResult reports how a raw extracted label resolved against the
// canonical vocabulary. IsNewCanonical is true exactly when ResolvedConcept is
// nil.
type NormalizationResult struct {
	RawLabel        string
	ResolvedConcept *CanonicalConcept
	ConfidenceScore float64
	IsNewCanonical  bool
}
