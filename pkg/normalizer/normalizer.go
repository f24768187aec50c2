// Package normalizer resolves raw AI-extracted labels onto the canonical
// vocabulary by cosine similarity against the cached concept snapshots.
package normalizer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"company-pulse-be/internal/constant"
	"company-pulse-be/internal/entity"
)

// NoMatchCeiling is reported as confidence when the vocabulary is empty and
// no match was attempted at all.
const NoMatchCeiling = 1.0

var (
	ErrEmptyLabel     = errors.New("raw label must not be empty")
	ErrEmptyEmbedding = errors.New("raw embedding must not be empty")
)

// ConceptSource is the read side of a concept cache.
type ConceptSource interface {
	GetConcepts(ctx context.Context) ([]*entity.CanonicalConcept, error)
}

type Normalizer struct {
	tags      ConceptSource
	themes    ConceptSource
	threshold float64
}

func New(tags, themes ConceptSource, threshold float64) *Normalizer {
	return &Normalizer{
		tags:      tags,
		themes:    themes,
		threshold: threshold,
	}
}

// Normalize resolves rawLabel against the vocabulary of the given kind. Below
// the acceptance threshold the result flags a new-canonical candidate; minting
// the concept is the caller's decision.
func (n *Normalizer) Normalize(ctx context.Context, rawLabel string, rawEmbedding []float32, kind string) (*entity.NormalizationResult, error) {
	if strings.TrimSpace(rawLabel) == "" {
		return nil, ErrEmptyLabel
	}
	if len(rawEmbedding) == 0 {
		return nil, ErrEmptyEmbedding
	}

	source, err := n.sourceFor(kind)
	if err != nil {
		return nil, err
	}

	concepts, err := source.GetConcepts(ctx)
	if err != nil {
		return nil, err
	}

	if len(concepts) == 0 {
		// Nothing to match against: everything is a new canonical candidate.
		return &entity.NormalizationResult{
			RawLabel:        rawLabel,
			ConfidenceScore: NoMatchCeiling,
			IsNewCanonical:  true,
		}, nil
	}

	var (
		best      *entity.CanonicalConcept
		bestScore = math.Inf(-1)
	)
	for _, concept := range concepts {
		if len(concept.Embedding) != len(rawEmbedding) {
			return nil, fmt.Errorf("embedding length mismatch for %s %q: got %d, vocabulary uses %d",
				kind, rawLabel, len(rawEmbedding), len(concept.Embedding))
		}
		score := CosineSimilarity(rawEmbedding, concept.Embedding)
		// Ties resolve to the lowest concept id so results are reproducible.
		if score > bestScore || (score == bestScore && best != nil && concept.Id < best.Id) {
			best = concept
			bestScore = score
		}
	}

	if bestScore >= n.threshold {
		return &entity.NormalizationResult{
			RawLabel:        rawLabel,
			ResolvedConcept: best,
			ConfidenceScore: bestScore,
			IsNewCanonical:  false,
		}, nil
	}

	// Best candidate fell short; report how close it came. Cosine similarity
	// is negative for opposite-direction vectors, but confidence stays in
	// [0, 1], so anything below zero reads as 0.
	return &entity.NormalizationResult{
		RawLabel:        rawLabel,
		ConfidenceScore: math.Max(0, bestScore),
		IsNewCanonical:  true,
	}, nil
}

func (n *Normalizer) sourceFor(kind string) (ConceptSource, error) {
	switch kind {
	case constant.ConceptKindTag:
		return n.tags, nil
	case constant.ConceptKindTheme:
		return n.themes, nil
	default:
		return nil, fmt.Errorf("unknown concept kind %q", kind)
	}
}

// CosineSimilarity computes cosine similarity between two equal-length
// vectors. Zero vectors yield 0.
func CosineSimilarity(a, b []float32) float64 {
	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
