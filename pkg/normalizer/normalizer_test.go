package normalizer

import (
	"context"
	"math"
	"testing"

	"company-pulse-be/internal/constant"
	"company-pulse-be/internal/entity"
)

type staticSource struct {
	concepts []*entity.CanonicalConcept
}

func (s *staticSource) GetConcepts(ctx context.Context) ([]*entity.CanonicalConcept, error) {
	return s.concepts, nil
}

func themeVocabulary() *staticSource {
	return &staticSource{concepts: []*entity.CanonicalConcept{
		{Id: 1, Name: "pricing", Embedding: []float32{1, 0, 0}},
		{Id: 2, Name: "onboarding", Embedding: []float32{0, 1, 0}},
		{Id: 3, Name: "support quality", Embedding: []float32{0, 0, 1}},
	}}
}

func TestNormalize(t *testing.T) {
	n := New(&staticSource{}, themeVocabulary(), 0.85)

	tests := []struct {
		name           string
		label          string
		embedding      []float32
		wantId         int64
		wantNew        bool
		wantConfidence float64
	}{
		{
			name:           "identical embedding resolves with confidence 1",
			label:          "price increase",
			embedding:      []float32{1, 0, 0},
			wantId:         1,
			wantNew:        false,
			wantConfidence: 1.0,
		},
		{
			name:           "near embedding above threshold resolves",
			label:          "cost",
			embedding:      []float32{0.95, 0.05, 0},
			wantId:         1,
			wantNew:        false,
			wantConfidence: 0.99,
		},
		{
			name:      "far embedding flags new canonical",
			label:     "data residency",
			embedding: []float32{0.58, 0.58, 0.58},
			wantNew:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := n.Normalize(context.Background(), tt.label, tt.embedding, constant.ConceptKindTheme)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}

			if result.IsNewCanonical != tt.wantNew {
				t.Errorf("IsNewCanonical = %v, want %v", result.IsNewCanonical, tt.wantNew)
			}
			if tt.wantNew {
				if result.ResolvedConcept != nil {
					t.Errorf("ResolvedConcept = %v, want nil", result.ResolvedConcept)
				}
				return
			}
			if result.ResolvedConcept == nil {
				t.Fatal("ResolvedConcept = nil, want a match")
			}
			if result.ResolvedConcept.Id != tt.wantId {
				t.Errorf("ResolvedConcept.Id = %d, want %d", result.ResolvedConcept.Id, tt.wantId)
			}
			if result.ConfidenceScore < tt.wantConfidence-0.01 {
				t.Errorf("ConfidenceScore = %f, want >= %f", result.ConfidenceScore, tt.wantConfidence)
			}
		})
	}
}

func TestNormalize_TieBreaksOnLowestId(t *testing.T) {
	// Two concepts share an embedding; the lowest id must win regardless of
	// snapshot order.
	source := &staticSource{concepts: []*entity.CanonicalConcept{
		{Id: 7, Name: "billing", Embedding: []float32{1, 0}},
		{Id: 2, Name: "pricing", Embedding: []float32{1, 0}},
	}}
	n := New(&staticSource{}, source, 0.85)

	result, err := n.Normalize(context.Background(), "cost", []float32{1, 0}, constant.ConceptKindTheme)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if result.ResolvedConcept == nil || result.ResolvedConcept.Id != 2 {
		t.Errorf("ResolvedConcept = %+v, want id 2", result.ResolvedConcept)
	}
}

func TestNormalize_OppositeEmbeddingClampsConfidence(t *testing.T) {
	// An anti-parallel embedding scores -1 in cosine terms; the reported
	// confidence must still sit in [0, 1].
	source := &staticSource{concepts: []*entity.CanonicalConcept{
		{Id: 1, Name: "pricing", Embedding: []float32{1, 0}},
	}}
	n := New(&staticSource{}, source, 0.85)

	result, err := n.Normalize(context.Background(), "anti", []float32{-1, 0}, constant.ConceptKindTheme)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !result.IsNewCanonical {
		t.Error("IsNewCanonical = false, want true")
	}
	if result.ConfidenceScore != 0 {
		t.Errorf("ConfidenceScore = %f, want 0", result.ConfidenceScore)
	}
}

func TestNormalize_EmptyVocabulary(t *testing.T) {
	n := New(&staticSource{}, &staticSource{}, 0.85)

	result, err := n.Normalize(context.Background(), "anything", []float32{1, 0}, constant.ConceptKindTheme)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !result.IsNewCanonical {
		t.Error("IsNewCanonical = false, want true")
	}
	if result.ConfidenceScore != NoMatchCeiling {
		t.Errorf("ConfidenceScore = %f, want ceiling %f", result.ConfidenceScore, NoMatchCeiling)
	}
}

func TestNormalize_Preconditions(t *testing.T) {
	n := New(&staticSource{}, themeVocabulary(), 0.85)

	if _, err := n.Normalize(context.Background(), "  ", []float32{1, 0, 0}, constant.ConceptKindTheme); err == nil {
		t.Error("empty label: expected error")
	}
	if _, err := n.Normalize(context.Background(), "pricing", nil, constant.ConceptKindTheme); err == nil {
		t.Error("empty embedding: expected error")
	}
	// Vocabulary vectors are 3-dimensional; a 2-dim query is a dimension
	// mismatch, never silently truncated.
	if _, err := n.Normalize(context.Background(), "pricing", []float32{1, 0}, constant.ConceptKindTheme); err == nil {
		t.Error("length mismatch: expected error")
	}
	if _, err := n.Normalize(context.Background(), "pricing", []float32{1, 0, 0}, "gist"); err == nil {
		t.Error("unknown kind: expected error")
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1.0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0.0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity() = %f, want %f", got, tt.want)
			}
		})
	}
}
