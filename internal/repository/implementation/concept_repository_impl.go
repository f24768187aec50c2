package implementation

import (
	"context"

	"company-pulse-be/internal/entity"
	"company-pulse-be/internal/mapper"
	"company-pulse-be/internal/model"
	"company-pulse-be/internal/repository/contract"
	"company-pulse-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ConceptRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConceptMapper
}

func NewConceptRepository(db *gorm.DB) contract.ConceptRepository {
	return &ConceptRepositoryImpl{
		db:     db,
		mapper: mapper.NewConceptMapper(),
	}
}

func (r *ConceptRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConceptRepositoryImpl) Create(ctx context.Context, row *entity.CanonicalConceptRow) error {
	m := r.mapper.ToModel(row)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*row = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConceptRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CanonicalConceptRow, error) {
	var models []*model.CanonicalConcept
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ConceptRepositoryImpl) FindAllByKind(ctx context.Context, kind string) ([]*entity.CanonicalConceptRow, error) {
	return r.FindAll(ctx,
		specification.ByKind{Kind: kind},
		specification.OrderBy{Field: "id"},
	)
}

// SearchSimilarWithScore ranks concepts of one kind by cosine similarity to
// the query vector. The serialized JSON array is a valid pgvector literal, so
// embedding_json casts directly; rows without an embedding are excluded.
func (r *ConceptRepositoryImpl) SearchSimilarWithScore(ctx context.Context, kind string, embedding []float32, limit int, threshold float64) ([]*contract.ScoredConcept, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.CanonicalConcept
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("canonical_concepts").
		Select("canonical_concepts.*, 1 - (embedding_json::vector <=> ?) as similarity", queryVector).
		Where("kind = ?", kind).
		Where("embedding_json IS NOT NULL AND embedding_json <> ''").
		Where("1 - (embedding_json::vector <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredConcept, len(results))
	for i, res := range results {
		m := res.CanonicalConcept
		scored[i] = &contract.ScoredConcept{
			Row:        r.mapper.ToEntity(&m),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
