package mapper

import (
	"time"

	"company-pulse-be/internal/entity"
	"company-pulse-be/internal/model"
)

type ConceptMapper struct{}

func NewConceptMapper() *ConceptMapper {
	return &ConceptMapper{}
}

func (m *ConceptMapper) ToEntity(c *model.CanonicalConcept) *entity.CanonicalConceptRow {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.CanonicalConceptRow{
		Id:            c.Id,
		Kind:          c.Kind,
		Name:          c.Name,
		Description:   c.Description,
		EmbeddingJson: c.EmbeddingJson,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *ConceptMapper) ToModel(e *entity.CanonicalConceptRow) *model.CanonicalConcept {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.CanonicalConcept{
		Id:            e.Id,
		Kind:          e.Kind,
		Name:          e.Name,
		Description:   e.Description,
		EmbeddingJson: e.EmbeddingJson,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *ConceptMapper) ToEntities(concepts []*model.CanonicalConcept) []*entity.CanonicalConceptRow {
	entities := make([]*entity.CanonicalConceptRow, len(concepts))
	for i, c := range concepts {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
