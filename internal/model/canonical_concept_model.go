package model

import (
	"time"
)

// CanonicalConcept stores one entry of the controlled vocabulary. The
// embedding is kept as its serialized JSON form ("[0.1, 0.2, ...]", also a
// valid pgvector literal) so un-embedded and malformed rows survive storage
// and are filtered at cache load instead.
type CanonicalConcept struct {
	Id            int64  `gorm:"primaryKey;autoIncrement"`
	Kind          string `gorm:"type:varchar(16);not null;index:idx_concepts_kind"`
	Name          string `gorm:"type:text;not null"`
	Description   string `gorm:"type:text"`
	EmbeddingJson string `gorm:"type:text"` // 768-dim vector, serialized
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (CanonicalConcept) TableName() string {
	return "canonical_concepts"
}
