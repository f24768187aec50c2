package specification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByCompany filters activity-scoped tables by company.
type ByCompany struct {
	CompanyId uuid.UUID
}

func (s ByCompany) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("company_id = ?", s.CompanyId)
}

// PublishedSince keeps records whose published date is set and recent enough.
type PublishedSince struct {
	Since time.Time
}

func (s PublishedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("published_at IS NOT NULL AND published_at >= ?", s.Since)
}

// ByKind filters canonical concepts by vocabulary kind (tag/theme).
type ByKind struct {
	Kind string
}

func (s ByKind) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("kind = ?", s.Kind)
}

// AllowedInLlm keeps only allow-listed signal types.
type AllowedInLlm struct{}

func (s AllowedInLlm) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("allowed_in_llm = ?", true)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Pagination
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}
