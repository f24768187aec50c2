package entity

import (
	"time"

	"github.com/google/uuid"
)

// ThemeMention is one raw theme label extracted from a piece of content,
// together with its pre-computed embedding. The embedding may be empty when
// the upstream extraction has not embedded the label yet.
type ThemeMention struct {
	Label     string    `json:"label"`
	Embedding []float32 `json:"embedding,omitempty"`
}

// ActivityRecord is one piece of historical or fresh company activity
// (a review, a post, an article) produced by upstream ingestion.
type ActivityRecord struct {
	Id               uuid.UUID
	CompanyId        uuid.UUID
	CompanyName      string
	SourceType       string
	Channel          string
	Sentiment        string
	PublishedAt      *time.Time
	Themes           []ThemeMention
	Title            string
	Url              string
	SourceKey        string
	RawContentId     *uuid.UUID
	SummarizedInfoId *uuid.UUID
	CreatedAt        time.Time
}

// ThemeLabels returns the raw labels only, for counting purposes.
func (r *ActivityRecord) ThemeLabels() []string {
	labels := make([]string, 0, len(r.Themes))
	for _, t := range r.Themes {
		labels = append(labels, t.Label)
	}
	return labels
}
