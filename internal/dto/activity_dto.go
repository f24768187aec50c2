package dto

import (
	"time"

	"github.com/google/uuid"
)

type ThemeMentionPayload struct {
	Label     string    `json:"label" validate:"required"`
	Embedding []float32 `json:"embedding,omitempty"`
}

type ActivityRecordPayload struct {
	CompanyId        uuid.UUID             `json:"company_id" validate:"required"`
	CompanyName      string                `json:"company_name"`
	SourceType       string                `json:"source_type" validate:"required"`
	Channel          string                `json:"channel"`
	Sentiment        string                `json:"sentiment" validate:"omitempty,oneof=positive neutral negative"`
	PublishedAt      *time.Time            `json:"published_at"`
	Themes           []ThemeMentionPayload `json:"themes" validate:"dive"`
	Title            string                `json:"title"`
	Url              string                `json:"url"`
	SourceKey        string                `json:"source_key"`
	RawContentId     *uuid.UUID            `json:"raw_content_id"`
	SummarizedInfoId *uuid.UUID            `json:"summarized_info_id"`
}

type IngestActivityRequest struct {
	Records []ActivityRecordPayload `json:"records" validate:"required,min=1,dive"`
}

type IngestActivityResponse struct {
	Ingested int `json:"ingested"`
}

// ActivityStatsResponse sizes a company's stored activity so operators can
// sanity-check the baseline window before generating.
type ActivityStatsResponse struct {
	CompanyId uuid.UUID `json:"company_id"`
	Total     int64     `json:"total"`
	Recent90d int64     `json:"recent_90d"`
}
