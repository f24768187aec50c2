package dto

import (
	"time"

	"github.com/google/uuid"
)

type PulsePointResponse struct {
	Id          uuid.UUID              `json:"id"`
	CompanyId   uuid.UUID              `json:"company_id"`
	CompanyName string                 `json:"company_name"`
	Bucket      string                 `json:"bucket"`
	ChipSlug    string                 `json:"chip_slug"`
	Tier        int                    `json:"tier"`
	Title       string                 `json:"title"`
	Url         string                 `json:"url"`
	SeenAt      time.Time              `json:"seen_at"`
	Context     map[string]interface{} `json:"context"`
}

type GeneratePulseResponse struct {
	CompanyId  uuid.UUID             `json:"company_id"`
	Candidates int                   `json:"candidates"`
	Points     []*PulsePointResponse `json:"points"`
}

type SignalTypeResponse struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
