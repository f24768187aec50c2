package entity

import (
	"time"

	"github.com/google/uuid"
)

// PulsePoint is one classified candidate signal ready for display/storage.
// Context carries the baseline deltas the classification thresholded on, so
// the UI can explain why the point surfaced.
type PulsePoint struct {
	Id               uuid.UUID
	CompanyId        uuid.UUID
	CompanyName      string
	Bucket           string
	ChipSlug         string
	Tier             int
	Title            string
	Url              string
	SeenAt           time.Time
	Context          map[string]interface{}
	RawContentId     *uuid.UUID
	SummarizedInfoId *uuid.UUID
	SourceKey        string
	CreatedAt        time.Time
}
