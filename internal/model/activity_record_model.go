package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ActivityRecord struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId        uuid.UUID `gorm:"type:uuid;not null;index:idx_activity_company"`
	CompanyName      string    `gorm:"type:text"`
	SourceType       string    `gorm:"type:varchar(32);index"`
	Channel          string    `gorm:"type:varchar(64)"`
	Sentiment        string    `gorm:"type:varchar(16)"`
	PublishedAt      *time.Time
	Themes           datatypes.JSON `gorm:"type:jsonb"` // [{"label": "...", "embedding": [...]}]
	Title            string         `gorm:"type:text"`
	Url              string         `gorm:"type:text"`
	SourceKey        string         `gorm:"type:text"`
	RawContentId     *uuid.UUID     `gorm:"type:uuid"`
	SummarizedInfoId *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
}

func (ActivityRecord) TableName() string {
	return "activity_records"
}
