package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PulsePoint struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId        uuid.UUID `gorm:"type:uuid;not null;index:idx_pulse_company"`
	CompanyName      string    `gorm:"type:text"`
	Bucket           string    `gorm:"type:varchar(32);not null"`
	ChipSlug         string    `gorm:"type:varchar(128)"`
	Tier             int       `gorm:"not null"`
	Title            string    `gorm:"type:text"`
	Url              string    `gorm:"type:text"`
	SeenAt           time.Time
	Context          datatypes.JSON `gorm:"type:jsonb"`
	RawContentId     *uuid.UUID     `gorm:"type:uuid"`
	SummarizedInfoId *uuid.UUID     `gorm:"type:uuid"`
	SourceKey        string         `gorm:"type:text"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
}

func (PulsePoint) TableName() string {
	return "pulse_points"
}
