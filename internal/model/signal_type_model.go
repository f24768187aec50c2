package model

import "time"

type SignalType struct {
	Id           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:text;not null"`
	Description  string `gorm:"type:text"`
	AllowedInLlm bool   `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (SignalType) TableName() string {
	return "signal_types"
}
