package mapper

import (
	"encoding/json"

	"company-pulse-be/internal/entity"
	"company-pulse-be/internal/model"

	"gorm.io/datatypes"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.ActivityRecord) *entity.ActivityRecord {
	if a == nil {
		return nil
	}

	var themes []entity.ThemeMention
	if len(a.Themes) > 0 {
		// Malformed theme payloads degrade to "no themes", the record itself
		// still counts toward review/channel baselines.
		_ = json.Unmarshal(a.Themes, &themes)
	}

	return &entity.ActivityRecord{
		Id:               a.Id,
		CompanyId:        a.CompanyId,
		CompanyName:      a.CompanyName,
		SourceType:       a.SourceType,
		Channel:          a.Channel,
		Sentiment:        a.Sentiment,
		PublishedAt:      a.PublishedAt,
		Themes:           themes,
		Title:            a.Title,
		Url:              a.Url,
		SourceKey:        a.SourceKey,
		RawContentId:     a.RawContentId,
		SummarizedInfoId: a.SummarizedInfoId,
		CreatedAt:        a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(e *entity.ActivityRecord) *model.ActivityRecord {
	if e == nil {
		return nil
	}

	var themes datatypes.JSON
	if len(e.Themes) > 0 {
		if raw, err := json.Marshal(e.Themes); err == nil {
			themes = raw
		}
	}

	return &model.ActivityRecord{
		Id:               e.Id,
		CompanyId:        e.CompanyId,
		CompanyName:      e.CompanyName,
		SourceType:       e.SourceType,
		Channel:          e.Channel,
		Sentiment:        e.Sentiment,
		PublishedAt:      e.PublishedAt,
		Themes:           themes,
		Title:            e.Title,
		Url:              e.Url,
		SourceKey:        e.SourceKey,
		RawContentId:     e.RawContentId,
		SummarizedInfoId: e.SummarizedInfoId,
		CreatedAt:        e.CreatedAt,
	}
}

func (m *ActivityMapper) ToEntities(records []*model.ActivityRecord) []*entity.ActivityRecord {
	entities := make([]*entity.ActivityRecord, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
