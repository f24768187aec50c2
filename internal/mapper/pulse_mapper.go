package mapper

import (
	"encoding/json"

	"company-pulse-be/internal/entity"
	"company-pulse-be/internal/model"

	"gorm.io/datatypes"
)

type PulseMapper struct{}

func NewPulseMapper() *PulseMapper {
	return &PulseMapper{}
}

func (m *PulseMapper) ToEntity(p *model.PulsePoint) *entity.PulsePoint {
	if p == nil {
		return nil
	}

	context := make(map[string]interface{})
	if len(p.Context) > 0 {
		_ = json.Unmarshal(p.Context, &context)
	}

	return &entity.PulsePoint{
		Id:               p.Id,
		CompanyId:        p.CompanyId,
		CompanyName:      p.CompanyName,
		Bucket:           p.Bucket,
		ChipSlug:         p.ChipSlug,
		Tier:             p.Tier,
		Title:            p.Title,
		Url:              p.Url,
		SeenAt:           p.SeenAt,
		Context:          context,
		RawContentId:     p.RawContentId,
		SummarizedInfoId: p.SummarizedInfoId,
		SourceKey:        p.SourceKey,
		CreatedAt:        p.CreatedAt,
	}
}

func (m *PulseMapper) ToModel(e *entity.PulsePoint) *model.PulsePoint {
	if e == nil {
		return nil
	}

	var context datatypes.JSON
	if len(e.Context) > 0 {
		if raw, err := json.Marshal(e.Context); err == nil {
			context = raw
		}
	}

	return &model.PulsePoint{
		Id:               e.Id,
		CompanyId:        e.CompanyId,
		CompanyName:      e.CompanyName,
		Bucket:           e.Bucket,
		ChipSlug:         e.ChipSlug,
		Tier:             e.Tier,
		Title:            e.Title,
		Url:              e.Url,
		SeenAt:           e.SeenAt,
		Context:          context,
		RawContentId:     e.RawContentId,
		SummarizedInfoId: e.SummarizedInfoId,
		SourceKey:        e.SourceKey,
		CreatedAt:        e.CreatedAt,
	}
}

func (m *PulseMapper) ToEntities(points []*model.PulsePoint) []*entity.PulsePoint {
	entities := make([]*entity.PulsePoint, len(points))
	for i, p := range points {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PulseMapper) ToModels(points []*entity.PulsePoint) []*model.PulsePoint {
	models := make([]*model.PulsePoint, len(points))
	for i, p := range points {
		models[i] = m.ToModel(p)
	}
	return models
}
