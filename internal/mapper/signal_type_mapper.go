package mapper

import (
	"company-pulse-be/internal/entity"
	"company-pulse-be/internal/model"
)

type SignalTypeMapper struct{}

func NewSignalTypeMapper() *SignalTypeMapper {
	return &SignalTypeMapper{}
}

func (m *SignalTypeMapper) ToEntity(s *model.SignalType) *entity.SignalTypeOption {
	if s == nil {
		return nil
	}
	return &entity.SignalTypeOption{
		Id:          s.Id,
		Name:        s.Name,
		Description: s.Description,
	}
}

func (m *SignalTypeMapper) ToEntities(types []*model.SignalType) []*entity.SignalTypeOption {
	entities := make([]*entity.SignalTypeOption, len(types))
	for i, s := range types {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
