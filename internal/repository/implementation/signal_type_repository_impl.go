package implementation

import (
	"context"

	"company-pulse-be/internal/entity"
	"company-pulse-be/internal/mapper"
	"company-pulse-be/internal/model"
	"company-pulse-be/internal/repository/contract"
	"company-pulse-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SignalTypeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SignalTypeMapper
}

func NewSignalTypeRepository(db *gorm.DB) contract.SignalTypeRepository {
	return &SignalTypeRepositoryImpl{
		db:     db,
		mapper: mapper.NewSignalTypeMapper(),
	}
}

func (r *SignalTypeRepositoryImpl) FindAllowed(ctx context.Context) ([]*entity.SignalTypeOption, error) {
	var models []*model.SignalType
	query := r.db.WithContext(ctx)
	for _, spec := range []specification.Specification{
		specification.AllowedInLlm{},
		specification.OrderBy{Field: "id"},
	} {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
