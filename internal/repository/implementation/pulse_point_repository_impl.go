package implementation

import (
	"context"

	"company-pulse-be/internal/entity"
	"company-pulse-be/internal/mapper"
	"company-pulse-be/internal/model"
	"company-pulse-be/internal/repository/contract"
	"company-pulse-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PulsePointRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PulseMapper
}

func NewPulsePointRepository(db *gorm.DB) contract.PulsePointRepository {
	return &PulsePointRepositoryImpl{
		db:     db,
		mapper: mapper.NewPulseMapper(),
	}
}

func (r *PulsePointRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PulsePointRepositoryImpl) CreateBulk(ctx context.Context, points []*entity.PulsePoint) error {
	if len(points) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(r.mapper.ToModels(points), 100).Error
}

func (r *PulsePointRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PulsePoint, error) {
	var models []*model.PulsePoint
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PulsePointRepositoryImpl) DeleteByCompanyId(ctx context.Context, companyId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("company_id = ?", companyId).Delete(&model.PulsePoint{}).Error
}
