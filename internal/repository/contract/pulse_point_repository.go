package contract

import (
	"context"

	"company-pulse-be/internal/entity"
	"company-pulse-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PulsePointRepository interface {
	CreateBulk(ctx context.Context, points []*entity.PulsePoint) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PulsePoint, error)
	DeleteByCompanyId(ctx context.Context, companyId uuid.UUID) error
}
