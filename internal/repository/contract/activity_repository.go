package contract

import (
	"context"

	"company-pulse-be/internal/entity"
	"company-pulse-be/internal/repository/specification"
)

type ActivityRepository interface {
	CreateBulk(ctx context.Context, records []*entity.ActivityRecord) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
