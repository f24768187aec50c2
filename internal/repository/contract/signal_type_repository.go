package contract

import (
	"context"

	"company-pulse-be/internal/entity"
)

type SignalTypeRepository interface {
	// FindAllowed returns the LLM-eligible subset of the catalog, ordered by id.
	FindAllowed(ctx context.Context) ([]*entity.SignalTypeOption, error)
}
