package ports

import (
	"context"
	"ha-sync/internal/domain/model"
)

type HomeAssistantPort interface {
	GetState(ctx context.Context, entityID string) (*model.EntityState, error)
}
