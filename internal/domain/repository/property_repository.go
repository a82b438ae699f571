package repository

import (
	"context"

	"homeswipe/internal/domain/entity"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Property, error)
	ListActive(ctx context.Context) ([]*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
	Delete(ctx context.Context, id string) error
}
