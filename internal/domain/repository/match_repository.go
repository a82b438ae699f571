package repository

import (
	"context"

	"homeswipe/internal/domain/entity"
)

type MatchRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Match, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Match, error)
	ListByProperty(ctx context.Context, propertyID string) ([]*entity.Match, error)
	ListPendingByProperty(ctx context.Context, propertyID string) ([]*entity.Match, error)
	UpdateStatus(ctx context.Context, id string, status entity.MatchStatus) (*entity.Match, error)
}
