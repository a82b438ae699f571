package repository

import (
	"context"

	"homeswipe/internal/domain/entity"
)

type SwipeRepository interface {
	// CreateWithMatch persists the swipe and, when match is non-nil, the
	// pending match in a single atomic write. Returns a DUPLICATE_SWIPE
	// conflict when a swipe already exists for the (buyer, property) pair;
	// in that case neither record is written.
	CreateWithMatch(ctx context.Context, swipe *entity.Swipe, match *entity.Match) error
	ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Swipe, error)
	Exists(ctx context.Context, buyerID, propertyID string) (bool, error)
}
