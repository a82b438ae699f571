package usecase

import (
	"context"

	"homeswipe/internal/domain/entity"
	"homeswipe/internal/domain/repository"
	"homeswipe/internal/infrastructure/ratelimit"
	"homeswipe/pkg/errors"
	"homeswipe/pkg/logger"
)

type SwipeUseCase struct {
	swipeRepo    repository.SwipeRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
	rateLimiter  *ratelimit.RateLimiter
}

func NewSwipeUseCase(
	swipeRepo repository.SwipeRepository,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
	rateLimiter *ratelimit.RateLimiter,
) *SwipeUseCase {
	return &SwipeUseCase{
		swipeRepo:    swipeRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		rateLimiter:  rateLimiter,
	}
}

type RecordSwipeInput struct {
	PropertyID string `json:"property_id" validate:"required"`
	Direction  string `json:"direction" validate:"required,oneof=left right"`
}

type RecordSwipeResult struct {
	Swipe *entity.Swipe `json:"swipe"`
	Match *entity.Match `json:"match,omitempty"`
}

// RecordSwipe stores a buyer's swipe. A right swipe also creates a pending
// match for the property's landlord; swipe and match are written atomically,
// so a duplicate swipe leaves no partial state behind.
func (uc *SwipeUseCase) RecordSwipe(ctx context.Context, buyerID string, input RecordSwipeInput) (*RecordSwipeResult, error) {
	allowed, _ := uc.rateLimiter.Allow(buyerID, "swipe")
	if !allowed {
		return nil, errors.TooManyRequests("Too many swipes. Please slow down")
	}

	direction := entity.SwipeDirection(input.Direction)
	if !direction.Valid() {
		return nil, errors.BadRequest("Direction must be left or right", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if !user.IsBuyer() {
		return nil, errors.Forbidden("Only buyers can swipe on properties", nil)
	}

	property, err := uc.propertyRepo.GetByID(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}
	if !property.IsActive {
		return nil, errors.NotFound("Property", nil)
	}
	if property.LandlordID == buyerID {
		return nil, errors.BadRequest("Cannot swipe on your own property", nil)
	}

	swipe := &entity.Swipe{
		BuyerID:    buyerID,
		PropertyID: property.ID,
		Direction:  direction,
	}

	var match *entity.Match
	if direction == entity.SwipeRight {
		match = &entity.Match{
			BuyerID:    buyerID,
			LandlordID: property.LandlordID,
			PropertyID: property.ID,
			Status:     entity.MatchPending,
		}
	}

	if err := uc.swipeRepo.CreateWithMatch(ctx, swipe, match); err != nil {
		return nil, err
	}

	logger.Info("Swipe recorded: buyer=%s property=%s direction=%s", buyerID, property.ID, direction)

	return &RecordSwipeResult{
		Swipe: swipe,
		Match: match,
	}, nil
}

// ListSwipes returns the buyer's swipe history.
func (uc *SwipeUseCase) ListSwipes(ctx context.Context, buyerID string) ([]*entity.Swipe, error) {
	return uc.swipeRepo.ListByBuyer(ctx, buyerID)
}
