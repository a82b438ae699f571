package usecase

import (
	"context"

	"homeswipe/internal/domain/entity"
	"homeswipe/internal/domain/repository"
	"homeswipe/pkg/errors"
	"homeswipe/pkg/logger"
)

type MatchUseCase struct {
	matchRepo    repository.MatchRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
}

func NewMatchUseCase(
	matchRepo repository.MatchRepository,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
) *MatchUseCase {
	return &MatchUseCase{
		matchRepo:    matchRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

type UpdateMatchStatusInput struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// SetStatus moves a match to approved or rejected. Only the landlord on the
// match may do this; buyers and third parties are rejected before any write.
func (uc *MatchUseCase) SetStatus(ctx context.Context, userID, matchID string, input UpdateMatchStatusInput) (*entity.Match, error) {
	status := entity.MatchStatus(input.Status)
	if !status.ValidTransition() {
		return nil, errors.BadRequest("Status must be approved or rejected", nil)
	}

	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if match.LandlordID != userID {
		return nil, errors.Forbidden("Only the property's landlord can update this match", nil)
	}

	updated, err := uc.matchRepo.UpdateStatus(ctx, matchID, status)
	if err != nil {
		return nil, err
	}

	logger.Info("Match %s set to %s by landlord %s", matchID, status, userID)

	return updated, nil
}

// GetMatch returns a match visible to its participants only.
func (uc *MatchUseCase) GetMatch(ctx context.Context, userID, matchID string) (*entity.Match, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if !match.IsParticipant(userID) {
		return nil, errors.Forbidden("You are not a participant in this match", nil)
	}

	return match, nil
}

// ListForUser returns the caller's matches: by buyer side for buyers, by
// landlord side for landlords.
func (uc *MatchUseCase) ListForUser(ctx context.Context, userID string) ([]*entity.Match, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.IsLandlord() {
		return uc.matchRepo.ListByLandlord(ctx, userID)
	}

	return uc.matchRepo.ListByBuyer(ctx, userID)
}

// ListPendingForProperty returns a property's pending matches for its owner.
func (uc *MatchUseCase) ListPendingForProperty(ctx context.Context, userID, propertyID string) ([]*entity.Match, error) {
	property, err := uc.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if property.LandlordID != userID {
		return nil, errors.Forbidden("Only the property's landlord can view its pending matches", nil)
	}

	return uc.matchRepo.ListPendingByProperty(ctx, propertyID)
}
