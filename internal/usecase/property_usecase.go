package usecase

import (
	"context"
	"time"

	"homeswipe/internal/domain/entity"
	"homeswipe/internal/domain/repository"
	"homeswipe/internal/domain/service"
	"homeswipe/pkg/errors"
)

type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
	swipeRepo    repository.SwipeRepository
	matchRepo    repository.MatchRepository
	userRepo     repository.UserRepository
	recommender  *service.RecommendationService
}

func NewPropertyUseCase(
	propertyRepo repository.PropertyRepository,
	swipeRepo repository.SwipeRepository,
	matchRepo repository.MatchRepository,
	userRepo repository.UserRepository,
	recommender *service.RecommendationService,
) *PropertyUseCase {
	return &PropertyUseCase{
		propertyRepo: propertyRepo,
		swipeRepo:    swipeRepo,
		matchRepo:    matchRepo,
		userRepo:     userRepo,
		recommender:  recommender,
	}
}

type CreatePropertyInput struct {
	Title          string     `json:"title" validate:"required"`
	Address        string     `json:"address" validate:"required"`
	ZipCode        string     `json:"zip_code" validate:"required"`
	Price          int        `json:"price" validate:"required,min=1"`
	Bedrooms       int        `json:"bedrooms" validate:"required,min=0"`
	Bathrooms      float64    `json:"bathrooms" validate:"required,min=0"`
	SquareFootage  int        `json:"square_footage,omitempty"`
	LeaseTerms     string     `json:"lease_terms,omitempty"`
	MoveInDate     *time.Time `json:"move_in_date,omitempty"`
	Amenities      []string   `json:"amenities,omitempty"`
	Description    string     `json:"description,omitempty"`
	Images         []string   `json:"images,omitempty"`
	MinCreditScore int        `json:"min_credit_score,omitempty"`
	AutoReject     bool       `json:"auto_reject"`
}

type UpdatePropertyInput struct {
	Title          *string    `json:"title,omitempty"`
	Address        *string    `json:"address,omitempty"`
	ZipCode        *string    `json:"zip_code,omitempty"`
	Price          *int       `json:"price,omitempty" validate:"omitempty,min=1"`
	Bedrooms       *int       `json:"bedrooms,omitempty" validate:"omitempty,min=0"`
	Bathrooms      *float64   `json:"bathrooms,omitempty" validate:"omitempty,min=0"`
	SquareFootage  *int       `json:"square_footage,omitempty"`
	LeaseTerms     *string    `json:"lease_terms,omitempty"`
	MoveInDate     *time.Time `json:"move_in_date,omitempty"`
	Amenities      []string   `json:"amenities,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Images         []string   `json:"images,omitempty"`
	MinCreditScore *int       `json:"min_credit_score,omitempty"`
	AutoReject     *bool      `json:"auto_reject,omitempty"`
	IsActive       *bool      `json:"is_active,omitempty"`
}

// FeedItem is a property in the buyer's swipe feed, annotated with how many
// buyers have already right-swiped it.
type FeedItem struct {
	*entity.Property
	InterestedCount int `json:"interested_count"`
}

func (uc *PropertyUseCase) Create(ctx context.Context, userID string, input CreatePropertyInput) (*entity.Property, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsLandlord() {
		return nil, errors.Forbidden("Only landlords can list properties", nil)
	}

	property := &entity.Property{
		LandlordID:     userID,
		Title:          input.Title,
		Address:        input.Address,
		ZipCode:        input.ZipCode,
		Price:          input.Price,
		Bedrooms:       input.Bedrooms,
		Bathrooms:      input.Bathrooms,
		SquareFootage:  input.SquareFootage,
		LeaseTerms:     input.LeaseTerms,
		MoveInDate:     input.MoveInDate,
		Amenities:      input.Amenities,
		Description:    input.Description,
		Images:         input.Images,
		MinCreditScore: input.MinCreditScore,
		AutoReject:     input.AutoReject,
		IsActive:       true,
	}

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

func (uc *PropertyUseCase) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	return uc.propertyRepo.GetByID(ctx, id)
}

func (uc *PropertyUseCase) ListOwn(ctx context.Context, landlordID string) ([]*entity.Property, error) {
	return uc.propertyRepo.ListByLandlord(ctx, landlordID)
}

func (uc *PropertyUseCase) Update(ctx context.Context, userID, propertyID string, input UpdatePropertyInput) (*entity.Property, error) {
	property, err := uc.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if property.LandlordID != userID {
		return nil, errors.Forbidden("Only the property's landlord can update it", nil)
	}

	applyPropertyUpdate(property, input)

	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

func (uc *PropertyUseCase) Delete(ctx context.Context, userID, propertyID string) error {
	property, err := uc.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}

	if property.LandlordID != userID {
		return errors.Forbidden("Only the property's landlord can delete it", nil)
	}

	return uc.propertyRepo.Delete(ctx, propertyID)
}

// Feed builds the buyer's swipe deck: active listings the buyer has not
// swiped and does not own, ranked by the recommender, with an interested
// count from each property's existing matches.
func (uc *PropertyUseCase) Feed(ctx context.Context, userID string) ([]*FeedItem, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	properties, err := uc.propertyRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	swipes, err := uc.swipeRepo.ListByBuyer(ctx, userID)
	if err != nil {
		return nil, err
	}

	swiped := make(map[string]bool, len(swipes))
	for _, s := range swipes {
		swiped[s.PropertyID] = true
	}

	var candidates []*entity.Property
	for _, p := range properties {
		if swiped[p.ID] || p.LandlordID == userID {
			continue
		}
		candidates = append(candidates, p)
	}

	ranked := uc.recommender.Rank(user, candidates, swipes)

	feed := make([]*FeedItem, 0, len(ranked))
	for _, p := range ranked {
		matches, err := uc.matchRepo.ListByProperty(ctx, p.ID)
		if err != nil {
			return nil, err
		}

		var interested int
		for _, m := range matches {
			if m.Status != entity.MatchRejected {
				interested++
			}
		}

		feed = append(feed, &FeedItem{
			Property:        p,
			InterestedCount: interested,
		})
	}

	return feed, nil
}

func applyPropertyUpdate(property *entity.Property, input UpdatePropertyInput) {
	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.ZipCode != nil {
		property.ZipCode = *input.ZipCode
	}
	if input.Price != nil {
		property.Price = *input.Price
	}
	if input.Bedrooms != nil {
		property.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		property.Bathrooms = *input.Bathrooms
	}
	if input.SquareFootage != nil {
		property.SquareFootage = *input.SquareFootage
	}
	if input.LeaseTerms != nil {
		property.LeaseTerms = *input.LeaseTerms
	}
	if input.MoveInDate != nil {
		property.MoveInDate = input.MoveInDate
	}
	if input.Amenities != nil {
		property.Amenities = input.Amenities
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Images != nil {
		property.Images = input.Images
	}
	if input.MinCreditScore != nil {
		property.MinCreditScore = *input.MinCreditScore
	}
	if input.AutoReject != nil {
		property.AutoReject = *input.AutoReject
	}
	if input.IsActive != nil {
		property.IsActive = *input.IsActive
	}
}
