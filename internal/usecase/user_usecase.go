package usecase

import (
	"context"
	"time"

	"homeswipe/internal/domain/entity"
	"homeswipe/internal/domain/repository"
	"homeswipe/pkg/errors"
	"homeswipe/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type UpdateProfileInput struct {
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	UserType        *string `json:"user_type,omitempty" validate:"omitempty,oneof=buyer landlord"`

	MonthlyIncome      *int       `json:"monthly_income,omitempty" validate:"omitempty,min=0"`
	CreditScore        *int       `json:"credit_score,omitempty" validate:"omitempty,min=300,max=850"`
	BudgetMin          *int       `json:"budget_min,omitempty" validate:"omitempty,min=0"`
	BudgetMax          *int       `json:"budget_max,omitempty" validate:"omitempty,min=0"`
	PreferredZipCodes  []string   `json:"preferred_zip_codes,omitempty"`
	PreferredBedrooms  *int       `json:"preferred_bedrooms,omitempty" validate:"omitempty,min=0"`
	PreferredBathrooms *int       `json:"preferred_bathrooms,omitempty" validate:"omitempty,min=0"`
	PetFriendly        *bool      `json:"pet_friendly,omitempty"`
	MoveInDate         *time.Time `json:"move_in_date,omitempty"`
}

// EnsureUser returns the stored profile for uid, creating a default buyer
// profile on first login.
func (uc *UserUseCase) EnsureUser(ctx context.Context, uid, email string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	user = &entity.User{
		ID:       uid,
		Email:    email,
		UserType: entity.UserTypeBuyer,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Created profile for new user %s", uid)

	return user, nil
}

func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies a partial profile update. Buyer preference fields are
// kept on the nested buyer profile and are ignored for landlord accounts.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.ProfileImageURL != nil {
		user.ProfileImageURL = *input.ProfileImageURL
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.UserType != nil {
		userType := entity.UserType(*input.UserType)
		if !userType.Valid() {
			return nil, errors.BadRequest("User type must be buyer or landlord", nil)
		}
		user.UserType = userType
	}

	if user.IsBuyer() {
		applyBuyerUpdate(user, input)
	} else {
		user.Buyer = nil
	}

	if input.BudgetMin != nil && input.BudgetMax != nil && *input.BudgetMax < *input.BudgetMin {
		return nil, errors.BadRequest("Budget max cannot be below budget min", nil)
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func applyBuyerUpdate(user *entity.User, input UpdateProfileInput) {
	if user.Buyer == nil {
		user.Buyer = &entity.BuyerProfile{}
	}

	if input.MonthlyIncome != nil {
		user.Buyer.MonthlyIncome = *input.MonthlyIncome
	}
	if input.CreditScore != nil {
		user.Buyer.CreditScore = *input.CreditScore
	}
	if input.BudgetMin != nil {
		user.Buyer.BudgetMin = *input.BudgetMin
	}
	if input.BudgetMax != nil {
		user.Buyer.BudgetMax = *input.BudgetMax
	}
	if input.PreferredZipCodes != nil {
		user.Buyer.PreferredZipCodes = input.PreferredZipCodes
	}
	if input.PreferredBedrooms != nil {
		user.Buyer.PreferredBedrooms = *input.PreferredBedrooms
	}
	if input.PreferredBathrooms != nil {
		user.Buyer.PreferredBathrooms = *input.PreferredBathrooms
	}
	if input.PetFriendly != nil {
		user.Buyer.PetFriendly = *input.PetFriendly
	}
	if input.MoveInDate != nil {
		user.Buyer.MoveInDate = input.MoveInDate
	}
}
