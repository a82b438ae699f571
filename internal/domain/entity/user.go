package entity

import (
	"time"
)

// UserType distinguishes the two account roles. A user is exactly one of
// these at a time; buyer-only preference fields live on BuyerProfile so they
// cannot be meaningfully set on a landlord account.
type UserType string

const (
	UserTypeBuyer    UserType = "buyer"
	UserTypeLandlord UserType = "landlord"
)

func (t UserType) Valid() bool {
	return t == UserTypeBuyer || t == UserTypeLandlord
}

// BuyerProfile holds the financial and preference attributes consumed by the
// recommendation ranking. Only populated when UserType is "buyer".
type BuyerProfile struct {
	MonthlyIncome      int        `json:"monthly_income,omitempty" firestore:"monthlyIncome,omitempty"`
	CreditScore        int        `json:"credit_score,omitempty" firestore:"creditScore,omitempty"`
	BudgetMin          int        `json:"budget_min,omitempty" firestore:"budgetMin,omitempty"`
	BudgetMax          int        `json:"budget_max,omitempty" firestore:"budgetMax,omitempty"`
	PreferredZipCodes  []string   `json:"preferred_zip_codes,omitempty" firestore:"preferredZipCodes,omitempty"`
	PreferredBedrooms  int        `json:"preferred_bedrooms,omitempty" firestore:"preferredBedrooms,omitempty"`
	PreferredBathrooms int        `json:"preferred_bathrooms,omitempty" firestore:"preferredBathrooms,omitempty"`
	PetFriendly        bool       `json:"pet_friendly" firestore:"petFriendly"`
	MoveInDate         *time.Time `json:"move_in_date,omitempty" firestore:"moveInDate,omitempty"`
}

type User struct {
	ID              string   `json:"id" firestore:"id"`
	Email           string   `json:"email" firestore:"email"`
	FirstName       string   `json:"first_name,omitempty" firestore:"firstName,omitempty"`
	LastName        string   `json:"last_name,omitempty" firestore:"lastName,omitempty"`
	ProfileImageURL string   `json:"profile_image_url,omitempty" firestore:"profileImageURL,omitempty"`
	Phone           string   `json:"phone,omitempty" firestore:"phone,omitempty"`
	UserType        UserType `json:"user_type" firestore:"userType"`

	Buyer *BuyerProfile `json:"buyer,omitempty" firestore:"buyer,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) IsBuyer() bool {
	return u.UserType == UserTypeBuyer
}

func (u *User) IsLandlord() bool {
	return u.UserType == UserTypeLandlord
}
