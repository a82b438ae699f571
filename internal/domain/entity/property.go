package entity

import (
	"time"
)

type Property struct {
	ID         string `json:"id" firestore:"id"`
	LandlordID string `json:"landlord_id" firestore:"landlordId"`

	Title         string     `json:"title" firestore:"title"`
	Address       string     `json:"address" firestore:"address"`
	ZipCode       string     `json:"zip_code" firestore:"zipCode"`
	Price         int        `json:"price" firestore:"price"`
	Bedrooms      int        `json:"bedrooms" firestore:"bedrooms"`
	Bathrooms     float64    `json:"bathrooms" firestore:"bathrooms"`
	SquareFootage int        `json:"square_footage,omitempty" firestore:"squareFootage,omitempty"`
	LeaseTerms    string     `json:"lease_terms,omitempty" firestore:"leaseTerms,omitempty"`
	MoveInDate    *time.Time `json:"move_in_date,omitempty" firestore:"moveInDate,omitempty"`
	Amenities     []string   `json:"amenities,omitempty" firestore:"amenities,omitempty"`
	Description   string     `json:"description,omitempty" firestore:"description,omitempty"`
	Images        []string   `json:"images,omitempty" firestore:"images,omitempty"`

	MinCreditScore int  `json:"min_credit_score,omitempty" firestore:"minCreditScore,omitempty"`
	AutoReject     bool `json:"auto_reject" firestore:"autoReject"`
	IsActive       bool `json:"is_active" firestore:"isActive"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
