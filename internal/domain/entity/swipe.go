package entity

import (
	"time"
)

// SwipeDirection is a buyer's one-time judgment on a property:
// "left" is a pass, "right" is a like.
type SwipeDirection string

const (
	SwipeLeft  SwipeDirection = "left"
	SwipeRight SwipeDirection = "right"
)

func (d SwipeDirection) Valid() bool {
	return d == SwipeLeft || d == SwipeRight
}

// Swipe is immutable once created. At most one swipe ever exists per
// (buyer, property) pair; the repository enforces this with a deterministic
// document ID.
type Swipe struct {
	ID         string         `json:"id" firestore:"id"`
	BuyerID    string         `json:"buyer_id" firestore:"buyerId"`
	PropertyID string         `json:"property_id" firestore:"propertyId"`
	Direction  SwipeDirection `json:"direction" firestore:"direction"`
	CreatedAt  time.Time      `json:"created_at" firestore:"createdAt"`
}

// SwipeDocID is the deterministic document key for a (buyer, property) pair.
func SwipeDocID(buyerID, propertyID string) string {
	return buyerID + "_" + propertyID
}
