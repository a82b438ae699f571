package entity

import (
	"time"
)

// MatchStatus is the landlord-gated state of a match:
// pending (initial) -> approved | rejected.
type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"
	MatchApproved MatchStatus = "approved"
	MatchRejected MatchStatus = "rejected"
)

// ValidTransition reports whether a landlord may set this status.
// Only approved and rejected are reachable; pending is initial-only.
func (s MatchStatus) ValidTransition() bool {
	return s == MatchApproved || s == MatchRejected
}

// Match links a buyer, the property's landlord, and the property. It is
// created only as a side effect of a right swipe, so at most one match exists
// per (buyer, property) pair.
type Match struct {
	ID         string      `json:"id" firestore:"id"`
	BuyerID    string      `json:"buyer_id" firestore:"buyerId"`
	LandlordID string      `json:"landlord_id" firestore:"landlordId"`
	PropertyID string      `json:"property_id" firestore:"propertyId"`
	Status     MatchStatus `json:"status" firestore:"status"`
	CreatedAt  time.Time   `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time   `json:"updated_at" firestore:"updatedAt"`
}

// IsParticipant reports whether userID is one of the match's two parties.
func (m *Match) IsParticipant(userID string) bool {
	return userID == m.BuyerID || userID == m.LandlordID
}
