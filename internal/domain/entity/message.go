package entity

import (
	"time"
)

// Message belongs to exactly one match and is authored by one of the match's
// two parties. Display order is ascending by CreatedAt.
type Message struct {
	ID        string    `json:"id" firestore:"id"`
	MatchID   string    `json:"match_id" firestore:"matchId"`
	SenderID  string    `json:"sender_id" firestore:"senderId"`
	Content   string    `json:"content" firestore:"content"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
