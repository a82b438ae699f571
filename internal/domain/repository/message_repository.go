package repository

import (
	"context"

	"homeswipe/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	// ListByMatch returns the match's messages ascending by creation time.
	ListByMatch(ctx context.Context, matchID string) ([]*entity.Message, error)
}
