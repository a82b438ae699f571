package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"homeswipe/internal/domain/entity"
	"homeswipe/internal/domain/repository"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) messages(matchID string) *firestore.CollectionRef {
	return r.client.Collection("matches").Doc(matchID).Collection("messages")
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()

	_, err := r.messages(message.MatchID).Doc(message.ID).Set(ctx, message)
	if err != nil {
		return storeErr("Failed to create message", err)
	}

	return nil
}

// ListByMatch returns the match's messages oldest first.
func (r *firestoreMessageRepository) ListByMatch(ctx context.Context, matchID string) ([]*entity.Message, error) {
	query := r.messages(matchID).OrderBy("createdAt", firestore.Asc)
	iter := query.Documents(ctx)

	var messages []*entity.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, storeErr("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, storeErr("Failed to parse message data", err)
		}

		messages = append(messages, &message)
	}

	return messages, nil
}
