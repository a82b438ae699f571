package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"homeswipe/internal/domain/entity"
	"homeswipe/internal/domain/repository"
	"homeswipe/pkg/errors"
)

type firestoreSwipeRepository struct {
	client *firestore.Client
}

func NewFirestoreSwipeRepository(client *firestore.Client) repository.SwipeRepository {
	return &firestoreSwipeRepository{
		client: client,
	}
}

// CreateWithMatch writes the swipe and, for right swipes, the pending match
// in a single transaction. The swipe document ID is derived from the
// (buyer, property) pair, so tx.Create fails with AlreadyExists on a repeat
// swipe and neither document is written.
func (r *firestoreSwipeRepository) CreateWithMatch(ctx context.Context, swipe *entity.Swipe, match *entity.Match) error {
	now := time.Now()
	swipe.ID = entity.SwipeDocID(swipe.BuyerID, swipe.PropertyID)
	swipe.CreatedAt = now

	if match != nil {
		if match.ID == "" {
			match.ID = uuid.New().String()
		}
		match.CreatedAt = now
		match.UpdatedAt = now
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		swipeRef := r.client.Collection("swipes").Doc(swipe.ID)
		if err := tx.Create(swipeRef, swipe); err != nil {
			return err
		}

		if match != nil {
			matchRef := r.client.Collection("matches").Doc(match.ID)
			if err := tx.Create(matchRef, match); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("DUPLICATE_SWIPE", "Already swiped on this property", err)
		}
		return storeErr("Failed to record swipe", err)
	}

	return nil
}

func (r *firestoreSwipeRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Swipe, error) {
	query := r.client.Collection("swipes").Where("buyerId", "==", buyerID)
	iter := query.Documents(ctx)

	var swipes []*entity.Swipe
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, storeErr("Failed to iterate swipes", err)
		}

		var swipe entity.Swipe
		if err := doc.DataTo(&swipe); err != nil {
			return nil, storeErr("Failed to parse swipe data", err)
		}

		swipes = append(swipes, &swipe)
	}

	return swipes, nil
}

func (r *firestoreSwipeRepository) Exists(ctx context.Context, buyerID, propertyID string) (bool, error) {
	_, err := r.client.Collection("swipes").Doc(entity.SwipeDocID(buyerID, propertyID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, storeErr("Failed to check swipe", err)
	}

	return true, nil
}
