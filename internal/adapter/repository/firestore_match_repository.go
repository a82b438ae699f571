package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"homeswipe/internal/domain/entity"
	"homeswipe/internal/domain/repository"
	"homeswipe/pkg/errors"
)

type firestoreMatchRepository struct {
	client *firestore.Client
}

func NewFirestoreMatchRepository(client *firestore.Client) repository.MatchRepository {
	return &firestoreMatchRepository{
		client: client,
	}
}

func (r *firestoreMatchRepository) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	doc, err := r.client.Collection("matches").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Match", err)
		}
		return nil, storeErr("Failed to get match", err)
	}

	var match entity.Match
	if err := doc.DataTo(&match); err != nil {
		return nil, storeErr("Failed to parse match data", err)
	}

	return &match, nil
}

func (r *firestoreMatchRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Match, error) {
	query := r.client.Collection("matches").
		Where("buyerId", "==", buyerID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreMatchRepository) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Match, error) {
	query := r.client.Collection("matches").
		Where("landlordId", "==", landlordID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreMatchRepository) ListByProperty(ctx context.Context, propertyID string) ([]*entity.Match, error) {
	query := r.client.Collection("matches").
		Where("propertyId", "==", propertyID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreMatchRepository) ListPendingByProperty(ctx context.Context, propertyID string) ([]*entity.Match, error) {
	query := r.client.Collection("matches").
		Where("propertyId", "==", propertyID).
		Where("status", "==", string(entity.MatchPending)).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreMatchRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Match, error) {
	iter := query.Documents(ctx)
	var matches []*entity.Match

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, storeErr("Failed to iterate matches", err)
		}

		var match entity.Match
		if err := doc.DataTo(&match); err != nil {
			return nil, storeErr("Failed to parse match data", err)
		}

		matches = append(matches, &match)
	}

	return matches, nil
}

func (r *firestoreMatchRepository) UpdateStatus(ctx context.Context, id string, matchStatus entity.MatchStatus) (*entity.Match, error) {
	ref := r.client.Collection("matches").Doc(id)

	var updated entity.Match
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}

		if err := doc.DataTo(&updated); err != nil {
			return err
		}

		updated.Status = matchStatus
		updated.UpdatedAt = time.Now()

		return tx.Set(ref, &updated)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Match", err)
		}
		return nil, storeErr("Failed to update match status", err)
	}

	return &updated, nil
}
