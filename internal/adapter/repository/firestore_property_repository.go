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
	"homeswipe/pkg/logger"
)

type firestorePropertyRepository struct {
	client *firestore.Client
}

func NewFirestorePropertyRepository(client *firestore.Client) repository.PropertyRepository {
	return &firestorePropertyRepository{
		client: client,
	}
}

func (r *firestorePropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	if property.ID == "" {
		property.ID = uuid.New().String()
	}

	now := time.Now()
	property.CreatedAt = now
	property.UpdatedAt = now

	_, err := r.client.Collection("properties").Doc(property.ID).Set(ctx, property)
	if err != nil {
		return storeErr("Failed to create property", err)
	}

	return nil
}

func (r *firestorePropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	doc, err := r.client.Collection("properties").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Property", err)
		}
		return nil, storeErr("Failed to get property", err)
	}

	var property entity.Property
	if err := doc.DataTo(&property); err != nil {
		return nil, storeErr("Failed to parse property data", err)
	}

	return &property, nil
}

func (r *firestorePropertyRepository) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Property, error) {
	query := r.client.Collection("properties").
		Where("landlordId", "==", landlordID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestorePropertyRepository) ListActive(ctx context.Context) ([]*entity.Property, error) {
	query := r.client.Collection("properties").
		Where("isActive", "==", true).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestorePropertyRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Property, error) {
	iter := query.Documents(ctx)
	var properties []*entity.Property

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, storeErr("Failed to iterate properties", err)
		}

		var property entity.Property
		if err := doc.DataTo(&property); err != nil {
			logger.Warn("Skipping malformed property document %s: %v", doc.Ref.ID, err)
			continue
		}

		properties = append(properties, &property)
	}

	return properties, nil
}

func (r *firestorePropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	property.UpdatedAt = time.Now()

	_, err := r.client.Collection("properties").Doc(property.ID).Set(ctx, property)
	if err != nil {
		return storeErr("Failed to update property", err)
	}

	return nil
}

func (r *firestorePropertyRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("properties").Doc(id).Delete(ctx)
	if err != nil {
		return storeErr("Failed to delete property", err)
	}

	return nil
}
