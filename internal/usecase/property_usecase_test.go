package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeswipe/internal/domain/entity"
	"homeswipe/internal/domain/service"
	"homeswipe/internal/infrastructure/ratelimit"
	"homeswipe/pkg/errors"
)

type propertyFixture struct {
	properties *PropertyUseCase
	swipes     *SwipeUseCase
	matchRepo  *stubMatchRepo
}

func newPropertyFixture(t *testing.T) *propertyFixture {
	t.Helper()

	buyer := &entity.User{ID: "buyer-1", UserType: entity.UserTypeBuyer}
	landlord := &entity.User{ID: "landlord-1", UserType: entity.UserTypeLandlord}

	userRepo := newStubUserRepo(buyer, landlord)
	propertyRepo := newStubPropertyRepo(
		&entity.Property{ID: "prop-1", LandlordID: "landlord-1", Title: "Downtown loft", Price: 2200, IsActive: true},
		&entity.Property{ID: "prop-2", LandlordID: "landlord-1", Title: "Garden flat", Price: 1500, IsActive: true},
		&entity.Property{ID: "prop-hidden", LandlordID: "landlord-1", Title: "Delisted", Price: 1000, IsActive: false},
	)
	matchRepo := newStubMatchRepo()
	swipeRepo := newStubSwipeRepo(matchRepo)
	rateLimiter := ratelimit.NewRateLimiter()

	return &propertyFixture{
		properties: NewPropertyUseCase(propertyRepo, swipeRepo, matchRepo, userRepo, service.NewRecommendationService()),
		swipes:     NewSwipeUseCase(swipeRepo, propertyRepo, userRepo, rateLimiter),
		matchRepo:  matchRepo,
	}
}

func TestFeedExcludesInactiveAndSwiped(t *testing.T) {
	f := newPropertyFixture(t)

	_, err := f.swipes.RecordSwipe(context.Background(), "buyer-1", RecordSwipeInput{
		PropertyID: "prop-1",
		Direction:  "left",
	})
	require.NoError(t, err)

	feed, err := f.properties.Feed(context.Background(), "buyer-1")
	require.NoError(t, err)

	require.Len(t, feed, 1)
	assert.Equal(t, "prop-2", feed[0].ID)
}

func TestFeedExcludesOwnListings(t *testing.T) {
	f := newPropertyFixture(t)

	feed, err := f.properties.Feed(context.Background(), "landlord-1")
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestFeedCountsInterestedBuyers(t *testing.T) {
	f := newPropertyFixture(t)

	f.matchRepo.put(&entity.Match{
		ID: "m1", BuyerID: "buyer-2", LandlordID: "landlord-1", PropertyID: "prop-1", Status: entity.MatchPending,
	})
	f.matchRepo.put(&entity.Match{
		ID: "m2", BuyerID: "buyer-3", LandlordID: "landlord-1", PropertyID: "prop-1", Status: entity.MatchApproved,
	})

	feed, err := f.properties.Feed(context.Background(), "buyer-1")
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, item := range feed {
		counts[item.ID] = item.InterestedCount
	}
	assert.Equal(t, 2, counts["prop-1"])
	assert.Equal(t, 0, counts["prop-2"])
}

func TestCreatePropertyBuyerForbidden(t *testing.T) {
	f := newPropertyFixture(t)

	_, err := f.properties.Create(context.Background(), "buyer-1", CreatePropertyInput{
		Title:     "Buyer's listing",
		Address:   "1 Main St",
		ZipCode:   "94107",
		Price:     1200,
		Bedrooms:  1,
		Bathrooms: 1,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestUpdatePropertyOwnerOnly(t *testing.T) {
	f := newPropertyFixture(t)

	newPrice := 2400
	_, err := f.properties.Update(context.Background(), "buyer-1", "prop-1", UpdatePropertyInput{Price: &newPrice})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	updated, err := f.properties.Update(context.Background(), "landlord-1", "prop-1", UpdatePropertyInput{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 2400, updated.Price)
}

func TestDeletePropertyOwnerOnly(t *testing.T) {
	f := newPropertyFixture(t)

	err := f.properties.Delete(context.Background(), "buyer-1", "prop-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, f.properties.Delete(context.Background(), "landlord-1", "prop-1"))

	_, err = f.properties.GetByID(context.Background(), "prop-1")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
