package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeswipe/internal/domain/entity"
	"homeswipe/pkg/errors"
)

func newMatchFixture(t *testing.T) (*MatchUseCase, *stubMatchRepo) {
	t.Helper()

	buyer := &entity.User{ID: "buyer-1", UserType: entity.UserTypeBuyer}
	landlord := &entity.User{ID: "landlord-1", UserType: entity.UserTypeLandlord}
	property := &entity.Property{ID: "prop-1", LandlordID: "landlord-1", IsActive: true}
	match := &entity.Match{
		ID:         "match-1",
		BuyerID:    "buyer-1",
		LandlordID: "landlord-1",
		PropertyID: "prop-1",
		Status:     entity.MatchPending,
	}

	matchRepo := newStubMatchRepo(match)
	uc := NewMatchUseCase(matchRepo, newStubPropertyRepo(property), newStubUserRepo(buyer, landlord))

	return uc, matchRepo
}

func TestSetStatusLandlordApproves(t *testing.T) {
	uc, _ := newMatchFixture(t)

	match, err := uc.SetStatus(context.Background(), "landlord-1", "match-1", UpdateMatchStatusInput{Status: "approved"})

	require.NoError(t, err)
	assert.Equal(t, entity.MatchApproved, match.Status)
}

func TestSetStatusLandlordRejects(t *testing.T) {
	uc, _ := newMatchFixture(t)

	match, err := uc.SetStatus(context.Background(), "landlord-1", "match-1", UpdateMatchStatusInput{Status: "rejected"})

	require.NoError(t, err)
	assert.Equal(t, entity.MatchRejected, match.Status)
}

func TestSetStatusBuyerForbidden(t *testing.T) {
	uc, matchRepo := newMatchFixture(t)

	_, err := uc.SetStatus(context.Background(), "buyer-1", "match-1", UpdateMatchStatusInput{Status: "approved"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	stored, err := matchRepo.GetByID(context.Background(), "match-1")
	require.NoError(t, err)
	assert.Equal(t, entity.MatchPending, stored.Status)
}

func TestSetStatusOtherLandlordForbidden(t *testing.T) {
	uc, _ := newMatchFixture(t)

	_, err := uc.SetStatus(context.Background(), "landlord-2", "match-1", UpdateMatchStatusInput{Status: "approved"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestSetStatusInvalidValue(t *testing.T) {
	uc, _ := newMatchFixture(t)

	_, err := uc.SetStatus(context.Background(), "landlord-1", "match-1", UpdateMatchStatusInput{Status: "pending"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSetStatusUnknownMatch(t *testing.T) {
	uc, _ := newMatchFixture(t)

	_, err := uc.SetStatus(context.Background(), "landlord-1", "missing", UpdateMatchStatusInput{Status: "approved"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestGetMatchParticipantOnly(t *testing.T) {
	uc, _ := newMatchFixture(t)

	match, err := uc.GetMatch(context.Background(), "buyer-1", "match-1")
	require.NoError(t, err)
	assert.Equal(t, "match-1", match.ID)

	_, err = uc.GetMatch(context.Background(), "stranger", "match-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestListForUserSplitsByRole(t *testing.T) {
	uc, _ := newMatchFixture(t)

	buyerMatches, err := uc.ListForUser(context.Background(), "buyer-1")
	require.NoError(t, err)
	assert.Len(t, buyerMatches, 1)

	landlordMatches, err := uc.ListForUser(context.Background(), "landlord-1")
	require.NoError(t, err)
	assert.Len(t, landlordMatches, 1)
}

func TestListPendingForPropertyOwnerOnly(t *testing.T) {
	uc, _ := newMatchFixture(t)

	pending, err := uc.ListPendingForProperty(context.Background(), "landlord-1", "prop-1")
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	_, err = uc.ListPendingForProperty(context.Background(), "buyer-1", "prop-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestListPendingExcludesDecidedMatches(t *testing.T) {
	uc, matchRepo := newMatchFixture(t)

	_, err := matchRepo.UpdateStatus(context.Background(), "match-1", entity.MatchApproved)
	require.NoError(t, err)

	pending, err := uc.ListPendingForProperty(context.Background(), "landlord-1", "prop-1")
	require.NoError(t, err)
	assert.Empty(t, pending)
}
