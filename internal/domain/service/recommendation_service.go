package service

import (
	"math"
	"sort"

	"homeswipe/internal/domain/entity"
)

// RecommendationService ranks a buyer's property feed with a rules-based
// preference score. Stateless; safe for concurrent use.
type RecommendationService struct{}

func NewRecommendationService() *RecommendationService {
	return &RecommendationService{}
}

type scoredProperty struct {
	property *entity.Property
	score    float64
}

// Rank orders properties best-first for the given buyer. Right swipes in
// history pull similar listings up. The input slice is not modified.
func (s *RecommendationService) Rank(user *entity.User, properties []*entity.Property, history []*entity.Swipe) []*entity.Property {
	if len(properties) == 0 {
		return properties
	}

	liked := likedProperties(properties, history)

	scored := make([]scoredProperty, 0, len(properties))
	for _, p := range properties {
		scored = append(scored, scoredProperty{
			property: p,
			score:    s.score(user, p, liked),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]*entity.Property, len(scored))
	for i, sp := range scored {
		ranked[i] = sp.property
	}

	return ranked
}

func (s *RecommendationService) score(user *entity.User, property *entity.Property, liked []*entity.Property) float64 {
	score := 50.0

	prefs := user.Buyer
	if prefs == nil {
		prefs = &entity.BuyerProfile{}
	}

	score += scoreBudgetFit(property.Price, prefs.BudgetMin, prefs.BudgetMax)

	if len(prefs.PreferredZipCodes) > 0 && contains(prefs.PreferredZipCodes, property.ZipCode) {
		score += 25
	}

	if prefs.PreferredBedrooms > 0 && property.Bedrooms == prefs.PreferredBedrooms {
		score += 15
	}
	if prefs.PreferredBathrooms > 0 && property.Bathrooms >= float64(prefs.PreferredBathrooms) {
		score += 10
	}

	if prefs.PetFriendly && contains(property.Amenities, "Pet Friendly") {
		score += 10
	}

	if len(liked) > 0 {
		score += scoreSimilarityToLiked(property, liked)
	}

	return math.Min(100, math.Max(1, score))
}

// scoreBudgetFit awards up to 30 points. In-budget listings get the full
// amount; listings outside the range lose points in proportion to how far
// out they fall, with over-budget penalized harder than under.
func scoreBudgetFit(price, budgetMin, budgetMax int) float64 {
	if budgetMax == 0 {
		budgetMax = 999999
	}

	if price >= budgetMin && price <= budgetMax {
		return 30
	}

	if price < budgetMin {
		underPct := float64(budgetMin-price) / float64(budgetMin)
		return math.Max(0, 30-underPct*20)
	}

	overPct := float64(price-budgetMax) / float64(budgetMax)
	return math.Max(0, 30-overPct*40)
}

func scoreSimilarityToLiked(property *entity.Property, liked []*entity.Property) float64 {
	var score float64

	var priceSum int
	for _, p := range liked {
		priceSum += p.Price
	}
	avgLikedPrice := float64(priceSum) / float64(len(liked))

	pricePctDiff := math.Abs(float64(property.Price)-avgLikedPrice) / avgLikedPrice
	if pricePctDiff < 0.2 {
		score += 5
	} else if pricePctDiff < 0.4 {
		score += 3
	}

	if property.Bedrooms == mostCommonBedrooms(liked) {
		score += 5
	}

	common := mostCommonAmenities(liked)
	var overlap int
	for _, a := range property.Amenities {
		if contains(common, a) {
			overlap++
		}
	}
	score += math.Min(5, float64(overlap*2))

	return score
}

func likedProperties(properties []*entity.Property, history []*entity.Swipe) []*entity.Property {
	byID := make(map[string]*entity.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}

	var liked []*entity.Property
	for _, swipe := range history {
		if swipe.Direction != entity.SwipeRight {
			continue
		}
		if p, ok := byID[swipe.PropertyID]; ok {
			liked = append(liked, p)
		}
	}

	return liked
}

func mostCommonBedrooms(properties []*entity.Property) int {
	counts := make(map[int]int)
	for _, p := range properties {
		counts[p.Bedrooms]++
	}

	var best, bestCount int
	for bedrooms, count := range counts {
		if count > bestCount || (count == bestCount && bedrooms < best) {
			best = bedrooms
			bestCount = count
		}
	}

	return best
}

// mostCommonAmenities returns the top three amenities across the given
// properties, most frequent first.
func mostCommonAmenities(properties []*entity.Property) []string {
	counts := make(map[string]int)
	for _, p := range properties {
		for _, a := range p.Amenities {
			counts[a]++
		}
	}

	amenities := make([]string, 0, len(counts))
	for a := range counts {
		amenities = append(amenities, a)
	}

	sort.Slice(amenities, func(i, j int) bool {
		if counts[amenities[i]] != counts[amenities[j]] {
			return counts[amenities[i]] > counts[amenities[j]]
		}
		return amenities[i] < amenities[j]
	})

	if len(amenities) > 3 {
		amenities = amenities[:3]
	}

	return amenities
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
