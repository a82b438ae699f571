package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"homeswipe/internal/domain/entity"
	"homeswipe/pkg/errors"
)

// In-memory repository fakes. They reproduce the storage contracts the use
// cases rely on, including the atomic swipe+match write and its duplicate
// conflict.

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newStubUserRepo(users ...*entity.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *stubUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

type stubPropertyRepo struct {
	mu         sync.Mutex
	properties map[string]*entity.Property
}

func newStubPropertyRepo(properties ...*entity.Property) *stubPropertyRepo {
	r := &stubPropertyRepo{properties: make(map[string]*entity.Property)}
	for _, p := range properties {
		r.properties[p.ID] = p
	}
	return r
}

func (r *stubPropertyRepo) Create(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	property.CreatedAt = time.Now()
	property.UpdatedAt = property.CreatedAt
	r.properties[property.ID] = property
	return nil
}

func (r *stubPropertyRepo) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.properties[id]
	if !ok {
		return nil, errors.NotFound("Property", nil)
	}
	return p, nil
}

func (r *stubPropertyRepo) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Property
	for _, p := range r.properties {
		if p.LandlordID == landlordID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPropertyRepo) ListActive(ctx context.Context) ([]*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Property
	for _, p := range r.properties {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPropertyRepo) Update(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	property.UpdatedAt = time.Now()
	r.properties[property.ID] = property
	return nil
}

func (r *stubPropertyRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.properties, id)
	return nil
}

type stubSwipeRepo struct {
	mu      sync.Mutex
	swipes  map[string]*entity.Swipe
	matches *stubMatchRepo
}

func newStubSwipeRepo(matches *stubMatchRepo) *stubSwipeRepo {
	return &stubSwipeRepo{
		swipes:  make(map[string]*entity.Swipe),
		matches: matches,
	}
}

func (r *stubSwipeRepo) CreateWithMatch(ctx context.Context, swipe *entity.Swipe, match *entity.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.SwipeDocID(swipe.BuyerID, swipe.PropertyID)
	if _, exists := r.swipes[id]; exists {
		return errors.Conflict("DUPLICATE_SWIPE", "Already swiped on this property", nil)
	}

	now := time.Now()
	swipe.ID = id
	swipe.CreatedAt = now
	r.swipes[id] = swipe

	if match != nil {
		match.ID = uuid.New().String()
		match.CreatedAt = now
		match.UpdatedAt = now
		r.matches.put(match)
	}

	return nil
}

func (r *stubSwipeRepo) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Swipe
	for _, s := range r.swipes {
		if s.BuyerID == buyerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSwipeRepo) Exists(ctx context.Context, buyerID, propertyID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.swipes[entity.SwipeDocID(buyerID, propertyID)]
	return ok, nil
}

type stubMatchRepo struct {
	mu      sync.Mutex
	matches map[string]*entity.Match
}

func newStubMatchRepo(matches ...*entity.Match) *stubMatchRepo {
	r := &stubMatchRepo{matches: make(map[string]*entity.Match)}
	for _, m := range matches {
		r.matches[m.ID] = m
	}
	return r
}

func (r *stubMatchRepo) put(match *entity.Match) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches[match.ID] = match
}

func (r *stubMatchRepo) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.matches[id]
	if !ok {
		return nil, errors.NotFound("Match", nil)
	}
	return m, nil
}

func (r *stubMatchRepo) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Match, error) {
	return r.filter(func(m *entity.Match) bool { return m.BuyerID == buyerID }), nil
}

func (r *stubMatchRepo) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Match, error) {
	return r.filter(func(m *entity.Match) bool { return m.LandlordID == landlordID }), nil
}

func (r *stubMatchRepo) ListByProperty(ctx context.Context, propertyID string) ([]*entity.Match, error) {
	return r.filter(func(m *entity.Match) bool { return m.PropertyID == propertyID }), nil
}

func (r *stubMatchRepo) ListPendingByProperty(ctx context.Context, propertyID string) ([]*entity.Match, error) {
	return r.filter(func(m *entity.Match) bool {
		return m.PropertyID == propertyID && m.Status == entity.MatchPending
	}), nil
}

func (r *stubMatchRepo) filter(keep func(*entity.Match) bool) []*entity.Match {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Match
	for _, m := range r.matches {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

func (r *stubMatchRepo) UpdateStatus(ctx context.Context, id string, status entity.MatchStatus) (*entity.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.matches[id]
	if !ok {
		return nil, errors.NotFound("Match", nil)
	}
	m.Status = status
	m.UpdatedAt = time.Now()
	return m, nil
}

type stubMessageRepo struct {
	mu       sync.Mutex
	messages []*entity.Message
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{}
}

func (r *stubMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	message.ID = uuid.New().String()
	message.CreatedAt = time.Now()
	r.messages = append(r.messages, message)
	return nil
}

func (r *stubMessageRepo) ListByMatch(ctx context.Context, matchID string) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Message
	for _, m := range r.messages {
		if m.MatchID == matchID {
			out = append(out, m)
		}
	}
	return out, nil
}

// stubSender records every frame pushed to each user.
type stubSender struct {
	mu     sync.Mutex
	frames map[string][][]byte
}

func newStubSender() *stubSender {
	return &stubSender{frames: make(map[string][][]byte)}
}

func (s *stubSender) SendToUser(userID string, message []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames[userID] = append(s.frames[userID], message)
}

func (s *stubSender) sentTo(userID string) [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames[userID]
}
