package usecase

import (
	"context"
	"strings"

	"homeswipe/internal/domain/entity"
	"homeswipe/internal/domain/repository"
	"homeswipe/internal/infrastructure/ratelimit"
	ws "homeswipe/internal/infrastructure/websocket"
	"homeswipe/pkg/errors"
	"homeswipe/pkg/logger"
)

const maxMessageLength = 2000

// MessageSender delivers an event frame to a connected user. Satisfied by
// *websocket.Manager.
type MessageSender interface {
	SendToUser(userID string, message []byte)
}

type ChatUseCase struct {
	messageRepo repository.MessageRepository
	matchRepo   repository.MatchRepository
	sender      MessageSender
	rateLimiter *ratelimit.RateLimiter
}

func NewChatUseCase(
	messageRepo repository.MessageRepository,
	matchRepo repository.MatchRepository,
	sender MessageSender,
	rateLimiter *ratelimit.RateLimiter,
) *ChatUseCase {
	return &ChatUseCase{
		messageRepo: messageRepo,
		matchRepo:   matchRepo,
		sender:      sender,
		rateLimiter: rateLimiter,
	}
}

type SendMessageInput struct {
	MatchID string `json:"match_id" validate:"required"`
	Content string `json:"content" validate:"required,max=2000"`
}

// SendMessage persists a chat message and pushes a new_message event to both
// match participants. The sender must be one of the match's two parties; the
// message is not persisted otherwise.
func (uc *ChatUseCase) SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*entity.Message, error) {
	allowed, _ := uc.rateLimiter.Allow(senderID, "send_message")
	if !allowed {
		return nil, errors.TooManyRequests("Rate limit exceeded. Please wait before sending another message")
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, errors.BadRequest("Message content cannot be empty", nil)
	}
	if len(content) > maxMessageLength {
		return nil, errors.BadRequest("Message content is too long", nil)
	}

	match, err := uc.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	if !match.IsParticipant(senderID) {
		return nil, errors.Forbidden("You are not a participant in this match", nil)
	}

	message := &entity.Message{
		MatchID:  match.ID,
		SenderID: senderID,
		Content:  content,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	uc.broadcast(match, message)

	return message, nil
}

// GetMessages returns a match's message history ascending by creation time.
// Only participants may read it.
func (uc *ChatUseCase) GetMessages(ctx context.Context, userID, matchID string) ([]*entity.Message, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if !match.IsParticipant(userID) {
		return nil, errors.Forbidden("You are not a participant in this match", nil)
	}

	return uc.messageRepo.ListByMatch(ctx, matchID)
}

// broadcast fans a persisted message out to the match's participants. The
// sender gets a copy too, which doubles as delivery confirmation.
func (uc *ChatUseCase) broadcast(match *entity.Match, message *entity.Message) {
	frame, err := ws.NewEvent(ws.EventNewMessage, message)
	if err != nil {
		logger.Error("Failed to encode new_message event: %v", err)
		return
	}

	uc.sender.SendToUser(match.BuyerID, frame)
	uc.sender.SendToUser(match.LandlordID, frame)
}
