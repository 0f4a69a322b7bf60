package usecase

import (
	"context"
	"time"

	"dcars/internal/domain/entity"

	"github.com/google/uuid"
)

// MessagingUsecase handles buyer and seller chat.
type MessagingUsecase interface {
	// StartConversation opens or reuses the caller's conversation about a listing and sends the first message.
	StartConversation(ctx context.Context, buyerID, vehicleID uuid.UUID, body string) (*entity.Conversation, *entity.Message, error)

	// Send posts a message to a conversation the caller takes part in.
	Send(ctx context.Context, senderID, conversationID uuid.UUID, body string) (*entity.Message, error)

	// ListConversations returns the caller's inbox with last message and unread counts.
	ListConversations(ctx context.Context, userID uuid.UUID, page entity.PageRequest) (entity.Page[*entity.ConversationSummary], error)

	// ListMessages returns up to limit messages older than before, newest first.
	ListMessages(ctx context.Context, userID, conversationID uuid.UUID, before *time.Time, limit int) ([]*entity.Message, error)

	// MarkRead marks the counterpart's messages as read and returns how many changed.
	MarkRead(ctx context.Context, userID, conversationID uuid.UUID) (int64, error)

	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}
