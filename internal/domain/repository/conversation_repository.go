package repository

import (
	"context"
	"time"

	"dcars/internal/domain/entity"
	"dcars/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for messaging persistence.
var (
	// ErrConversationNotFound is returned when a conversation is not found.
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrDuplicateConversation is returned when the buyer already has a conversation for the listing.
	ErrDuplicateConversation = errors.New("conversation already exists")
)

// ConversationRepository defines the interface for conversations and their messages.
type ConversationRepository interface {
	// CreateConversation persists a new conversation.
	CreateConversation(ctx context.Context, conversation *entity.Conversation) error

	// FindConversationByID retrieves a conversation by its ID.
	FindConversationByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)

	// FindConversation retrieves the conversation of a buyer about a listing.
	FindConversation(ctx context.Context, vehicleID, buyerID uuid.UUID) (*entity.Conversation, error)

	// ListConversations returns one page of the user's conversations, most recently active first.
	ListConversations(ctx context.Context, userID uuid.UUID, page entity.PageRequest) ([]*entity.Conversation, int64, error)

	// CreateMessage persists a message and bumps the conversation's last activity.
	CreateMessage(ctx context.Context, message *entity.Message) error

	// ListMessages returns up to limit messages older than before, newest first.
	ListMessages(ctx context.Context, conversationID uuid.UUID, before *time.Time, limit int) ([]*entity.Message, error)

	// LastMessages returns the latest message of each conversation, keyed by conversation ID.
	LastMessages(ctx context.Context, conversationIDs []uuid.UUID) (map[uuid.UUID]*entity.Message, error)

	// UnreadCounts returns messages not sent by readerID and not yet read, keyed by conversation ID.
	UnreadCounts(ctx context.Context, readerID uuid.UUID, conversationIDs []uuid.UUID) (map[uuid.UUID]int64, error)

	// MarkRead marks the other participant's messages in a conversation as read.
	MarkRead(ctx context.Context, conversationID, readerID uuid.UUID, at time.Time) (int64, error)

	// CountUnread counts unread messages addressed to the user across all conversations.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
