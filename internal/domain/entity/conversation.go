package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the thread between a buyer and the seller of one listing.
type Conversation struct {
	ID            uuid.UUID  `json:"id"`
	VehicleID     uuid.UUID  `json:"vehicle_id"`
	BuyerID       uuid.UUID  `json:"buyer_id"`
	SellerID      uuid.UUID  `json:"seller_id"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// HasParticipant reports whether the user is the buyer or seller of the conversation.
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.BuyerID == userID || c.SellerID == userID
}

// Counterpart returns the other participant's ID.
func (c *Conversation) Counterpart(userID uuid.UUID) uuid.UUID {
	if c.BuyerID == userID {
		return c.SellerID
	}

	return c.BuyerID
}

// Message is a single chat message.
type Message struct {
	ID             uuid.UUID  `json:"id"`
	ConversationID uuid.UUID  `json:"conversation_id"`
	SenderID       uuid.UUID  `json:"sender_id"`
	Body           string     `json:"body"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ConversationSummary is a conversation row for inbox listings.
type ConversationSummary struct {
	Conversation
	VehicleTitle    string    `json:"vehicle_title"`
	CounterpartID   uuid.UUID `json:"counterpart_id"`
	CounterpartName string    `json:"counterpart_name"`
	LastMessage     *Message  `json:"last_message,omitempty"`
	UnreadCount     int64     `json:"unread_count"`
}
