package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies inbox notifications.
type NotificationType string

const (
	NotificationTypeMessage        NotificationType = "message"
	NotificationTypeFavorite       NotificationType = "favorite"
	NotificationTypePayment        NotificationType = "payment"
	NotificationTypeListingSold    NotificationType = "listing_sold"
	NotificationTypeListingExpired NotificationType = "listing_expired"
	NotificationTypeSubscription   NotificationType = "subscription"
	NotificationTypeAccount        NotificationType = "account"
	NotificationTypeSystem         NotificationType = "system"
)

// Notification is an inbox entry for a user.
type Notification struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Type      NotificationType  `json:"type"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
	ReadAt    *time.Time        `json:"read_at,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// IsRead reports whether the notification was read.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// NotificationFilter narrows inbox listings.
type NotificationFilter struct {
	UnreadOnly bool
	Page       PageRequest
}
