package service

import "context"

// AdminAlerter sends operational messages to marketplace administrators.
type AdminAlerter interface {
	Alert(ctx context.Context, text string) error
}
