// Package usecase contains the application-specific business rules.
package usecase

import (
	"io"

	"dcars/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uuid.UUID
	Role   entity.Role
}

// IsAdmin reports whether the actor moderates the marketplace.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// FileUpload is an uploaded file handed to a use case.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
