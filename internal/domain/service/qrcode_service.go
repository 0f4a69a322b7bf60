package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for listing share codes
type QRCodeService interface {
	// ListingURL returns the public URL a listing QR code points to
	ListingURL(vehicleID uuid.UUID) string

	// GenerateListingQR generates a PNG QR code for a listing
	GenerateListingQR(vehicleID uuid.UUID) ([]byte, error)

	// ParseListingQR extracts the listing ID from scanned QR code content
	ParseListingQR(qrData string) (uuid.UUID, error)
}
