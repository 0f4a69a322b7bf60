package qrcode

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"dcars/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const listingPathPrefix = "/vehicles/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// ListingURL returns the public listing page URL
func (s *qrcodeService) ListingURL(vehicleID uuid.UUID) string {
	return s.baseURL + listingPathPrefix + vehicleID.String()
}

// GenerateListingQR generates a PNG QR code pointing at the listing page
func (s *qrcodeService) GenerateListingQR(vehicleID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ListingURL(vehicleID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseListingQR extracts the listing ID from a scanned listing URL
func (s *qrcodeService) ParseListingQR(qrData string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse QR code data: %w", err)
	}

	dir, id := path.Split(strings.TrimRight(parsed.Path, "/"))
	if !strings.HasSuffix(dir, listingPathPrefix) {
		return uuid.Nil, fmt.Errorf("not a listing link: %s", qrData)
	}

	vehicleID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse vehicle ID: %w", err)
	}

	return vehicleID, nil
}
