package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://dcars.example")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_ListingURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://dcars.example/")
	vehicleID := uuid.New()

	assert.Equal(t, "https://dcars.example/vehicles/"+vehicleID.String(), service.ListingURL(vehicleID))
}

func TestQRCodeService_GenerateListingQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://dcars.example")

	qrBytes, err := service.GenerateListingQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateListingQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		qrBytes, err := NewQRCodeService(size, "M", "https://dcars.example").GenerateListingQR(uuid.New())
		require.NoError(t, err)

		cfg, err := png.DecodeConfig(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, cfg.Width)
		assert.Equal(t, size, cfg.Height)
	}
}

func TestQRCodeService_ParseListingQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://dcars.example")
	vehicleID := uuid.New()

	tests := []struct {
		name    string
		data    string
		want    uuid.UUID
		wantErr bool
	}{
		{name: "round trip", data: service.ListingURL(vehicleID), want: vehicleID},
		{name: "trailing slash", data: service.ListingURL(vehicleID) + "/", want: vehicleID},
		{name: "other host", data: "http://localhost:5173/vehicles/" + vehicleID.String(), want: vehicleID},
		{name: "other path", data: "https://dcars.example/profiles/" + vehicleID.String(), wantErr: true},
		{name: "bad id", data: "https://dcars.example/vehicles/abc", wantErr: true},
		{name: "empty", data: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseListingQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
