package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"dcars/config"
	domainerrors "dcars/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

// Minimal file headers that content detection recognises.
var (
	pngBytes  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	jpegBytes = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Storage: &config.StorageConfig{MaxImageBytes: 1 << 20},
		Listing: &config.ListingConfig{
			DefaultPageSize:  20,
			MaxPageSize:      50,
			MaxImages:        3,
			ExpiryDays:       60,
			FeaturedDays:     7,
			FreeListingLimit: 2,
		},
		Messaging: &config.MessagingConfig{RatePerSecond: 1, Burst: 5, MaxLength: 20},
		Payments:  &config.PaymentsConfig{Currency: "USD"},
		Plans: []config.PlanConfig{
			{Code: "pro", Name: "Pro", PriceMinor: 2999, ListingLimit: 25, PeriodDays: 30, Featured: true},
			{Code: "dealer", Name: "Dealer", PriceMinor: 9999, PeriodDays: 30, Featured: true},
		},
		Scheduler: &config.SchedulerConfig{NotificationRetentionDays: 30},
	}
}

// requireAppError asserts that err carries an application error with the given business code.
func requireAppError(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	require.Equal(t, code, appErr.ErrorCode())
}
