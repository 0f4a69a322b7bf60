package scheduler

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"dcars/config"
	mockUsecase "dcars/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

var fixedNow = time.Date(2026, 3, 15, 3, 30, 0, 0, time.UTC)

func newTestScheduler(t *testing.T, cfg *config.SchedulerConfig) (*Scheduler, *mockUsecase.MockMaintenanceUsecase, *fxtest.Lifecycle) {
	t.Helper()

	maintenance := mockUsecase.NewMockMaintenanceUsecase(t)
	lc := fxtest.NewLifecycle(t)

	s, err := New(Params{
		Lc:          lc,
		Config:      &config.Config{Scheduler: cfg},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Maintenance: maintenance,
	})
	require.NoError(t, err)
	s.now = func() time.Time { return fixedNow }

	return s, maintenance, lc
}

func TestNew_RegistersDefaultJobs(t *testing.T) {
	s, _, lc := newTestScheduler(t, &config.SchedulerConfig{Enabled: true, NotificationRetentionDays: 30})

	assert.Len(t, s.Entries(), 3)

	lc.RequireStart()
	lc.RequireStop()
}

func TestNew_Disabled(t *testing.T) {
	s, _, lc := newTestScheduler(t, &config.SchedulerConfig{Enabled: false})

	assert.Empty(t, s.Entries())

	lc.RequireStart()
	lc.RequireStop()
}

func TestNew_InvalidSpec(t *testing.T) {
	_, err := New(Params{
		Lc:          fxtest.NewLifecycle(t),
		Config:      &config.Config{Scheduler: &config.SchedulerConfig{Enabled: true, ListingExpirySpec: "every minute"}},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Maintenance: mockUsecase.NewMockMaintenanceUsecase(t),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expire_listings")
}

func TestScheduler_PurgeJobUsesRetention(t *testing.T) {
	s, maintenance, _ := newTestScheduler(t, &config.SchedulerConfig{Enabled: true, NotificationRetentionDays: 30})

	maintenance.EXPECT().
		PurgeNotifications(mock.Anything, fixedNow.Add(-30*24*time.Hour)).
		Return(int64(5), nil)

	entries := s.Entries()
	require.Len(t, entries, 3)
	entries[2].Job.Run()
}

func TestScheduler_JobErrorsAreLogged(t *testing.T) {
	s, maintenance, _ := newTestScheduler(t, &config.SchedulerConfig{Enabled: true})

	maintenance.EXPECT().ExpireListings(mock.Anything, fixedNow).Return(0, errors.New("db down"))

	entries := s.Entries()
	require.NotEmpty(t, entries)
	assert.NotPanics(t, entries[0].Job.Run)
}

func TestScheduler_SubscriptionJob(t *testing.T) {
	s, maintenance, _ := newTestScheduler(t, &config.SchedulerConfig{Enabled: true, SubscriptionExpirySpec: "@hourly"})

	maintenance.EXPECT().ExpireSubscriptions(mock.Anything, fixedNow).Return(2, nil)

	s.Entries()[1].Job.Run()
}
