package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"supabase": map[string]any{
			"jwtSecret":      "",
			"serviceRoleKey": "",
		},
		"payments": map[string]any{
			"stripe": map[string]any{
				"webhookSecret": "",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SUPABASE_JWTSECRET", want: "supabase.jwtSecret"},
		{envKey: "SUPABASE_SERVICEROLEKEY", want: "supabase.serviceRoleKey"},
		{envKey: "PAYMENTS_STRIPE_WEBHOOKSECRET", want: "payments.stripe.webhookSecret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultJWTAudience, cfg.Supabase.JWTAudience)
	assert.Equal(t, int64(defaultMaxImageBytes), cfg.Storage.MaxImageBytes)
	assert.Equal(t, defaultPageSize, cfg.Listing.DefaultPageSize)
	assert.Equal(t, defaultMaxPageSize, cfg.Listing.MaxPageSize)
	assert.Equal(t, defaultExpiryDays, cfg.Listing.ExpiryDays)
	assert.Equal(t, defaultMessageMaxLength, cfg.Messaging.MaxLength)
	assert.Equal(t, "USD", cfg.Payments.Currency)
	assert.Equal(t, 90, cfg.Scheduler.NotificationRetentionDays)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
	assert.Equal(t, defaultPushBatchSize, cfg.Worker.BatchSize)
	assert.Equal(t, defaultSlowQuery, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, defaultPoolMonitor, cfg.Database.PoolMonitorInterval)
	assert.Equal(t, defaultPoolWaitWarn, cfg.Database.PoolWaitWarn)
}

func TestApplyDefaults_DatabaseThresholds(t *testing.T) {
	cfg := &Config{Database: &DatabaseConfig{SlowQueryThreshold: -1, PoolWaitWarn: time.Second}}
	cfg.applyDefaults()

	assert.Equal(t, time.Duration(-1), cfg.Database.SlowQueryThreshold, "negative disables slow query logging")
	assert.Equal(t, time.Second, cfg.Database.PoolWaitWarn)
	assert.Equal(t, defaultPoolMonitor, cfg.Database.PoolMonitorInterval)
}

func TestApplyDefaults_CapsPushBatchSize(t *testing.T) {
	cfg := &Config{Worker: &WorkerConfig{Port: 9000, BatchSize: 2000}}
	cfg.applyDefaults()

	assert.Equal(t, 9000, cfg.Worker.Port)
	assert.Equal(t, defaultPushBatchSize, cfg.Worker.BatchSize)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Listing:   &ListingConfig{DefaultPageSize: 12, MaxPageSize: 48, MaxImages: 5, ExpiryDays: 30},
		Messaging: &MessagingConfig{RatePerSecond: 2, Burst: 10, MaxLength: 500},
	}
	cfg.applyDefaults()

	assert.Equal(t, 12, cfg.Listing.DefaultPageSize)
	assert.Equal(t, 48, cfg.Listing.MaxPageSize)
	assert.Equal(t, 5, cfg.Listing.MaxImages)
	assert.Equal(t, 30, cfg.Listing.ExpiryDays)
	assert.InDelta(t, 2.0, cfg.Messaging.RatePerSecond, 0.0001)
	assert.Equal(t, 10, cfg.Messaging.Burst)
	assert.Equal(t, 500, cfg.Messaging.MaxLength)
}

func TestPlanByCode(t *testing.T) {
	cfg := &Config{Plans: []PlanConfig{
		{Code: "basic", ListingLimit: 10},
		{Code: "pro", ListingLimit: 50},
	}}

	plan, ok := cfg.PlanByCode("pro")
	require.True(t, ok)
	assert.Equal(t, 50, plan.ListingLimit)

	_, ok = cfg.PlanByCode("enterprise")
	assert.False(t, ok)
}

func TestLoadDotEnv_DoesNotOverrideExistingEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DCARS_DOTENV_NEW=from-file\nDCARS_DOTENV_SET=from-file\n"), 0o600))

	t.Setenv("DCARS_DOTENV_SET", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("DCARS_DOTENV_NEW") })

	require.NoError(t, loadDotEnv(filepath.Join(dir, "missing.env"), path))

	assert.Equal(t, "from-file", os.Getenv("DCARS_DOTENV_NEW"))
	assert.Equal(t, "from-env", os.Getenv("DCARS_DOTENV_SET"))
}
