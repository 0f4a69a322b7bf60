package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultPageSize           = 20
	defaultMaxPageSize        = 100
	defaultMaxImages          = 20
	defaultExpiryDays         = 60
	defaultMaxImageBytes      = 8 << 20
	defaultMessageMaxLength   = 4000
	defaultJWTAudience        = "authenticated"
	defaultWorkerPort         = 8081
	defaultPushBatchSize      = 500
	defaultSlowQuery          = 200 * time.Millisecond
	defaultPoolMonitor        = 5 * time.Second
	defaultPoolWaitWarn       = 50 * time.Millisecond
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database tunes query logging and pool monitoring on top of the Postgres connection
	Database *DatabaseConfig `json:"database" yaml:"database"`

	// Supabase project used for auth passthrough and image storage
	Supabase *SupabaseConfig `json:"supabase" yaml:"supabase"`

	// Storage selects where listing images are kept
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Listing rules for vehicles
	Listing *ListingConfig `json:"listing" yaml:"listing"`

	// Messaging limits for buyer and seller chat
	Messaging *MessagingConfig `json:"messaging" yaml:"messaging"`

	// Payments configuration for checkout and webhooks
	Payments *PaymentsConfig `json:"payments" yaml:"payments"`

	// Plans are the purchasable seller plans
	Plans []PlanConfig `json:"plans" yaml:"plans"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for listing share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Scheduler configuration for maintenance jobs
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// Telegram configuration for admin alerts
	Telegram *TelegramConfig `json:"telegram" yaml:"telegram"`

	// Worker configuration for the push delivery process
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool    `json:"pretty" yaml:"pretty"`
	Level  string  `json:"level" yaml:"level"`
	File   LogFile `json:"file" yaml:"file"`
}

// LogFile configures an optional rotating log file next to stdout
type LogFile struct {
	Path       string `json:"path" yaml:"path"`
	MaxSizeMB  int    `json:"maxSizeMB" yaml:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

// DatabaseConfig defines query logging and pool monitoring thresholds
type DatabaseConfig struct {
	// SlowQueryThreshold logs queries slower than this at warn level; negative disables it
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	// LogQueries logs every statement at info level even outside debug mode
	LogQueries bool `json:"logQueries" yaml:"logQueries"`

	PoolMonitorInterval time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
	PoolWaitWarn        time.Duration `json:"poolWaitWarn" yaml:"poolWaitWarn"`
}

// SupabaseConfig defines the Supabase project connection
type SupabaseConfig struct {
	URL            string `json:"url" yaml:"url"`
	AnonKey        string `json:"anonKey" yaml:"anonKey"`
	ServiceRoleKey string `json:"serviceRoleKey" yaml:"serviceRoleKey"`
	// JWTSecret is the project's HS256 signing secret for access tokens
	JWTSecret     string `json:"jwtSecret" yaml:"jwtSecret"`
	JWTAudience   string `json:"jwtAudience" yaml:"jwtAudience"`
	StorageBucket string `json:"storageBucket" yaml:"storageBucket"`
}

// StorageConfig defines object storage for images
type StorageConfig struct {
	// Provider is "supabase" or "blob"
	Provider string `json:"provider" yaml:"provider"`

	// BucketURL is a gocloud.dev bucket URL for the blob provider (file:///..., gs://..., mem://)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL prefixes object keys to build public URLs for the blob provider
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	MaxImageBytes int64 `json:"maxImageBytes" yaml:"maxImageBytes"`
}

// ListingConfig defines listing rules
type ListingConfig struct {
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize     int `json:"maxPageSize" yaml:"maxPageSize"`
	MaxImages       int `json:"maxImages" yaml:"maxImages"`
	ExpiryDays      int `json:"expiryDays" yaml:"expiryDays"`
	FeaturedDays    int `json:"featuredDays" yaml:"featuredDays"`
	// FreeListingLimit applies to sellers without a current plan; 0 means unlimited
	FreeListingLimit int `json:"freeListingLimit" yaml:"freeListingLimit"`
}

// MessagingConfig defines chat limits
type MessagingConfig struct {
	RatePerSecond float64 `json:"ratePerSecond" yaml:"ratePerSecond"`
	Burst         int     `json:"burst" yaml:"burst"`
	MaxLength     int     `json:"maxLength" yaml:"maxLength"`
}

// PaymentsConfig defines payment provider settings
type PaymentsConfig struct {
	Currency string         `json:"currency" yaml:"currency"`
	Stripe   StripeConfig   `json:"stripe" yaml:"stripe"`
	Paystack PaystackConfig `json:"paystack" yaml:"paystack"`
}

// StripeConfig defines Stripe webhook verification
type StripeConfig struct {
	WebhookSecret string        `json:"webhookSecret" yaml:"webhookSecret"`
	Tolerance     time.Duration `json:"tolerance" yaml:"tolerance"`
}

// PaystackConfig defines Paystack webhook verification
type PaystackConfig struct {
	SecretKey string `json:"secretKey" yaml:"secretKey"`
}

// PlanConfig defines one seller plan
type PlanConfig struct {
	Code         string `json:"code" yaml:"code"`
	Name         string `json:"name" yaml:"name"`
	PriceMinor   int64  `json:"priceMinor" yaml:"priceMinor"`
	ListingLimit int    `json:"listingLimit" yaml:"listingLimit"`
	PeriodDays   int    `json:"periodDays" yaml:"periodDays"`
	Featured     bool   `json:"featured" yaml:"featured"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// SchedulerConfig defines cron specs for maintenance jobs
type SchedulerConfig struct {
	Enabled                   bool   `json:"enabled" yaml:"enabled"`
	ListingExpirySpec         string `json:"listingExpirySpec" yaml:"listingExpirySpec"`
	SubscriptionExpirySpec    string `json:"subscriptionExpirySpec" yaml:"subscriptionExpirySpec"`
	NotificationPurgeSpec     string `json:"notificationPurgeSpec" yaml:"notificationPurgeSpec"`
	NotificationRetentionDays int    `json:"notificationRetentionDays" yaml:"notificationRetentionDays"`
}

// TelegramConfig defines the admin alert bot
type TelegramConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	Token       string `json:"token" yaml:"token"`
	AdminChatID int64  `json:"adminChatId" yaml:"adminChatId"`
}

// WorkerConfig defines the push worker HTTP endpoint
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// PushAudience is the expected audience of Pub/Sub push tokens; empty derives it from the request URL
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// BatchSize caps tokens per FCM multicast call
	BatchSize int `json:"batchSize" yaml:"batchSize"`
}

// PlanByCode returns the configured plan with the given code.
func (c *Config) PlanByCode(code string) (PlanConfig, bool) {
	for _, plan := range c.Plans {
		if plan.Code == code {
			return plan, true
		}
	}

	return PlanConfig{}, false
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	if err := loadDotEnv(".env", "../.env", "../../.env"); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// loadDotEnv loads the first .env file found. Variables already set in the environment win.
func loadDotEnv(candidates ...string) error {
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}

		return errors.Wrapf(godotenv.Load(candidate), "load %s", candidate)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Database == nil {
		c.Database = &DatabaseConfig{}
	}
	if c.Database.SlowQueryThreshold == 0 {
		c.Database.SlowQueryThreshold = defaultSlowQuery
	}
	if c.Database.PoolMonitorInterval <= 0 {
		c.Database.PoolMonitorInterval = defaultPoolMonitor
	}
	if c.Database.PoolWaitWarn <= 0 {
		c.Database.PoolWaitWarn = defaultPoolWaitWarn
	}

	if c.Supabase == nil {
		c.Supabase = &SupabaseConfig{}
	}
	if c.Supabase.JWTAudience == "" {
		c.Supabase.JWTAudience = defaultJWTAudience
	}

	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if c.Storage.MaxImageBytes <= 0 {
		c.Storage.MaxImageBytes = defaultMaxImageBytes
	}

	if c.Listing == nil {
		c.Listing = &ListingConfig{}
	}
	if c.Listing.DefaultPageSize <= 0 {
		c.Listing.DefaultPageSize = defaultPageSize
	}
	if c.Listing.MaxPageSize <= 0 {
		c.Listing.MaxPageSize = defaultMaxPageSize
	}
	if c.Listing.MaxImages <= 0 {
		c.Listing.MaxImages = defaultMaxImages
	}
	if c.Listing.ExpiryDays <= 0 {
		c.Listing.ExpiryDays = defaultExpiryDays
	}

	if c.Messaging == nil {
		c.Messaging = &MessagingConfig{}
	}
	if c.Messaging.MaxLength <= 0 {
		c.Messaging.MaxLength = defaultMessageMaxLength
	}
	if c.Messaging.RatePerSecond <= 0 {
		c.Messaging.RatePerSecond = 1
	}
	if c.Messaging.Burst <= 0 {
		c.Messaging.Burst = 5
	}

	if c.Payments == nil {
		c.Payments = &PaymentsConfig{}
	}
	if c.Payments.Currency == "" {
		c.Payments.Currency = "USD"
	}

	if c.Scheduler == nil {
		c.Scheduler = &SchedulerConfig{}
	}
	if c.Scheduler.NotificationRetentionDays <= 0 {
		c.Scheduler.NotificationRetentionDays = 90
	}

	if c.Worker == nil {
		c.Worker = &WorkerConfig{}
	}
	if c.Worker.Port <= 0 {
		c.Worker.Port = defaultWorkerPort
	}
	if c.Worker.BatchSize <= 0 || c.Worker.BatchSize > defaultPushBatchSize {
		c.Worker.BatchSize = defaultPushBatchSize
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
