// Package constants collects string identifiers shared between config, infra and delivery.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderNone   = "none"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Image storage providers.
const (
	StorageProviderSupabase = "supabase"
	StorageProviderBlob     = "blob"
)

// Payment webhook headers.
const (
	HeaderStripeSignature   = "Stripe-Signature"
	HeaderPaystackSignature = "X-Paystack-Signature"
)
