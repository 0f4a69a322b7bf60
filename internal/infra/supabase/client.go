// Package supabase adapts the hosted Supabase project (auth and storage) to domain services.
package supabase

import (
	"log/slog"

	"dcars/config"
	"dcars/internal/errors"

	"github.com/supabase-community/gotrue-go"
	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/fx"
)

// ClientParams holds dependencies for the Supabase client, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates a Supabase client authenticated with the service role key.
// The anon key is used when no service role key is configured.
func NewClient(params ClientParams) (*supa.Client, error) {
	cfg := params.Config.Supabase
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("supabase url is required")
	}

	key := cfg.ServiceRoleKey
	if key == "" {
		key = cfg.AnonKey
	}

	client, err := supa.NewClient(cfg.URL, key, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create supabase client")
	}

	params.Logger.Info("Supabase client initialized", slog.String("url", cfg.URL))

	return client, nil
}

// NewAuthClient exposes the client's GoTrue API.
func NewAuthClient(client *supa.Client) gotrue.Client {
	return client.Auth
}

// Module provides the Supabase FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewClient, NewAuthClient, NewIdentityProvider),
)
