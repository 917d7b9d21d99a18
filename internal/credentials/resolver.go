// Package credentials resolves provider API keys from configuration.
package credentials

import (
	"os"
	"strings"

	"ai-media-gateway-service/internal/config"
)

// Resolver maps a provider name to a usable credential. Absence of a
// credential is an expected outcome, not an error: the gateway reports it
// as an operator-configuration gap, distinct from a transport failure.
type Resolver interface {
	// APIKey returns the credential for the provider, and whether one is
	// configured.
	APIKey(provider string) (string, bool)
}

// ConfigResolver resolves credentials from the loaded config snapshot.
type ConfigResolver struct {
	cfg *config.Config
}

// NewResolver creates a resolver over the given configuration.
func NewResolver(cfg *config.Config) *ConfigResolver {
	return &ConfigResolver{cfg: cfg}
}

// APIKey resolves the credential for one provider.
//
// The Google client authenticates ambiently through a service account
// file, so its "credential" is the presence of that file path. The mock
// provider needs none and is always configured.
func (r *ConfigResolver) APIKey(provider string) (string, bool) {
	switch strings.ToLower(provider) {
	case "openai":
		key := strings.TrimSpace(r.cfg.STT.OpenAIAPIKey)
		return key, key != ""
	case "google":
		path := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		return "", path != ""
	case "mock":
		return "", true
	default:
		return "", false
	}
}
