package ihealth

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
)

// Defaults for the production iHealth endpoints.
const (
	DefaultBaseURL  = "https://ihealth2-api.f5.com/qkview-analyzer/api"
	DefaultTokenURL = "https://identity.account.f5.com/oauth2/ausp95ykc80HOU7SQ357/v1/token"
)

// Environment variables holding the API credentials.
const (
	EnvClientID     = "F5_IHEALTH_CLIENT_ID"
	EnvClientSecret = "F5_IHEALTH_CLIENT_SECRET"
)

// Config carries everything the iHealth client needs. Credentials always
// come from the environment; the optional YAML file can point the client at
// a different API deployment.
type Config struct {
	ClientID     string `yaml:"-"`
	ClientSecret string `yaml:"-"`

	BaseURL  string `yaml:"base_url"`
	TokenURL string `yaml:"token_url"`
}

// LoadConfig builds a Config from the environment, loading an optional
// .env file first. path optionally names a YAML file overriding the
// endpoint URLs. Missing credentials are a fatal configuration error:
// without them no token can ever be obtained.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:  DefaultBaseURL,
		TokenURL: DefaultTokenURL,
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, api.NewError(api.KindConfiguration, 0, "read config file: %v", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, api.NewError(api.KindConfiguration, 0, "parse config file %s: %v", path, err)
		}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}

	cfg.ClientID = os.Getenv(EnvClientID)
	cfg.ClientSecret = os.Getenv(EnvClientSecret)
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, api.NewError(api.KindConfiguration, 0,
			"%s and %s environment variables are required", EnvClientID, EnvClientSecret)
	}

	return cfg, nil
}
