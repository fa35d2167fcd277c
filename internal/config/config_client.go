package config

import (
	"fmt"
	"time"
)

// ClientAPI holds network settings used by the client transport layer.
type ClientAPI struct {
	// BaseURL is the backend API root used by the dispatcher.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// CSRFCookieName is the cookie the anti-forgery token is read from.
	CSRFCookieName string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientAssistant groups support-assistant settings.
type ClientAssistant struct {
	// APIKey authenticates against the model provider; empty disables
	// the LLM fallback.
	APIKey string
	// Model is the model identifier.
	Model string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Version is the client application version.
	Version string
	// API contains transport address and timeout settings.
	API ClientAPI
	// Storage contains client storage settings.
	Storage ClientStorage
	// Assistant contains support-chat LLM settings.
	Assistant ClientAssistant

	// Args is the command line left over after configuration flags,
	// handed to the command tree.
	Args []string
}

// Defaults applied when neither env, flags, nor JSON provide a value.
const (
	defaultRequestTimeout = 30 * time.Second
	defaultCSRFCookieName = "csrftoken"
	defaultAssistantModel = "gemini-2.0-flash"
)

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Version: cfg.App.Version,
		API: ClientAPI{
			BaseURL:        cfg.API.BaseURL,
			RequestTimeout: cfg.API.RequestTimeout,
			CSRFCookieName: cfg.API.CSRFCookieName,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Assistant: ClientAssistant{
			APIKey: cfg.Assistant.APIKey,
			Model:  cfg.Assistant.Model,
		},
		Args: cfg.Args,
	}

	if clientCfg.API.RequestTimeout == 0 {
		clientCfg.API.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.API.CSRFCookieName == "" {
		clientCfg.API.CSRFCookieName = defaultCSRFCookieName
	}
	if clientCfg.Assistant.Model == "" {
		clientCfg.Assistant.Model = defaultAssistantModel
	}

	return clientCfg, clientCfg.validate()
}
