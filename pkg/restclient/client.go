package restclient

import (
	"fmt"
	"strings"

	"github.com/dialkit-io/twilio-client/internal/client"
	"github.com/dialkit-io/twilio-client/pkg/twilio"
)

// New creates a new API client from the given config. The endpoint is
// normalized: a trailing slash is trimmed and "https://" is added when no
// scheme is present. An empty endpoint selects the production API.
func New(config *twilio.Config) (twilio.Client, error) {
	if config == nil {
		return nil, twilio.ErrConfigRequired
	}

	if config.Endpoint != "" {
		endpoint := strings.TrimSuffix(config.Endpoint, "/")
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}

		config.Endpoint = endpoint
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return apiClient, nil
}

// NewWithAuthToken creates a client authenticated with the account's auth token.
func NewWithAuthToken(accountSid, authToken string) (twilio.Client, error) {
	return New(&twilio.Config{
		AccountSid: accountSid,
		AuthToken:  authToken,
	})
}

// NewWithAPIKey creates a client authenticated with an API key pair. The
// account SID still scopes the resource paths.
func NewWithAPIKey(accountSid, apiKeySid, apiKeySecret string) (twilio.Client, error) {
	return New(&twilio.Config{
		AccountSid:   accountSid,
		APIKeySid:    apiKeySid,
		APIKeySecret: apiKeySecret,
	})
}
