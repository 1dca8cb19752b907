// Package client implements the twilio.Client interface over the HTTP transport.
package client

import (
	"fmt"

	"github.com/dialkit-io/twilio-client/internal/auth"
	"github.com/dialkit-io/twilio-client/internal/constants"
	"github.com/dialkit-io/twilio-client/internal/http"
	"github.com/dialkit-io/twilio-client/pkg/twilio"
)

// Client implements the twilio.Client interface.
type Client struct {
	httpClient *http.Client
	accountSid string
	baseURL    string
	logger     twilio.Logger

	// Resource clients
	calls              twilio.CallsClient
	messages           twilio.MessagesClient
	validationRequests twilio.ValidationRequestsClient
	accounts           twilio.AccountsClient
}

// New creates a new API client from the given config. The config must
// carry an account SID and either an auth token or an API key pair.
func New(config *twilio.Config) (*Client, error) {
	if config == nil {
		return nil, twilio.ErrConfigRequired
	}

	if config.AccountSid == "" {
		return nil, twilio.ErrAccountSidRequired
	}

	credentials, err := createCredentials(config)
	if err != nil {
		return nil, err
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultEndpoint
	}

	options, err := buildTransportOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(endpoint, credentials, options...)

	client := &Client{
		httpClient: httpClient,
		accountSid: config.AccountSid,
		baseURL:    endpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// createCredentials selects the credential provider based on config.
// An API key pair takes precedence over the account auth token.
func createCredentials(config *twilio.Config) (auth.Credentials, error) {
	if config.APIKeySid != "" && config.APIKeySecret != "" {
		return auth.NewAPIKey(config.APIKeySid, config.APIKeySecret), nil
	}

	if config.AuthToken != "" {
		return auth.NewAuthToken(config.AccountSid, config.AuthToken), nil
	}

	return nil, twilio.ErrAuthTokenRequired
}

func buildTransportOptions(config *twilio.Config) ([]http.Option, error) {
	var options []http.Option

	if config.Logger != nil {
		options = append(options, http.WithLogger(config.Logger))
	}

	if config.Debug {
		options = append(options, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		options = append(options, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		options = append(options, http.WithTimeout(config.HTTPTimeout))
	}

	// RetryMax 0 disables retries, so the config value is always applied.
	waitMin := config.RetryWaitMin
	if waitMin == 0 {
		waitMin = constants.DefaultRetryWaitMin
	}

	waitMax := config.RetryWaitMax
	if waitMax == 0 {
		waitMax = constants.DefaultRetryWaitMax
	}

	options = append(options, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))

	if config.Interceptors != nil {
		options = append(options, http.WithInterceptors(config.Interceptors))
	}

	if config.Cache != nil {
		cache, err := twilio.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("creating cache: %w", err)
		}

		ttl := constants.DefaultCacheTTL
		if config.Cache.Options != nil && config.Cache.Options.DefaultTTL > 0 {
			ttl = config.Cache.Options.DefaultTTL
		}

		options = append(options, http.WithCache(cache, ttl))
	}

	return options, nil
}

// initializeResourceClients wires up the per-resource clients.
func (c *Client) initializeResourceClients() {
	c.calls = NewCallsClient(c.httpClient, c.accountSid)
	c.messages = NewMessagesClient(c.httpClient, c.accountSid)
	c.validationRequests = NewValidationRequestsClient(c.httpClient, c.accountSid)
	c.accounts = NewAccountsClient(c.httpClient, c.accountSid)
}

// Calls returns the calls resource client.
func (c *Client) Calls() twilio.CallsClient {
	return c.calls
}

// Messages returns the messages resource client.
func (c *Client) Messages() twilio.MessagesClient {
	return c.messages
}

// ValidationRequests returns the outgoing caller ID validation client.
func (c *Client) ValidationRequests() twilio.ValidationRequestsClient {
	return c.validationRequests
}

// Accounts returns the accounts resource client.
func (c *Client) Accounts() twilio.AccountsClient {
	return c.accounts
}

// AccountSid returns the account SID requests are scoped to.
func (c *Client) AccountSid() string {
	return c.accountSid
}

// accountPath builds a path under an account subtree, e.g.
// accountPath(accountSid, "Calls", "CA123") ->
// /2010-04-01/Accounts/AC.../Calls/CA123.json
func accountPath(accountSid, resource, sid string) string {
	if sid == "" {
		return fmt.Sprintf("/%s/Accounts/%s/%s.json", twilio.APIVersion, accountSid, resource)
	}

	return fmt.Sprintf("/%s/Accounts/%s/%s/%s.json", twilio.APIVersion, accountSid, resource, sid)
}
