package client

import (
	"context"
	"fmt"

	"github.com/dialkit-io/twilio-client/internal/http"
	"github.com/dialkit-io/twilio-client/pkg/twilio"
)

// AccountsClient implements twilio.AccountsClient
type AccountsClient struct {
	httpClient *http.Client
	accountSid string
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(httpClient *http.Client, accountSid string) *AccountsClient {
	return &AccountsClient{
		httpClient: httpClient,
		accountSid: accountSid,
	}
}

// Get implements twilio.AccountsClient.Get. An empty sid fetches the
// account the client was configured with.
func (c *AccountsClient) Get(ctx context.Context, sid string) (*twilio.Account, error) {
	if sid == "" {
		sid = c.accountSid
	}

	path := fmt.Sprintf("/%s/Accounts/%s.json", twilio.APIVersion, sid)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return twilio.FromJSON[twilio.Account](resp.Body)
}

// Update implements twilio.AccountsClient.Update
func (c *AccountsClient) Update(ctx context.Context, sid string, params *twilio.AccountUpdate) (*twilio.Account, error) {
	if sid == "" {
		sid = c.accountSid
	}

	path := fmt.Sprintf("/%s/Accounts/%s.json", twilio.APIVersion, sid)

	resp, err := c.httpClient.PostForm(ctx, path, params.Values())
	if err != nil {
		return nil, fmt.Errorf("updating account: %w", err)
	}

	return twilio.FromJSON[twilio.Account](resp.Body)
}

// List implements twilio.AccountsClient.List. The listing covers the
// account itself and its subaccounts.
func (c *AccountsClient) List(ctx context.Context, opts *twilio.AccountListOptions) (*twilio.AccountPage, error) {
	path := fmt.Sprintf("/%s/Accounts.json", twilio.APIVersion)

	resp, err := c.httpClient.Get(ctx, path, opts.Values())
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	return twilio.FromJSON[twilio.AccountPage](resp.Body)
}
