package client

import (
	"context"
	"fmt"

	"github.com/dialkit-io/twilio-client/internal/http"
	"github.com/dialkit-io/twilio-client/pkg/twilio"
)

// CallsClient implements twilio.CallsClient
type CallsClient struct {
	httpClient *http.Client
	accountSid string
}

// NewCallsClient creates a new calls client scoped to the given account.
func NewCallsClient(httpClient *http.Client, accountSid string) *CallsClient {
	return &CallsClient{
		httpClient: httpClient,
		accountSid: accountSid,
	}
}

// Create implements twilio.CallsClient.Create
func (c *CallsClient) Create(ctx context.Context, params *twilio.CallCreate) (*twilio.Call, error) {
	resp, err := c.httpClient.PostForm(ctx, accountPath(c.accountSid, "Calls", ""), params.Values())
	if err != nil {
		return nil, fmt.Errorf("creating call: %w", err)
	}

	return twilio.FromJSON[twilio.Call](resp.Body)
}

// Get implements twilio.CallsClient.Get
func (c *CallsClient) Get(ctx context.Context, sid string) (*twilio.Call, error) {
	resp, err := c.httpClient.Get(ctx, accountPath(c.accountSid, "Calls", sid), nil)
	if err != nil {
		return nil, fmt.Errorf("getting call: %w", err)
	}

	return twilio.FromJSON[twilio.Call](resp.Body)
}

// Update implements twilio.CallsClient.Update. An in-progress call can be
// redirected to new TwiML or torn down by posting a status of "completed".
func (c *CallsClient) Update(ctx context.Context, sid string, params *twilio.CallUpdate) (*twilio.Call, error) {
	resp, err := c.httpClient.PostForm(ctx, accountPath(c.accountSid, "Calls", sid), params.Values())
	if err != nil {
		return nil, fmt.Errorf("updating call: %w", err)
	}

	return twilio.FromJSON[twilio.Call](resp.Body)
}

// Delete implements twilio.CallsClient.Delete
func (c *CallsClient) Delete(ctx context.Context, sid string) error {
	_, err := c.httpClient.Delete(ctx, accountPath(c.accountSid, "Calls", sid))
	if err != nil {
		return fmt.Errorf("deleting call: %w", err)
	}

	return nil
}

// List implements twilio.CallsClient.List
func (c *CallsClient) List(ctx context.Context, opts *twilio.CallListOptions) (*twilio.CallPage, error) {
	resp, err := c.httpClient.Get(ctx, accountPath(c.accountSid, "Calls", ""), opts.Values())
	if err != nil {
		return nil, fmt.Errorf("listing calls: %w", err)
	}

	return twilio.FromJSON[twilio.CallPage](resp.Body)
}

// NextPage implements twilio.CallsClient.NextPage
func (c *CallsClient) NextPage(ctx context.Context, page *twilio.CallPage) (*twilio.CallPage, error) {
	if page == nil || !page.HasNextPage() {
		return nil, twilio.ErrNoNextPage
	}

	resp, err := c.httpClient.GetURL(ctx, *page.NextPageURI)
	if err != nil {
		return nil, fmt.Errorf("fetching next calls page: %w", err)
	}

	return twilio.FromJSON[twilio.CallPage](resp.Body)
}
