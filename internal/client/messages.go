package client

import (
	"context"
	"fmt"

	"github.com/dialkit-io/twilio-client/internal/http"
	"github.com/dialkit-io/twilio-client/pkg/twilio"
)

// MessagesClient implements twilio.MessagesClient
type MessagesClient struct {
	httpClient *http.Client
	accountSid string
}

// NewMessagesClient creates a new messages client scoped to the given account.
func NewMessagesClient(httpClient *http.Client, accountSid string) *MessagesClient {
	return &MessagesClient{
		httpClient: httpClient,
		accountSid: accountSid,
	}
}

// Create implements twilio.MessagesClient.Create
func (c *MessagesClient) Create(ctx context.Context, params *twilio.MessageCreate) (*twilio.Message, error) {
	resp, err := c.httpClient.PostForm(ctx, accountPath(c.accountSid, "Messages", ""), params.Values())
	if err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	return twilio.FromJSON[twilio.Message](resp.Body)
}

// Get implements twilio.MessagesClient.Get
func (c *MessagesClient) Get(ctx context.Context, sid string) (*twilio.Message, error) {
	resp, err := c.httpClient.Get(ctx, accountPath(c.accountSid, "Messages", sid), nil)
	if err != nil {
		return nil, fmt.Errorf("getting message: %w", err)
	}

	return twilio.FromJSON[twilio.Message](resp.Body)
}

// Delete implements twilio.MessagesClient.Delete
func (c *MessagesClient) Delete(ctx context.Context, sid string) error {
	_, err := c.httpClient.Delete(ctx, accountPath(c.accountSid, "Messages", sid))
	if err != nil {
		return fmt.Errorf("deleting message: %w", err)
	}

	return nil
}

// List implements twilio.MessagesClient.List
func (c *MessagesClient) List(ctx context.Context, opts *twilio.MessageListOptions) (*twilio.MessagePage, error) {
	resp, err := c.httpClient.Get(ctx, accountPath(c.accountSid, "Messages", ""), opts.Values())
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	return twilio.FromJSON[twilio.MessagePage](resp.Body)
}

// NextPage implements twilio.MessagesClient.NextPage
func (c *MessagesClient) NextPage(ctx context.Context, page *twilio.MessagePage) (*twilio.MessagePage, error) {
	if page == nil || !page.HasNextPage() {
		return nil, twilio.ErrNoNextPage
	}

	resp, err := c.httpClient.GetURL(ctx, *page.NextPageURI)
	if err != nil {
		return nil, fmt.Errorf("fetching next messages page: %w", err)
	}

	return twilio.FromJSON[twilio.MessagePage](resp.Body)
}
