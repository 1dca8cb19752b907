package client

import (
	"context"
	"fmt"

	"github.com/dialkit-io/twilio-client/internal/http"
	"github.com/dialkit-io/twilio-client/pkg/twilio"
)

// ValidationRequestsClient implements twilio.ValidationRequestsClient
type ValidationRequestsClient struct {
	httpClient *http.Client
	accountSid string
}

// NewValidationRequestsClient creates a new outgoing caller ID validation client.
func NewValidationRequestsClient(httpClient *http.Client, accountSid string) *ValidationRequestsClient {
	return &ValidationRequestsClient{
		httpClient: httpClient,
		accountSid: accountSid,
	}
}

// Create implements twilio.ValidationRequestsClient.Create. It starts a
// verification call to the given phone number; the returned resource
// carries the code the user must enter on that call.
func (c *ValidationRequestsClient) Create(ctx context.Context, params *twilio.ValidationRequestCreate) (*twilio.ValidationRequest, error) {
	if params == nil || params.PhoneNumber == "" {
		return nil, twilio.ErrPhoneNumberRequired
	}

	path := fmt.Sprintf("/%s/Accounts/%s/OutgoingCallerIds.json", twilio.APIVersion, c.accountSid)

	resp, err := c.httpClient.PostForm(ctx, path, params.Values())
	if err != nil {
		return nil, fmt.Errorf("creating validation request: %w", err)
	}

	return twilio.FromJSON[twilio.ValidationRequest](resp.Body)
}
