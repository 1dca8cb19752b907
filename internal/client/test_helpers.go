package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialkit-io/twilio-client/internal/auth"
	internalhttp "github.com/dialkit-io/twilio-client/internal/http"
)

const testAccountSid = "ACdeadbeefdeadbeefdeadbeefdeadbeef"

// NewTestClient creates a client pointed at a test server.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, auth.NewAuthToken(testAccountSid, "secret"))

	client := &Client{
		httpClient: httpClient,
		accountSid: testAccountSid,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// TestCreateOperation represents a generic form-posting operation test case.
// WantForm lists form fields the request body must carry; AbsentForm lists
// fields that must not appear at all.
type TestCreateOperation[TResponse any] struct {
	Name         string
	ExpectedPath string
	WantForm     url.Values
	AbsentForm   []string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	Sid          string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
}

// RunCreateTests runs a series of form-posting operation tests.
func RunCreateTests[TResponse any](
	t *testing.T,
	tests []TestCreateOperation[TResponse],
	createFunc func(*Client) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodPost, request.Method)

				require.NoError(t, request.ParseForm())

				for field, want := range testCase.WantForm {
					assert.Equal(t, want, request.PostForm[field], "form field %s", field)
				}

				for _, field := range testCase.AbsentForm {
					_, present := request.PostForm[field]
					assert.False(t, present, "form field %s should be absent", field)
				}

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			result, err := createFunc(client)
			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, result)
		})
	}
}

// RunGetTests runs a series of get operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client, context.Context, string) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			result, err := getFunc(client, context.Background(), testCase.Sid)
			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, result)
		})
	}
}

// errorResponse builds the standard error payload the API returns.
func errorResponse(message string, code, status int) map[string]interface{} {
	return map[string]interface{}{
		"message":   message,
		"code":      code,
		"more_info": fmt.Sprintf("https://www.twilio.com/docs/errors/%d", code),
		"status":    status,
	}
}
