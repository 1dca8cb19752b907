package twilio

import (
	"context"
	"time"
)

// CallsClient manages voice call resources.
type CallsClient interface {
	Create(ctx context.Context, params *CallCreate) (*Call, error)
	Get(ctx context.Context, sid string) (*Call, error)
	Update(ctx context.Context, sid string, params *CallUpdate) (*Call, error)
	Delete(ctx context.Context, sid string) error
	List(ctx context.Context, opts *CallListOptions) (*CallPage, error)
	NextPage(ctx context.Context, page *CallPage) (*CallPage, error)
}

// MessagesClient manages SMS/MMS message resources.
type MessagesClient interface {
	Create(ctx context.Context, params *MessageCreate) (*Message, error)
	Get(ctx context.Context, sid string) (*Message, error)
	Delete(ctx context.Context, sid string) error
	List(ctx context.Context, opts *MessageListOptions) (*MessagePage, error)
	NextPage(ctx context.Context, page *MessagePage) (*MessagePage, error)
}

// ValidationRequestsClient starts outgoing caller ID validations.
type ValidationRequestsClient interface {
	Create(ctx context.Context, params *ValidationRequestCreate) (*ValidationRequest, error)
}

// AccountsClient manages the account and its subaccounts.
type AccountsClient interface {
	Get(ctx context.Context, sid string) (*Account, error)
	Update(ctx context.Context, sid string, params *AccountUpdate) (*Account, error)
	List(ctx context.Context, opts *AccountListOptions) (*AccountPage, error)
}

// Client provides access to all resource-specific clients.
type Client interface {
	Calls() CallsClient
	Messages() MessagesClient
	ValidationRequests() ValidationRequestsClient
	Accounts() AccountsClient

	// AccountSid returns the account the client operates on.
	AccountSid() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a twilio.Client.
//
// # Authentication
//
// AccountSid is always required; it scopes every resource path. Requests are
// authenticated with HTTP basic auth using either the account's auth token
// (AccountSid + AuthToken) or an API key (APIKeySid + APIKeySecret). When
// both are provided the API key wins.
//
// # Timeouts and retries
//
// Per-request timeouts should generally be controlled via context passed to
// client methods. Retry behavior for transient failures (>=500, 429, and
// connection errors) can be tuned via RetryMax/RetryWaitMin/RetryWaitMax;
// the result of each operation is still a single success or a single
// failure, never a partial state.
type Config struct {
	// AccountSid identifies the account all resource paths are scoped to.
	AccountSid string
	// AuthToken is the account's primary auth token.
	AuthToken string
	// APIKeySid is an API key SID used instead of the auth token.
	APIKeySid string
	// APIKeySecret is the secret paired with APIKeySid.
	APIKeySecret string

	// Endpoint overrides the API base URL. Defaults to the production API;
	// restclient.New normalizes the value by trimming a trailing slash and
	// adding "https://" if no scheme is present.
	Endpoint string

	// HTTPTimeout: optional default HTTP timeout where supported. Most
	// client calls should rely on context timeouts.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures. If 0, no
	// retries are attempted.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string
	// Cache optionally configures GET-response caching.
	Cache *CacheConfig
	// Interceptors optionally hook into every request and response, e.g. for
	// metrics collection or extra headers.
	Interceptors *InterceptorChain
}
