package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultUserAgent identifies the client on the wire.
	DefaultUserAgent = "twilio-client/1.0"

	// DefaultEndpoint is the production API endpoint.
	DefaultEndpoint = "https://api.twilio.com"

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents the expected success response for most operations.
	HTTPStatusOK = 200

	// HTTPStatusCreated is returned by some create operations.
	HTTPStatusCreated = 201

	// HTTPStatusNoContent is returned by delete operations.
	HTTPStatusNoContent = 204
)

// Pagination limits.
const (
	// DefaultPageSize is the page size the API uses when none is requested.
	DefaultPageSize = 50

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 1000

	// MaxPages bounds page-following loops.
	MaxPages = 50
)

// Cache sizing.
const (
	// DefaultCacheSize is the default cache entry limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default cache time-to-live.
	DefaultCacheTTL = 5 * time.Minute

	// MaxCacheValueSize is the maximum size for cached values (1MB).
	MaxCacheValueSize = 1024 * 1024
)

// Display and output constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// SID prefixes used by the API's opaque identifiers.
const (
	// AccountSidPrefix starts every account SID.
	AccountSidPrefix = "AC"

	// CallSidPrefix starts every call SID.
	CallSidPrefix = "CA"

	// MessageSidPrefix starts every message SID.
	MessageSidPrefix = "SM"

	// APIKeySidPrefix starts every API key SID.
	APIKeySidPrefix = "SK"

	// SidLength is the length of every SID.
	SidLength = 34
)
