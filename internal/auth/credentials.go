// Package auth provides request credential providers. The API authenticates
// every request with HTTP basic auth, using either the account's auth token
// or an API key pair.
package auth

import (
	"net/http"
)

// Credentials applies authentication to an outgoing request.
type Credentials interface {
	// Apply sets the request's authorization.
	Apply(req *http.Request)

	// Username returns the basic-auth username, for logging.
	Username() string
}

// basicCredentials authenticates with a fixed username/password pair.
type basicCredentials struct {
	username string
	password string
}

// NewAuthToken creates credentials from an account SID and its auth token.
func NewAuthToken(accountSid, authToken string) Credentials {
	return &basicCredentials{username: accountSid, password: authToken}
}

// NewAPIKey creates credentials from an API key SID and secret. API keys can
// be revoked individually and are preferred over the account auth token for
// production use.
func NewAPIKey(keySid, secret string) Credentials {
	return &basicCredentials{username: keySid, password: secret}
}

// Apply sets basic auth on the request.
func (c *basicCredentials) Apply(req *http.Request) {
	req.SetBasicAuth(c.username, c.password)
}

// Username returns the basic-auth username.
func (c *basicCredentials) Username() string {
	return c.username
}
