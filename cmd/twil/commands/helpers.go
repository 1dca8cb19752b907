// Package commands implements the twil CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/dialkit-io/twilio-client/pkg/restclient"
	"github.com/dialkit-io/twilio-client/pkg/twilio"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// JSON formatting.
	defaultJSONIndent = "  "
)

// Common static errors used throughout the commands package.
var (
	ErrAccountSidRequired  = errors.New("account SID is required (use --account-sid, TWIL_ACCOUNT_SID, or twil login)")
	ErrAuthTokenRequired   = errors.New("auth token is required (use --auth-token, TWIL_AUTH_TOKEN, or twil login)")
	ErrCallSidRequired     = errors.New("call SID is required")
	ErrMessageSidRequired  = errors.New("message SID is required")
	ErrToNumberRequired    = errors.New("destination number is required (--to)")
	ErrFromNumberRequired  = errors.New("origin number is required (--from)")
	ErrBodyOrMediaRequired = errors.New("message body or media URL is required")
	ErrTwiMLURLRequired    = errors.New("TwiML URL is required (--url)")
)

// createClient builds an API client from CLI configuration.
func createClient() (twilio.Client, error) {
	accountSid := viper.GetString("account_sid")
	if accountSid == "" {
		return nil, ErrAccountSidRequired
	}

	authToken := viper.GetString("auth_token")
	apiKeySid := viper.GetString("api_key_sid")
	apiKeySecret := viper.GetString("api_key_secret")

	if authToken == "" && (apiKeySid == "" || apiKeySecret == "") {
		return nil, ErrAuthTokenRequired
	}

	config := &twilio.Config{
		AccountSid:   accountSid,
		AuthToken:    authToken,
		APIKeySid:    apiKeySid,
		APIKeySecret: apiKeySecret,
		Endpoint:     viper.GetString("api"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = stderrLogger{}
	}

	client, err := restclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// renderStructured writes v as JSON or YAML depending on the output flag,
// returning false when the table format was requested instead.
func renderStructured(v interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		if err := encoder.Encode(v); err != nil {
			return true, fmt.Errorf("encoding JSON: %w", err)
		}

		return true, nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		if err := encoder.Encode(v); err != nil {
			return true, fmt.Errorf("encoding YAML: %w", err)
		}

		return true, nil
	default:
		return false, nil
	}
}

// stringOr renders an optional field, substituting a placeholder when unset.
func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}

	return *v
}

// formatTime renders a resource timestamp for table output.
func formatTime(t twilio.Time) string {
	if t.IsZero() {
		return NotAvailable
	}

	return t.Format("2006-01-02 15:04:05 MST")
}

// stderrLogger sends debug logs to stderr so structured stdout output stays
// machine-readable.
type stderrLogger struct{}

func (stderrLogger) Debug(msg string, fields map[string]interface{}) { logLine("DEBUG", msg, fields) }
func (stderrLogger) Info(msg string, fields map[string]interface{})  { logLine("INFO", msg, fields) }
func (stderrLogger) Warn(msg string, fields map[string]interface{})  { logLine("WARN", msg, fields) }
func (stderrLogger) Error(msg string, fields map[string]interface{}) { logLine("ERROR", msg, fields) }

func logLine(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s", level, msg)

	for key, value := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr)
}
