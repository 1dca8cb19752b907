package twilio

import (
	"encoding/json"
	"fmt"
	"time"
)

// APIVersion is the version prefix for all resource paths.
const APIVersion = "2010-04-01"

// TimeFormat is the date format used by the API in JSON payloads.
const TimeFormat = time.RFC1123Z

// Time wraps time.Time to (un)marshal the API's RFC 1123 date format.
// A null or empty wire value leaves the zero time.
type Time struct {
	time.Time
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	data, err := json.Marshal(t.Format(TimeFormat))
	if err != nil {
		return nil, fmt.Errorf("marshaling time: %w", err)
	}

	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	var raw *string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("unmarshaling time: %w", err)
	}

	if raw == nil || *raw == "" {
		*t = Time{}

		return nil
	}

	parsed, err := time.Parse(TimeFormat, *raw)
	if err != nil {
		return fmt.Errorf("parsing time %q: %w", *raw, err)
	}

	*t = Time{parsed}

	return nil
}

// Resource is the base structure shared by account-scoped API resources.
type Resource struct {
	Sid         string `json:"sid"          yaml:"sid"`
	AccountSid  string `json:"account_sid"  yaml:"account_sid"`
	DateCreated Time   `json:"date_created" yaml:"date_created"`
	DateUpdated Time   `json:"date_updated" yaml:"date_updated"`
	URI         string `json:"uri"          yaml:"uri"`
}

// Page carries the pagination fields common to all list responses.
type Page struct {
	Page            int     `json:"page"                        yaml:"page"`
	PageSize        int     `json:"page_size"                   yaml:"page_size"`
	FirstPageURI    string  `json:"first_page_uri"              yaml:"first_page_uri"`
	NextPageURI     *string `json:"next_page_uri,omitempty"     yaml:"next_page_uri,omitempty"`
	PreviousPageURI *string `json:"previous_page_uri,omitempty" yaml:"previous_page_uri,omitempty"`
	URI             string  `json:"uri"                         yaml:"uri"`
}

// HasNextPage reports whether another page of results is available.
func (p *Page) HasNextPage() bool {
	return p.NextPageURI != nil && *p.NextPageURI != ""
}

// HTTPMethod is an HTTP verb accepted by callback-URL parameters.
type HTTPMethod string

// Supported callback methods.
const (
	MethodGet  HTTPMethod = "GET"
	MethodPost HTTPMethod = "POST"
)

// CallStatus represents the lifecycle state of a call.
type CallStatus string

// Call states as reported by the API. Only CallStatusCanceled and
// CallStatusCompleted are accepted when updating a live call.
const (
	CallStatusQueued     CallStatus = "queued"
	CallStatusRinging    CallStatus = "ringing"
	CallStatusInProgress CallStatus = "in-progress"
	CallStatusCanceled   CallStatus = "canceled"
	CallStatusCompleted  CallStatus = "completed"
	CallStatusFailed     CallStatus = "failed"
	CallStatusBusy       CallStatus = "busy"
	CallStatusNoAnswer   CallStatus = "no-answer"
)

// MessageStatus represents the delivery state of a message.
type MessageStatus string

// Message states as reported by the API.
const (
	MessageStatusQueued      MessageStatus = "queued"
	MessageStatusSending     MessageStatus = "sending"
	MessageStatusSent        MessageStatus = "sent"
	MessageStatusDelivered   MessageStatus = "delivered"
	MessageStatusUndelivered MessageStatus = "undelivered"
	MessageStatusFailed      MessageStatus = "failed"
	MessageStatusReceived    MessageStatus = "received"
)

// Direction indicates which party initiated a call or message.
type Direction string

// Directions as reported by the API.
const (
	DirectionInbound       Direction = "inbound"
	DirectionOutboundAPI   Direction = "outbound-api"
	DirectionOutboundDial  Direction = "outbound-dial"
	DirectionOutboundReply Direction = "outbound-reply"
)

// AccountStatus represents the state of an account.
type AccountStatus string

// Account states as reported by the API.
const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
	AccountStatusClosed    AccountStatus = "closed"
)

// NewTime wraps a time.Time for use in filter options.
func NewTime(v time.Time) *Time {
	return &Time{v}
}

// String returns a pointer to the given string.
func String(v string) *string {
	return &v
}

// Int returns a pointer to the given int.
func Int(v int) *int {
	return &v
}

// Bool returns a pointer to the given bool.
func Bool(v bool) *bool {
	return &v
}
