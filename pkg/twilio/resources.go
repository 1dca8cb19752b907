package twilio

import (
	"net/url"
	"strconv"
)

// Call represents a voice call resource.
type Call struct {
	Resource

	ParentCallSid  *string    `json:"parent_call_sid"  yaml:"parent_call_sid"`
	To             string     `json:"to"               yaml:"to"`
	From           string     `json:"from"             yaml:"from"`
	PhoneNumberSid string     `json:"phone_number_sid" yaml:"phone_number_sid"`
	Status         CallStatus `json:"status"           yaml:"status"`
	StartTime      Time       `json:"start_time"       yaml:"start_time"`
	EndTime        Time       `json:"end_time"         yaml:"end_time"`
	Duration       *string    `json:"duration"         yaml:"duration"`
	Price          *string    `json:"price"            yaml:"price"`
	PriceUnit      string     `json:"price_unit"       yaml:"price_unit"`
	Direction      Direction  `json:"direction"        yaml:"direction"`
	AnsweredBy     *string    `json:"answered_by"      yaml:"answered_by"`
	ForwardedFrom  *string    `json:"forwarded_from"   yaml:"forwarded_from"`
	CallerName     *string    `json:"caller_name"      yaml:"caller_name"`
	APIVersion     string     `json:"api_version"      yaml:"api_version"`
}

// CallPage represents one page of a call list response.
type CallPage struct {
	Page

	Calls []Call `json:"calls" yaml:"calls"`
}

// CallCreate holds the parameters for initiating an outbound call. To and
// From are required; every other field is optional and omitted from the
// request when unset.
type CallCreate struct {
	To                   string
	From                 string
	URL                  *string
	ApplicationSid       *string
	Method               *HTTPMethod
	FallbackURL          *string
	FallbackMethod       *HTTPMethod
	StatusCallback       *string
	StatusCallbackMethod *HTTPMethod
	SendDigits           *string
	Timeout              *int
	Record               *bool
}

// NewCallCreate creates call parameters addressed from one number to another.
func NewCallCreate(to, from string) *CallCreate {
	return &CallCreate{To: to, From: from}
}

// WithURL sets the webhook URL that returns instructions for the call.
func (p *CallCreate) WithURL(u *url.URL) *CallCreate {
	return p.WithURLString(u.String())
}

// WithURLString is the string convenience form of WithURL.
func (p *CallCreate) WithURLString(raw string) *CallCreate {
	p.URL = &raw

	return p
}

// WithApplicationSid sets the application whose configuration handles the call.
func (p *CallCreate) WithApplicationSid(sid string) *CallCreate {
	p.ApplicationSid = &sid

	return p
}

// WithMethod sets the HTTP method used to request the URL.
func (p *CallCreate) WithMethod(m HTTPMethod) *CallCreate {
	p.Method = &m

	return p
}

// WithFallbackURL sets the URL requested if fetching or executing
// instructions at URL fails.
func (p *CallCreate) WithFallbackURL(u *url.URL) *CallCreate {
	return p.WithFallbackURLString(u.String())
}

// WithFallbackURLString is the string convenience form of WithFallbackURL.
func (p *CallCreate) WithFallbackURLString(raw string) *CallCreate {
	p.FallbackURL = &raw

	return p
}

// WithFallbackMethod sets the HTTP method used to request the fallback URL.
func (p *CallCreate) WithFallbackMethod(m HTTPMethod) *CallCreate {
	p.FallbackMethod = &m

	return p
}

// WithStatusCallback sets the URL notified when the call ends.
func (p *CallCreate) WithStatusCallback(u *url.URL) *CallCreate {
	return p.WithStatusCallbackString(u.String())
}

// WithStatusCallbackString is the string convenience form of WithStatusCallback.
func (p *CallCreate) WithStatusCallbackString(raw string) *CallCreate {
	p.StatusCallback = &raw

	return p
}

// WithStatusCallbackMethod sets the HTTP method for the status callback.
func (p *CallCreate) WithStatusCallbackMethod(m HTTPMethod) *CallCreate {
	p.StatusCallbackMethod = &m

	return p
}

// WithSendDigits sets DTMF digits to play once the call connects.
func (p *CallCreate) WithSendDigits(digits string) *CallCreate {
	p.SendDigits = &digits

	return p
}

// WithTimeout sets how long to let the call ring before giving up, in seconds.
func (p *CallCreate) WithTimeout(seconds int) *CallCreate {
	p.Timeout = &seconds

	return p
}

// WithRecord enables or disables call recording.
func (p *CallCreate) WithRecord(record bool) *CallCreate {
	p.Record = &record

	return p
}

// Values encodes the parameters as form values, in declaration order,
// skipping unset fields.
func (p *CallCreate) Values() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	values.Set("To", p.To)
	values.Set("From", p.From)

	if p.URL != nil {
		values.Set("Url", *p.URL)
	}

	if p.ApplicationSid != nil {
		values.Set("ApplicationSid", *p.ApplicationSid)
	}

	if p.Method != nil {
		values.Set("Method", string(*p.Method))
	}

	if p.FallbackURL != nil {
		values.Set("FallbackUrl", *p.FallbackURL)
	}

	if p.FallbackMethod != nil {
		values.Set("FallbackMethod", string(*p.FallbackMethod))
	}

	if p.StatusCallback != nil {
		values.Set("StatusCallback", *p.StatusCallback)
	}

	if p.StatusCallbackMethod != nil {
		values.Set("StatusCallbackMethod", string(*p.StatusCallbackMethod))
	}

	if p.SendDigits != nil {
		values.Set("SendDigits", *p.SendDigits)
	}

	if p.Timeout != nil {
		values.Set("Timeout", strconv.Itoa(*p.Timeout))
	}

	if p.Record != nil {
		values.Set("Record", strconv.FormatBool(*p.Record))
	}

	return values
}

// CallUpdate holds the parameters for modifying a live call. All fields are
// optional; an unset field leaves the corresponding call property unchanged
// and is omitted from the request.
type CallUpdate struct {
	URL                  *string
	Method               *HTTPMethod
	Status               *CallStatus
	FallbackURL          *string
	FallbackMethod       *HTTPMethod
	StatusCallback       *string
	StatusCallbackMethod *HTTPMethod
}

// NewCallUpdate creates empty call update parameters.
func NewCallUpdate() *CallUpdate {
	return &CallUpdate{}
}

// WithURL sets a webhook URL; the call is immediately redirected to the
// instructions it returns.
func (p *CallUpdate) WithURL(u *url.URL) *CallUpdate {
	return p.WithURLString(u.String())
}

// WithURLString is the string convenience form of WithURL.
func (p *CallUpdate) WithURLString(raw string) *CallUpdate {
	p.URL = &raw

	return p
}

// WithMethod sets the HTTP method used to request the URL.
func (p *CallUpdate) WithMethod(m HTTPMethod) *CallUpdate {
	p.Method = &m

	return p
}

// WithStatus requests a state transition. CallStatusCanceled hangs up calls
// that are queued or ringing; CallStatusCompleted also ends calls in progress.
func (p *CallUpdate) WithStatus(status CallStatus) *CallUpdate {
	p.Status = &status

	return p
}

// WithFallbackURL sets the URL requested if fetching or executing
// instructions at URL fails.
func (p *CallUpdate) WithFallbackURL(u *url.URL) *CallUpdate {
	return p.WithFallbackURLString(u.String())
}

// WithFallbackURLString is the string convenience form of WithFallbackURL.
func (p *CallUpdate) WithFallbackURLString(raw string) *CallUpdate {
	p.FallbackURL = &raw

	return p
}

// WithFallbackMethod sets the HTTP method used to request the fallback URL.
func (p *CallUpdate) WithFallbackMethod(m HTTPMethod) *CallUpdate {
	p.FallbackMethod = &m

	return p
}

// WithStatusCallback sets the URL notified when the call ends.
func (p *CallUpdate) WithStatusCallback(u *url.URL) *CallUpdate {
	return p.WithStatusCallbackString(u.String())
}

// WithStatusCallbackString is the string convenience form of WithStatusCallback.
func (p *CallUpdate) WithStatusCallbackString(raw string) *CallUpdate {
	p.StatusCallback = &raw

	return p
}

// WithStatusCallbackMethod sets the HTTP method for the status callback.
func (p *CallUpdate) WithStatusCallbackMethod(m HTTPMethod) *CallUpdate {
	p.StatusCallbackMethod = &m

	return p
}

// Values encodes the parameters as form values, in declaration order,
// skipping unset fields.
func (p *CallUpdate) Values() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	if p.URL != nil {
		values.Set("Url", *p.URL)
	}

	if p.Method != nil {
		values.Set("Method", string(*p.Method))
	}

	if p.Status != nil {
		values.Set("Status", string(*p.Status))
	}

	if p.FallbackURL != nil {
		values.Set("FallbackUrl", *p.FallbackURL)
	}

	if p.FallbackMethod != nil {
		values.Set("FallbackMethod", string(*p.FallbackMethod))
	}

	if p.StatusCallback != nil {
		values.Set("StatusCallback", *p.StatusCallback)
	}

	if p.StatusCallbackMethod != nil {
		values.Set("StatusCallbackMethod", string(*p.StatusCallbackMethod))
	}

	return values
}

// CallListOptions filters a call list request. Unset fields are omitted from
// the query string.
type CallListOptions struct {
	To              *string
	From            *string
	ParentCallSid   *string
	Status          *CallStatus
	StartTimeBefore *Time
	StartTimeAfter  *Time
	PageSize        *int
}

// Values encodes the filters as query parameters.
func (o *CallListOptions) Values() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.To != nil {
		values.Set("To", *o.To)
	}

	if o.From != nil {
		values.Set("From", *o.From)
	}

	if o.ParentCallSid != nil {
		values.Set("ParentCallSid", *o.ParentCallSid)
	}

	if o.Status != nil {
		values.Set("Status", string(*o.Status))
	}

	if o.StartTimeBefore != nil {
		values.Set("StartTime<", o.StartTimeBefore.Format("2006-01-02"))
	}

	if o.StartTimeAfter != nil {
		values.Set("StartTime>", o.StartTimeAfter.Format("2006-01-02"))
	}

	if o.PageSize != nil {
		values.Set("PageSize", strconv.Itoa(*o.PageSize))
	}

	return values
}

// Message represents an SMS or MMS message resource.
type Message struct {
	Resource

	To           string        `json:"to"            yaml:"to"`
	From         string        `json:"from"          yaml:"from"`
	Body         string        `json:"body"          yaml:"body"`
	Status       MessageStatus `json:"status"        yaml:"status"`
	Direction    Direction     `json:"direction"     yaml:"direction"`
	NumSegments  string        `json:"num_segments"  yaml:"num_segments"`
	NumMedia     string        `json:"num_media"     yaml:"num_media"`
	Price        *string       `json:"price"         yaml:"price"`
	PriceUnit    string        `json:"price_unit"    yaml:"price_unit"`
	ErrorCode    *int          `json:"error_code"    yaml:"error_code"`
	ErrorMessage *string       `json:"error_message" yaml:"error_message"`
	DateSent     Time          `json:"date_sent"     yaml:"date_sent"`
	APIVersion   string        `json:"api_version"   yaml:"api_version"`
}

// MessagePage represents one page of a message list response.
type MessagePage struct {
	Page

	Messages []Message `json:"messages" yaml:"messages"`
}

// MessageCreate holds the parameters for sending a message. To and From are
// required; the server additionally requires at least one of Body or
// MediaURL.
type MessageCreate struct {
	To              string
	From            string
	Body            *string
	MediaURL        *string
	StatusCallback  *string
	ApplicationSid  *string
	MaxPrice        *string
	ProvideFeedback *bool
	ValidityPeriod  *int
}

// NewMessageCreate creates message parameters addressed from one number to
// another.
func NewMessageCreate(to, from string) *MessageCreate {
	return &MessageCreate{To: to, From: from}
}

// WithBody sets the message text.
func (p *MessageCreate) WithBody(body string) *MessageCreate {
	p.Body = &body

	return p
}

// WithMediaURL attaches media by URL.
func (p *MessageCreate) WithMediaURL(u *url.URL) *MessageCreate {
	return p.WithMediaURLString(u.String())
}

// WithMediaURLString is the string convenience form of WithMediaURL.
func (p *MessageCreate) WithMediaURLString(raw string) *MessageCreate {
	p.MediaURL = &raw

	return p
}

// WithStatusCallback sets the URL notified as delivery status changes.
func (p *MessageCreate) WithStatusCallback(u *url.URL) *MessageCreate {
	return p.WithStatusCallbackString(u.String())
}

// WithStatusCallbackString is the string convenience form of WithStatusCallback.
func (p *MessageCreate) WithStatusCallbackString(raw string) *MessageCreate {
	p.StatusCallback = &raw

	return p
}

// WithApplicationSid associates the message with an application.
func (p *MessageCreate) WithApplicationSid(sid string) *MessageCreate {
	p.ApplicationSid = &sid

	return p
}

// WithMaxPrice sets the maximum price to pay for delivery.
func (p *MessageCreate) WithMaxPrice(price string) *MessageCreate {
	p.MaxPrice = &price

	return p
}

// WithProvideFeedback marks whether delivery confirmation will be reported.
func (p *MessageCreate) WithProvideFeedback(provide bool) *MessageCreate {
	p.ProvideFeedback = &provide

	return p
}

// WithValidityPeriod sets how long the message may stay queued, in seconds.
func (p *MessageCreate) WithValidityPeriod(seconds int) *MessageCreate {
	p.ValidityPeriod = &seconds

	return p
}

// Values encodes the parameters as form values, in declaration order,
// skipping unset fields.
func (p *MessageCreate) Values() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	values.Set("To", p.To)
	values.Set("From", p.From)

	if p.Body != nil {
		values.Set("Body", *p.Body)
	}

	if p.MediaURL != nil {
		values.Set("MediaUrl", *p.MediaURL)
	}

	if p.StatusCallback != nil {
		values.Set("StatusCallback", *p.StatusCallback)
	}

	if p.ApplicationSid != nil {
		values.Set("ApplicationSid", *p.ApplicationSid)
	}

	if p.MaxPrice != nil {
		values.Set("MaxPrice", *p.MaxPrice)
	}

	if p.ProvideFeedback != nil {
		values.Set("ProvideFeedback", strconv.FormatBool(*p.ProvideFeedback))
	}

	if p.ValidityPeriod != nil {
		values.Set("ValidityPeriod", strconv.Itoa(*p.ValidityPeriod))
	}

	return values
}

// MessageListOptions filters a message list request.
type MessageListOptions struct {
	To             *string
	From           *string
	DateSentBefore *Time
	DateSentAfter  *Time
	PageSize       *int
}

// Values encodes the filters as query parameters.
func (o *MessageListOptions) Values() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.To != nil {
		values.Set("To", *o.To)
	}

	if o.From != nil {
		values.Set("From", *o.From)
	}

	if o.DateSentBefore != nil {
		values.Set("DateSent<", o.DateSentBefore.Format("2006-01-02"))
	}

	if o.DateSentAfter != nil {
		values.Set("DateSent>", o.DateSentAfter.Format("2006-01-02"))
	}

	if o.PageSize != nil {
		values.Set("PageSize", strconv.Itoa(*o.PageSize))
	}

	return values
}

// ValidationRequest represents an outgoing caller ID validation request. It
// has no sid or URI of its own; the validation_code is shown to the user and
// must be entered on the phone handset.
type ValidationRequest struct {
	AccountSid     string `json:"account_sid"     yaml:"account_sid"`
	PhoneNumber    string `json:"phone_number"    yaml:"phone_number"`
	FriendlyName   string `json:"friendly_name"   yaml:"friendly_name"`
	ValidationCode *int   `json:"validation_code" yaml:"validation_code"`
	CallSid        string `json:"call_sid"        yaml:"call_sid"`
}

// ValidationRequestCreate holds the parameters for starting an outgoing
// caller ID validation. PhoneNumber is required.
type ValidationRequestCreate struct {
	PhoneNumber          string
	FriendlyName         *string
	CallDelay            *int
	Extension            *string
	StatusCallback       *string
	StatusCallbackMethod *HTTPMethod
}

// NewValidationRequestCreate creates validation parameters for a phone number.
func NewValidationRequestCreate(phoneNumber string) *ValidationRequestCreate {
	return &ValidationRequestCreate{PhoneNumber: phoneNumber}
}

// WithFriendlyName sets a descriptive name for the number being validated.
func (p *ValidationRequestCreate) WithFriendlyName(name string) *ValidationRequestCreate {
	p.FriendlyName = &name

	return p
}

// WithCallDelay delays the validation call by the given number of seconds.
func (p *ValidationRequestCreate) WithCallDelay(seconds int) *ValidationRequestCreate {
	p.CallDelay = &seconds

	return p
}

// WithExtension sets an extension to dial after connecting.
func (p *ValidationRequestCreate) WithExtension(ext string) *ValidationRequestCreate {
	p.Extension = &ext

	return p
}

// WithStatusCallback sets the URL notified when validation completes.
func (p *ValidationRequestCreate) WithStatusCallback(u *url.URL) *ValidationRequestCreate {
	return p.WithStatusCallbackString(u.String())
}

// WithStatusCallbackString is the string convenience form of WithStatusCallback.
func (p *ValidationRequestCreate) WithStatusCallbackString(raw string) *ValidationRequestCreate {
	p.StatusCallback = &raw

	return p
}

// WithStatusCallbackMethod sets the HTTP method for the status callback.
func (p *ValidationRequestCreate) WithStatusCallbackMethod(m HTTPMethod) *ValidationRequestCreate {
	p.StatusCallbackMethod = &m

	return p
}

// Values encodes the parameters as form values, in declaration order,
// skipping unset fields.
func (p *ValidationRequestCreate) Values() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	values.Set("PhoneNumber", p.PhoneNumber)

	if p.FriendlyName != nil {
		values.Set("FriendlyName", *p.FriendlyName)
	}

	if p.CallDelay != nil {
		values.Set("CallDelay", strconv.Itoa(*p.CallDelay))
	}

	if p.Extension != nil {
		values.Set("Extension", *p.Extension)
	}

	if p.StatusCallback != nil {
		values.Set("StatusCallback", *p.StatusCallback)
	}

	if p.StatusCallbackMethod != nil {
		values.Set("StatusCallbackMethod", string(*p.StatusCallbackMethod))
	}

	return values
}

// Account represents an account or subaccount.
type Account struct {
	Sid             string        `json:"sid"               yaml:"sid"`
	OwnerAccountSid string        `json:"owner_account_sid" yaml:"owner_account_sid"`
	FriendlyName    string        `json:"friendly_name"     yaml:"friendly_name"`
	Status          AccountStatus `json:"status"            yaml:"status"`
	Type            string        `json:"type"              yaml:"type"`
	AuthToken       string        `json:"auth_token"        yaml:"auth_token"`
	DateCreated     Time          `json:"date_created"      yaml:"date_created"`
	DateUpdated     Time          `json:"date_updated"      yaml:"date_updated"`
	URI             string        `json:"uri"               yaml:"uri"`
}

// AccountPage represents one page of an account list response.
type AccountPage struct {
	Page

	Accounts []Account `json:"accounts" yaml:"accounts"`
}

// AccountUpdate holds the parameters for modifying an account.
type AccountUpdate struct {
	FriendlyName *string
	Status       *AccountStatus
}

// NewAccountUpdate creates empty account update parameters.
func NewAccountUpdate() *AccountUpdate {
	return &AccountUpdate{}
}

// WithFriendlyName sets a descriptive name for the account.
func (p *AccountUpdate) WithFriendlyName(name string) *AccountUpdate {
	p.FriendlyName = &name

	return p
}

// WithStatus suspends, reactivates, or closes the account.
func (p *AccountUpdate) WithStatus(status AccountStatus) *AccountUpdate {
	p.Status = &status

	return p
}

// Values encodes the parameters as form values, in declaration order,
// skipping unset fields.
func (p *AccountUpdate) Values() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	if p.FriendlyName != nil {
		values.Set("FriendlyName", *p.FriendlyName)
	}

	if p.Status != nil {
		values.Set("Status", string(*p.Status))
	}

	return values
}

// AccountListOptions filters an account list request.
type AccountListOptions struct {
	FriendlyName *string
	Status       *AccountStatus
	PageSize     *int
}

// Values encodes the filters as query parameters.
func (o *AccountListOptions) Values() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.FriendlyName != nil {
		values.Set("FriendlyName", *o.FriendlyName)
	}

	if o.Status != nil {
		values.Set("Status", string(*o.Status))
	}

	if o.PageSize != nil {
		values.Set("PageSize", strconv.Itoa(*o.PageSize))
	}

	return values
}
