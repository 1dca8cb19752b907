package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialkit-io/twilio-client/pkg/twilio"
)

func callsPath(sid string) string {
	if sid == "" {
		return "/2010-04-01/Accounts/" + testAccountSid + "/Calls.json"
	}

	return "/2010-04-01/Accounts/" + testAccountSid + "/Calls/" + sid + ".json"
}

func TestCallsCreate(t *testing.T) {
	t.Parallel()

	tests := []TestCreateOperation[twilio.Call]{
		{
			Name:         "minimal params omit everything unset",
			ExpectedPath: callsPath(""),
			WantForm: url.Values{
				"To":   []string{"+15551234567"},
				"From": []string{"+15557654321"},
			},
			AbsentForm: []string{"Url", "Method", "FallbackUrl", "StatusCallback", "SendDigits", "Timeout", "Record"},
			StatusCode: http.StatusCreated,
			Response: map[string]interface{}{
				"sid":    "CA123",
				"status": "queued",
			},
		},
		{
			Name:         "full params",
			ExpectedPath: callsPath(""),
			WantForm: url.Values{
				"To":     []string{"+15551234567"},
				"From":   []string{"+15557654321"},
				"Url":    []string{"https://example.com/twiml"},
				"Method": []string{"POST"},
			},
			StatusCode: http.StatusCreated,
			Response: map[string]interface{}{
				"sid": "CA456",
			},
		},
		{
			Name:         "api error",
			ExpectedPath: callsPath(""),
			StatusCode:   http.StatusBadRequest,
			Response:     errorResponse("The 'To' number is not a valid phone number", 21211, 400),
			WantErr:      true,
			ErrMessage:   "not a valid phone number",
		},
	}

	RunCreateTests(t, tests[:1], func(c *Client) (*twilio.Call, error) {
		return c.Calls().Create(context.Background(), twilio.NewCallCreate("+15551234567", "+15557654321"))
	})

	RunCreateTests(t, tests[1:2], func(c *Client) (*twilio.Call, error) {
		params := twilio.NewCallCreate("+15551234567", "+15557654321").
			WithURLString("https://example.com/twiml").
			WithMethod(twilio.MethodPost)

		return c.Calls().Create(context.Background(), params)
	})

	RunCreateTests(t, tests[2:], func(c *Client) (*twilio.Call, error) {
		return c.Calls().Create(context.Background(), twilio.NewCallCreate("+15551234567", "+15557654321"))
	})
}

func TestCallsCreateTypedURLMatchesString(t *testing.T) {
	t.Parallel()

	var seen []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		seen = append(seen, r.PostForm.Get("Url"))

		_, _ = w.Write([]byte(`{"sid": "CA123"}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	typed, err := url.Parse("https://example.com/twiml?a=1")
	require.NoError(t, err)

	_, err = client.Calls().Create(context.Background(),
		twilio.NewCallCreate("+15551234567", "+15557654321").WithURL(typed))
	require.NoError(t, err)

	_, err = client.Calls().Create(context.Background(),
		twilio.NewCallCreate("+15551234567", "+15557654321").WithURLString("https://example.com/twiml?a=1"))
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, seen[0], seen[1])
}

func TestCallsGet(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[twilio.Call]{
		{
			Name:         "success",
			Sid:          "CA123",
			ExpectedPath: callsPath("CA123"),
			StatusCode:   http.StatusOK,
			Response: map[string]interface{}{
				"sid":         "CA123",
				"account_sid": testAccountSid,
				"status":      "completed",
				"to":          "+15551234567",
				"from":        "+15557654321",
			},
		},
		{
			Name:         "not found",
			Sid:          "CA999",
			ExpectedPath: callsPath("CA999"),
			StatusCode:   http.StatusNotFound,
			Response:     errorResponse("The requested resource was not found", 20404, 404),
			WantErr:      true,
			ErrMessage:   "not found",
		},
	}

	RunGetTests(t, tests, func(c *Client, ctx context.Context, sid string) (*twilio.Call, error) {
		return c.Calls().Get(ctx, sid)
	})
}

func TestCallsGetMapsResponseFields(t *testing.T) {
	t.Parallel()

	started := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"sid":          "CA123",
			"account_sid":  testAccountSid,
			"status":       "completed",
			"direction":    "outbound-api",
			"duration":     "42",
			"price":        "-0.0200",
			"date_created": started.Format(twilio.TimeFormat),
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	call, err := client.Calls().Get(context.Background(), "CA123")
	require.NoError(t, err)
	assert.Equal(t, "CA123", call.Sid)
	assert.Equal(t, twilio.CallStatusCompleted, call.Status)
	assert.Equal(t, twilio.DirectionOutboundAPI, call.Direction)
	require.NotNil(t, call.Duration)
	assert.Equal(t, "42", *call.Duration)
	require.NotNil(t, call.Price)
	assert.Equal(t, "-0.0200", *call.Price)
	assert.True(t, started.Equal(call.DateCreated.Time))
}

func TestCallsUpdate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, callsPath("CA123"), r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "https://example.com/next", r.PostForm.Get("Url"))
		assert.Equal(t, "GET", r.PostForm.Get("Method"))

		_, present := r.PostForm["FallbackUrl"]
		assert.False(t, present, "unset FallbackUrl must be omitted")

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"sid":    "CA123",
			"status": "in-progress",
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := twilio.NewCallUpdate().
		WithURLString("https://example.com/next").
		WithMethod(twilio.MethodGet)

	call, err := client.Calls().Update(context.Background(), "CA123", params)
	require.NoError(t, err)
	assert.Equal(t, "CA123", call.Sid)
	assert.Equal(t, twilio.CallStatusInProgress, call.Status)
}

func TestCallsUpdateSetterOverwrites(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, []string{"https://example.com/second"}, r.PostForm["Url"])

		_, _ = w.Write([]byte(`{"sid": "CA123"}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := twilio.NewCallUpdate().
		WithURLString("https://example.com/first").
		WithURLString("https://example.com/second")

	_, err := client.Calls().Update(context.Background(), "CA123", params)
	require.NoError(t, err)
}

func TestCallsUpdateHangup(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "completed", r.PostForm.Get("Status"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"sid":    "CA123",
			"status": "completed",
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := twilio.NewCallUpdate().WithStatus(twilio.CallStatusCompleted)

	call, err := client.Calls().Update(context.Background(), "CA123", params)
	require.NoError(t, err)
	assert.Equal(t, twilio.CallStatusCompleted, call.Status)
}

func TestCallsUpdateServerErrorWithBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse("An internal error occurred", 20500, 500))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Calls().Update(context.Background(), "CA123", twilio.NewCallUpdate())
	require.Error(t, err)

	var apiErr *twilio.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "An internal error occurred", apiErr.Message)
	assert.Equal(t, 20500, apiErr.Code)
	assert.Equal(t, "https://www.twilio.com/docs/errors/20500", apiErr.MoreInfo)
	assert.Equal(t, 500, apiErr.Status)
}

func TestCallsUpdateServerErrorNoBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Calls().Update(context.Background(), "CA123", twilio.NewCallUpdate())
	require.Error(t, err)
	assert.ErrorIs(t, err, twilio.ErrServerNoContent)
}

func TestCallsUpdateConnectionError(t *testing.T) {
	t.Parallel()

	client := NewTestClient("http://127.0.0.1:1")

	_, err := client.Calls().Update(context.Background(), "CA123", twilio.NewCallUpdate())
	require.Error(t, err)
	assert.True(t, twilio.IsConnectionError(err))
}

func TestCallsDelete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, callsPath("CA123"), r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Calls().Delete(context.Background(), "CA123")
	require.NoError(t, err)
}

func TestCallsList(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, callsPath(""), r.URL.Path)
		assert.Equal(t, "completed", r.URL.Query().Get("Status"))
		assert.Equal(t, "2026-08-01", r.URL.Query().Get("StartTime>"))
		assert.Equal(t, "25", r.URL.Query().Get("PageSize"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"page":          0,
			"page_size":     25,
			"uri":           callsPath("") + "?Page=0",
			"next_page_uri": callsPath("") + "?Page=1",
			"calls": []map[string]interface{}{
				{"sid": "CA1", "status": "completed"},
				{"sid": "CA2", "status": "completed"},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	status := twilio.CallStatusCompleted
	after := twilio.NewTime(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	page, err := client.Calls().List(context.Background(), &twilio.CallListOptions{
		Status:         &status,
		StartTimeAfter: after,
		PageSize:       twilio.Int(25),
	})
	require.NoError(t, err)
	require.Len(t, page.Calls, 2)
	assert.Equal(t, "CA1", page.Calls[0].Sid)
	assert.True(t, page.HasNextPage())
}

func TestCallsListNilOptions(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"page":  0,
			"calls": []map[string]interface{}{},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	page, err := client.Calls().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, page.Calls)
	assert.False(t, page.HasNextPage())
}

func TestCallsNextPage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, callsPath(""), r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("Page"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"page": 1,
			"calls": []map[string]interface{}{
				{"sid": "CA3"},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	first := &twilio.CallPage{
		Page: twilio.Page{
			NextPageURI: twilio.String(callsPath("") + "?Page=1"),
		},
	}

	next, err := client.Calls().NextPage(context.Background(), first)
	require.NoError(t, err)
	require.Len(t, next.Calls, 1)
	assert.Equal(t, "CA3", next.Calls[0].Sid)
}

func TestCallsNextPageExhausted(t *testing.T) {
	t.Parallel()

	client := NewTestClient("http://unused")

	_, err := client.Calls().NextPage(context.Background(), &twilio.CallPage{})
	require.Error(t, err)
	assert.ErrorIs(t, err, twilio.ErrNoNextPage)
}
