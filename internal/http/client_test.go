package http

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialkit-io/twilio-client/internal/auth"
	"github.com/dialkit-io/twilio-client/pkg/twilio"
)

type testLogger struct {
	messages []string
}

func (l *testLogger) Debug(msg string, _ map[string]interface{}) {
	l.messages = append(l.messages, msg)
}

func (l *testLogger) Info(msg string, _ map[string]interface{})  {}
func (l *testLogger) Warn(msg string, _ map[string]interface{})  {}
func (l *testLogger) Error(msg string, _ map[string]interface{}) {}

func TestClientGet(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodGet, r.Method)
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Calls/CA123.json", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", username)
		assert.Equal(t, "token", password)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sid": "CA123", "status": "completed"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, auth.NewAuthToken("AC123", "token"))

	resp, err := client.Get(context.Background(), "/2010-04-01/Accounts/AC123/Calls/CA123.json", nil)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "CA123")
}

func TestClientGetWithQuery(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "+15551234567", r.URL.Query().Get("To"))
		assert.Equal(t, "completed", r.URL.Query().Get("Status"))

		_, _ = w.Write([]byte(`{"calls": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, auth.NewAuthToken("AC123", "token"))

	query := url.Values{}
	query.Set("To", "+15551234567")
	query.Set("Status", "completed")

	_, err := client.Get(context.Background(), "/2010-04-01/Accounts/AC123/Calls.json", query)
	require.NoError(t, err)
}

func TestClientPostForm(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+15551234567", r.PostForm.Get("To"))
		assert.Equal(t, "+15557654321", r.PostForm.Get("From"))

		w.WriteHeader(nethttp.StatusCreated)
		_, _ = w.Write([]byte(`{"sid": "CA123"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, auth.NewAuthToken("AC123", "token"))

	form := url.Values{}
	form.Set("To", "+15551234567")
	form.Set("From", "+15557654321")

	resp, err := client.PostForm(context.Background(), "/2010-04-01/Accounts/AC123/Calls.json", form)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)
}

func TestClientAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "The requested resource was not found", "code": 20404, "more_info": "https://www.twilio.com/docs/errors/20404", "status": 404}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, auth.NewAuthToken("AC123", "token"))

	_, err := client.Get(context.Background(), "/2010-04-01/Accounts/AC123/Calls/CA999.json", nil)
	require.Error(t, err)

	var apiErr *twilio.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "The requested resource was not found", apiErr.Message)
	assert.Equal(t, 20404, apiErr.Code)
	assert.Equal(t, "https://www.twilio.com/docs/errors/20404", apiErr.MoreInfo)
	assert.Equal(t, 404, apiErr.Status)
	assert.True(t, twilio.IsNotFound(err))
}

func TestClientErrorWithoutBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL, auth.NewAuthToken("AC123", "token"))

	_, err := client.Get(context.Background(), "/2010-04-01/Accounts/AC123/Calls/CA123.json", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, twilio.ErrServerNoContent)
}

func TestClientErrorWithUnparseableBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>Internal Server Error</html>`))
	}))
	defer server.Close()

	client := NewClient(server.URL, auth.NewAuthToken("AC123", "token"))

	_, err := client.Get(context.Background(), "/2010-04-01/Accounts/AC123/Calls/CA123.json", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, twilio.ErrServerNoContent)
}

func TestClientConnectionError(t *testing.T) {
	t.Parallel()

	client := NewClient("http://127.0.0.1:1", auth.NewAuthToken("AC123", "token"),
		WithRetryConfig(0, time.Millisecond, time.Millisecond))

	_, err := client.Get(context.Background(), "/2010-04-01/Accounts/AC123/Calls.json", nil)
	require.Error(t, err)

	var connErr *twilio.ConnectionError

	require.ErrorAs(t, err, &connErr)
	assert.True(t, twilio.IsConnectionError(err))
}

func TestClientCustomHeaders(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "custom-value", r.Header.Get("X-Custom-Header"))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, auth.NewAuthToken("AC123", "token"))

	_, err := client.Do(context.Background(), &Request{
		Method: nethttp.MethodGet,
		Path:   "/test",
		Headers: map[string]string{
			"X-Custom-Header": "custom-value",
		},
	})
	require.NoError(t, err)
}

func TestClientRetryOnServerError(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(nethttp.StatusServiceUnavailable)

			return
		}

		_, _ = w.Write([]byte(`{"sid": "CA123"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, auth.NewAuthToken("AC123", "token"),
		WithRetryConfig(3, time.Millisecond, 10*time.Millisecond))

	resp, err := client.Get(context.Background(), "/test", nil)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestClientNoRetryOnClientError(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		attempts.Add(1)
		w.WriteHeader(nethttp.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": "Invalid parameter", "code": 21211, "more_info": "", "status": 400}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, auth.NewAuthToken("AC123", "token"),
		WithRetryConfig(3, time.Millisecond, 10*time.Millisecond))

	_, err := client.Get(context.Background(), "/test", nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClientDebugLogging(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	logger := &testLogger{}
	client := NewClient(server.URL, auth.NewAuthToken("AC123", "token"),
		WithLogger(logger), WithDebug(true))

	_, err := client.Get(context.Background(), "/test", nil)
	require.NoError(t, err)
	assert.Contains(t, logger.messages, "HTTP Request")
	assert.Contains(t, logger.messages, "HTTP Response")
}

func TestClientCachesGetResponses(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"sid": "CA123"}`))
	}))
	defer server.Close()

	cache := twilio.NewMemoryCache(100)
	client := NewClient(server.URL, auth.NewAuthToken("AC123", "token"),
		WithCache(cache, time.Minute))

	resp, err := client.Get(context.Background(), "/cached", nil)
	require.NoError(t, err)
	assert.Contains(t, string(resp.Body), "CA123")

	resp, err = client.Get(context.Background(), "/cached", nil)
	require.NoError(t, err)
	assert.Contains(t, string(resp.Body), "CA123")
	assert.Equal(t, int32(1), hits.Load(), "second request should be served from cache")
}

func TestClientDoesNotCachePostResponses(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"sid": "CA123"}`))
	}))
	defer server.Close()

	cache := twilio.NewMemoryCache(100)
	client := NewClient(server.URL, auth.NewAuthToken("AC123", "token"),
		WithCache(cache, time.Minute))

	for i := 0; i < 2; i++ {
		_, err := client.PostForm(context.Background(), "/not-cached", url.Values{})
		require.NoError(t, err)
	}

	assert.Equal(t, int32(2), hits.Load())
}

func TestClientRunsInterceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	chain := twilio.NewInterceptorChain()
	chain.AddRequestInterceptor(twilio.HeaderInterceptor(map[string]string{
		"X-Request-Id": "req-1",
	}))

	var seenStatus int

	chain.AddResponseInterceptor(func(ctx context.Context, req *twilio.Request, resp *twilio.Response) error {
		seenStatus = resp.StatusCode

		return nil
	})

	client := NewClient(server.URL, auth.NewAuthToken("AC123", "token"),
		WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/test", nil)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, seenStatus)
}

func TestClientGetURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Calls.json", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("Page"))

		_, _ = w.Write([]byte(`{"calls": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, auth.NewAuthToken("AC123", "token"))

	_, err := client.GetURL(context.Background(), server.URL+"/2010-04-01/Accounts/AC123/Calls.json?Page=1")
	require.NoError(t, err)
}

func TestClientContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, auth.NewAuthToken("AC123", "token"),
		WithRetryConfig(0, time.Millisecond, time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, "/slow", nil)
	require.Error(t, err)

	var connErr *twilio.ConnectionError

	require.ErrorAs(t, err, &connErr)
	assert.NotNil(t, connErr.Err)
}
