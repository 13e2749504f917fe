package paypal

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mem "stylishtype/pkg/memcache"
)

type gatewayFixture struct {
	server     *httptest.Server
	client     *Client
	tokenCalls int
	lastBody   []byte
	lastPath   string
}

func newGatewayFixture(t *testing.T) *gatewayFixture {
	t.Helper()
	f := &gatewayFixture{}

	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/oauth2/token":
			f.tokenCalls++
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "client-id", user)
			assert.Equal(t, "client-secret", pass)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token": "test-token",
				"expires_in":   3600,
			})
		default:
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			f.lastPath = r.URL.Path
			f.lastBody, _ = io.ReadAll(r.Body)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"id":     "GW-ORDER-1",
				"status": "CREATED",
			})
		}
	}))
	t.Cleanup(f.server.Close)

	f.client = NewClient(Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		BaseURL:      f.server.URL,
	}, mem.NewGatewayTokens())
	return f
}

func TestCreateOrderSendsTwoDecimalAmount(t *testing.T) {
	f := newGatewayFixture(t)

	order, err := f.client.CreateOrder(context.Background(), 19.9899, "USD")
	require.NoError(t, err)

	assert.Equal(t, "GW-ORDER-1", order.ID)
	assert.Contains(t, string(f.lastBody), `"value":"19.99"`)
	assert.Contains(t, string(f.lastBody), `"currency_code":"USD"`)
	assert.Contains(t, string(f.lastBody), `"intent":"CAPTURE"`)
}

func TestAccessTokenIsCachedAcrossCalls(t *testing.T) {
	f := newGatewayFixture(t)

	_, err := f.client.CreateOrder(context.Background(), 10, "USD")
	require.NoError(t, err)
	_, err = f.client.CaptureOrder(context.Background(), "GW-ORDER-1")
	require.NoError(t, err)
	_, err = f.client.GetOrder(context.Background(), "GW-ORDER-1")
	require.NoError(t, err)

	assert.Equal(t, 1, f.tokenCalls)
}

func TestCaptureOrderPath(t *testing.T) {
	f := newGatewayFixture(t)

	_, err := f.client.CaptureOrder(context.Background(), "GW-ORDER-9")
	require.NoError(t, err)

	assert.Equal(t, "/v2/checkout/orders/GW-ORDER-9/capture", f.lastPath)
}

func TestGatewayErrorSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/oauth2/token" {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token": "test-token",
				"expires_in":   3600,
			})
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ORDER_ALREADY_CAPTURED"})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, mem.NewGatewayTokens())

	_, err := client.CaptureOrder(context.Background(), "GW-ORDER-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ORDER_ALREADY_CAPTURED")
}
