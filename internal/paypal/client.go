package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	mem "stylishtype/pkg/memcache"
	"stylishtype/pkg/utils"
)

const tokenCacheKey = "paypal_access_token"

// refresh the cached token a minute before the gateway expires it
const tokenExpirySlack = 60 * time.Second

type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string // e.g. https://api-m.sandbox.paypal.com
}

type Client struct {
	cfg    Config
	http   *http.Client
	tokens mem.TokenStore
}

func NewClient(cfg Config, tokens mem.TokenStore) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: 30 * time.Second},
		tokens: tokens,
	}
}

type OrderResult struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Raw    json.RawMessage `json:"-"`
}

// AccessToken returns a bearer token, running the client-credentials exchange
// only when the cached token has expired.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	if token := c.tokens.Get(tokenCacheKey); token != "" {
		return token, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("paypal token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("paypal token: %s", gatewayMessage(resp.StatusCode, body))
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("paypal token response: %w", err)
	}

	ttl := time.Duration(parsed.ExpiresIn)*time.Second - tokenExpirySlack
	if ttl > 0 {
		c.tokens.Set(tokenCacheKey, parsed.AccessToken, ttl)
	}
	return parsed.AccessToken, nil
}

// CreateOrder opens a gateway order for the given amount. The amount value is
// always sent with exactly two decimals.
func (c *Client) CreateOrder(ctx context.Context, amount float64, currency string) (*OrderResult, error) {
	payload := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"amount": map[string]string{
					"currency_code": currency,
					"value":         utils.FormatAmount(amount),
				},
			},
		},
	}
	return c.post(ctx, "/v2/checkout/orders", payload)
}

// CaptureOrder finalizes a previously created gateway order, moving funds.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*OrderResult, error) {
	return c.post(ctx, "/v2/checkout/orders/"+orderID+"/capture", nil)
}

// GetOrder reads the gateway's view of an order; used by the reconciler to
// find out what happened to transactions stuck pending.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*OrderResult, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/v2/checkout/orders/"+orderID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (*OrderResult, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) (*OrderResult, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paypal request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("paypal: %s", gatewayMessage(resp.StatusCode, body))
	}

	var result OrderResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("paypal response: %w", err)
	}
	result.Raw = body
	return &result, nil
}

// gatewayMessage surfaces the gateway's own message when it sends one.
func gatewayMessage(status int, body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return fmt.Sprintf("unexpected status %d", status)
}
