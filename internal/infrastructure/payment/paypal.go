// Package payment issues fixed-amount pay-by-link URLs through a
// PayPal-style checkout API. There is no session reconciliation here; the
// link carries order metadata and the provider handles the rest. Any
// upstream failure degrades to a static paypal.me link so the customer
// always gets something payable.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/config"
)

type LinkRequest struct {
	WebsiteID    string
	Domain       string
	BusinessName string
	ContactEmail string
	Amount       float64
}

// tokenCache holds the provider access token with a time-boxed expiry.
// Refresh happens under the lock; a racing refresh would be harmless anyway
// since token issuance is idempotent.
type tokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
	secret     string
	meHandle   string
	cache      tokenCache
	now        func() time.Time
	logger     *zap.Logger
}

func NewClient(cfg config.PayPalConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    cfg.BaseURL,
		clientID:   cfg.ClientID,
		secret:     cfg.Secret,
		meHandle:   cfg.MeHandle,
		now:        time.Now,
		logger:     logger,
	}
}

// CreatePaymentLink returns a URL the customer can open to pay the fixed
// amount. It never fails: without credentials, or on any upstream error,
// the static pay-me link is returned instead.
func (c *Client) CreatePaymentLink(ctx context.Context, req LinkRequest) string {
	if c.clientID == "" || c.secret == "" {
		return c.PayMeLink(req.Amount)
	}

	link, err := c.createCheckoutLink(ctx, req)
	if err != nil {
		c.logger.Warn("payment link creation failed, using pay-me fallback",
			zap.String("websiteId", req.WebsiteID), zap.Error(err))
		return c.PayMeLink(req.Amount)
	}
	return link
}

// PayMeLink is the static fixed-amount fallback URL.
func (c *Client) PayMeLink(amount float64) string {
	return fmt.Sprintf("https://paypal.me/%s/%.2fEUR", c.meHandle, amount)
}

type checkoutOrderRequest struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []purchaseUnit `json:"purchase_units"`
}

type purchaseUnit struct {
	Description string       `json:"description"`
	CustomID    string       `json:"custom_id"`
	Amount      orderAmount  `json:"amount"`
}

type orderAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type checkoutOrderResponse struct {
	ID    string `json:"id"`
	Links []struct {
		Rel  string `json:"rel"`
		Href string `json:"href"`
	} `json:"links"`
}

type orderMetadata struct {
	WebsiteID    string `json:"website_id"`
	Domain       string `json:"domain"`
	BusinessName string `json:"business_name"`
	ClientEmail  string `json:"client_email"`
}

func (c *Client) createCheckoutLink(ctx context.Context, req LinkRequest) (string, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}

	metadata, err := json.Marshal(orderMetadata{
		WebsiteID:    req.WebsiteID,
		Domain:       req.Domain,
		BusinessName: req.BusinessName,
		ClientEmail:  req.ContactEmail,
	})
	if err != nil {
		return "", fmt.Errorf("encoding order metadata: %w", err)
	}

	body, err := json.Marshal(checkoutOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{{
			Description: fmt.Sprintf("Service Concierge - %s", req.BusinessName),
			CustomID:    string(metadata),
			Amount: orderAmount{
				CurrencyCode: "EUR",
				Value:        fmt.Sprintf("%.2f", req.Amount),
			},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding checkout order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/checkout/orders", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building checkout request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling checkout API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("checkout API returned status %d", resp.StatusCode)
	}

	var decoded checkoutOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decoding checkout response: %w", err)
	}

	for _, l := range decoded.Links {
		if l.Rel == "approve" {
			return l.Href, nil
		}
	}
	return "", fmt.Errorf("checkout response has no approve link")
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// accessToken returns the cached token, refreshing it when less than a
// minute of validity remains.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()

	if c.cache.token != "" && c.now().Add(time.Minute).Before(c.cache.expiresAt) {
		return c.cache.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("refreshing access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var decoded tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if decoded.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned empty token")
	}

	c.cache.token = decoded.AccessToken
	c.cache.expiresAt = c.now().Add(time.Duration(decoded.ExpiresIn) * time.Second)
	return c.cache.token, nil
}
