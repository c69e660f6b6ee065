// Package registrar checks domain availability against a Namecheap-style
// API, with a public WHOIS lookup as fallback. When both fail the check
// fails open: the domain is reported available so the workflow keeps
// moving, and the purchase step is where the truth comes out.
package registrar

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/config"
)

// DefaultDomainPrice is the price hint attached to available domains.
const DefaultDomainPrice = 12.0

type CheckResult struct {
	Available bool
	Domain    string
	PriceHint float64
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	whoisURL   string
	apiUser    string
	apiKey     string
	logger     *zap.Logger
}

func NewClient(cfg config.RegistrarConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.BaseURL,
		whoisURL:   cfg.WhoisURL,
		apiUser:    cfg.APIUser,
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

// apiResponse is the decoded shape of the registrar's domains.check reply.
type apiResponse struct {
	XMLName         xml.Name `xml:"ApiResponse"`
	Status          string   `xml:"Status,attr"`
	CommandResponse struct {
		DomainCheckResult struct {
			Domain    string `xml:"Domain,attr"`
			Available bool   `xml:"Available,attr"`
		} `xml:"DomainCheckResult"`
	} `xml:"CommandResponse"`
}

type whoisResponse struct {
	CreateDate string `json:"create_date"`
}

// CheckAvailability never returns an error: registrar failure falls back to
// WHOIS, and WHOIS failure falls back to "assume available".
func (c *Client) CheckAvailability(ctx context.Context, domain string) CheckResult {
	result, err := c.checkPrimary(ctx, domain)
	if err == nil {
		return result
	}
	c.logger.Warn("registrar check failed, falling back to whois",
		zap.String("domain", domain), zap.Error(err))

	result, err = c.checkWhois(ctx, domain)
	if err == nil {
		return result
	}
	c.logger.Warn("whois fallback failed, assuming available",
		zap.String("domain", domain), zap.Error(err))

	return CheckResult{Available: true, Domain: domain, PriceHint: DefaultDomainPrice}
}

func (c *Client) checkPrimary(ctx context.Context, domain string) (CheckResult, error) {
	if c.apiUser == "" || c.apiKey == "" {
		return CheckResult{}, fmt.Errorf("registrar credentials not configured")
	}

	params := url.Values{}
	params.Set("ApiUser", c.apiUser)
	params.Set("ApiKey", c.apiKey)
	params.Set("UserName", c.apiUser)
	params.Set("Command", "namecheap.domains.check")
	params.Set("ClientIp", "127.0.0.1")
	params.Set("DomainList", domain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return CheckResult{}, fmt.Errorf("building registrar request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return CheckResult{}, fmt.Errorf("calling registrar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return CheckResult{}, fmt.Errorf("registrar returned status %d", resp.StatusCode)
	}

	var decoded apiResponse
	if err := xml.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return CheckResult{}, fmt.Errorf("decoding registrar response: %w", err)
	}

	if decoded.Status != "OK" {
		return CheckResult{}, fmt.Errorf("registrar response status %q", decoded.Status)
	}

	available := decoded.CommandResponse.DomainCheckResult.Available
	result := CheckResult{Available: available, Domain: domain}
	if available {
		result.PriceHint = DefaultDomainPrice
	}
	return result, nil
}

// checkWhois treats the presence of a registration creation date as proof
// the domain is taken.
func (c *Client) checkWhois(ctx context.Context, domain string) (CheckResult, error) {
	params := url.Values{}
	params.Set("apiKey", "free")
	params.Set("whois", domain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.whoisURL+"?"+params.Encode(), nil)
	if err != nil {
		return CheckResult{}, fmt.Errorf("building whois request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return CheckResult{}, fmt.Errorf("calling whois: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return CheckResult{}, fmt.Errorf("whois returned status %d", resp.StatusCode)
	}

	var decoded whoisResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return CheckResult{}, fmt.Errorf("decoding whois response: %w", err)
	}

	available := decoded.CreateDate == ""
	result := CheckResult{Available: available, Domain: domain}
	if available {
		result.PriceHint = DefaultDomainPrice
	}
	return result, nil
}
