// Package llm generates website content through a Gemini-style
// generateContent API. Callers are expected to fall back to static
// templates when generation fails; nothing here retries.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/config"
	apperrors "github.com/chems34/IA-webgen/internal/errors"
)

type GenerationRequest struct {
	Description  string
	SiteType     string
	BusinessName string
	PrimaryColor string
}

type GeneratedSite struct {
	HTML string
	CSS  string
	JS   string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *zap.Logger
}

func NewClient(cfg config.LLMConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		logger:     logger,
	}
}

const systemPrompt = `You are an expert web developer who creates beautiful, modern, responsive websites.
Create a complete website with HTML, CSS, and JavaScript based on the user's requirements.
Use modern, clean design principles and a mobile-first responsive layout.

Return your response in this exact format:

HTML:
[Complete HTML code here]

CSS:
[Complete CSS code here]

JS:
[Complete JavaScript code here]`

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateSite asks the model for a complete site. Errors are UpstreamError
// so the caller can decide to degrade to a template.
func (c *Client) GenerateSite(ctx context.Context, req GenerationRequest) (*GeneratedSite, error) {
	if c.apiKey == "" {
		return nil, apperrors.NewUpstreamError("llm", "API key not configured", nil)
	}

	prompt := fmt.Sprintf(`%s

Create a %s website for %s.

Description: %s

Requirements:
- Modern, professional design
- Responsive layout
- Primary color: %s
- Include relevant sections for a %s site
- Add placeholder content if needed`,
		systemPrompt, req.SiteType, req.BusinessName, req.Description, req.PrimaryColor, req.SiteType)

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return nil, apperrors.NewUpstreamError("llm", "encoding request", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewUpstreamError("llm", "building request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, apperrors.NewUpstreamError("llm", "calling generateContent", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError("llm", fmt.Sprintf("generateContent returned status %d", resp.StatusCode), nil)
	}

	var decoded generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, apperrors.NewUpstreamError("llm", "decoding response", err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil, apperrors.NewUpstreamError("llm", "response has no candidates", nil)
	}

	site, err := parseSections(decoded.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		return nil, apperrors.NewUpstreamError("llm", "parsing generated sections", err)
	}
	return site, nil
}

// parseSections splits the model output on its HTML:/CSS:/JS: markers.
func parseSections(text string) (*GeneratedSite, error) {
	htmlIdx := strings.Index(text, "HTML:")
	cssIdx := strings.Index(text, "CSS:")
	jsIdx := strings.Index(text, "JS:")

	if htmlIdx < 0 || cssIdx < 0 || jsIdx < 0 || !(htmlIdx < cssIdx && cssIdx < jsIdx) {
		return nil, fmt.Errorf("output missing HTML/CSS/JS markers")
	}

	site := &GeneratedSite{
		HTML: strings.TrimSpace(text[htmlIdx+len("HTML:") : cssIdx]),
		CSS:  strings.TrimSpace(text[cssIdx+len("CSS:") : jsIdx]),
		JS:   strings.TrimSpace(text[jsIdx+len("JS:"):]),
	}

	if site.HTML == "" {
		return nil, fmt.Errorf("output has empty HTML section")
	}
	return site, nil
}
