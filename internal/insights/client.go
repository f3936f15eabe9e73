package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"rebel-hub/internal/domain"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-3-flash-preview"
)

// Recommendation is one strategic suggestion for the dashboard.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"`
}

// SupportAnalysis is the triage produced for a reported support issue.
type SupportAnalysis struct {
	Severity       string   `json:"severity"`
	TechnicalBrief string   `json:"technicalBrief"`
	Suggestions    []string `json:"suggestions"`
}

// Client calls the Gemini generateContent REST endpoint. Every method is
// best effort: transport, status, and decode failures all degrade to empty
// results so the storefront keeps working without the collaborator.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(apiKey, baseURL, model string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// SupplyChainInsights asks for strategic recommendations over a catalog
// snapshot. At most five products are sent to keep the prompt small.
func (c *Client) SupplyChainInsights(ctx context.Context, products []domain.Product, role string) []Recommendation {
	if !c.Enabled() {
		return nil
	}
	if len(products) > 5 {
		products = products[:5]
	}

	inventory, err := json.Marshal(products)
	if err != nil {
		c.logger.Warn("failed to encode inventory snapshot", zap.Error(err))
		return nil
	}

	prompt := fmt.Sprintf(
		"As a supply chain AI assistant for a %s, analyze this data: %s. "+
			"Provide 3 concise strategic recommendations for bulk buying or distribution management. "+
			"Format as a JSON object with an array of recommendations, each with title, description and urgency.",
		role, inventory)

	var out struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	if err := c.generate(ctx, prompt, &out); err != nil {
		c.logger.Warn("supply chain insights unavailable", zap.Error(err))
		return nil
	}
	return out.Recommendations
}

// AnalyzeSupportIssue triages a reported problem. Returns nil when the
// collaborator is unreachable or returns garbage.
func (c *Client) AnalyzeSupportIssue(ctx context.Context, category, description string) *SupportAnalysis {
	if !c.Enabled() {
		return nil
	}

	prompt := fmt.Sprintf(
		"You are a Senior Technical Support Lead. A retailer has reported a problem:\n"+
			"Category: %s\nDescription: %s\n\n"+
			"Tasks:\n"+
			"1. Provide a \"severity\" (Low, Medium, High, Critical).\n"+
			"2. Generate a \"technicalBrief\" for the engineering team.\n"+
			"3. Give 2 \"suggestions\", immediate steps the retailer can take.\n\n"+
			"Return as a JSON object with keys severity, technicalBrief and suggestions.",
		category, description)

	var out SupportAnalysis
	if err := c.generate(ctx, prompt, &out); err != nil {
		c.logger.Warn("support analysis unavailable", zap.Error(err))
		return nil
	}
	if out.Severity == "" {
		return nil
	}
	return &out
}

type promptPart struct {
	Text string `json:"text"`
}

type promptContent struct {
	Parts []promptPart `json:"parts"`
}

type generateRequest struct {
	Contents         []promptContent `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string `json:"response_mime_type"`
	} `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content promptContent `json:"content"`
	} `json:"candidates"`
}

// generate posts a prompt and decodes the model's JSON answer into result.
func (c *Client) generate(ctx context.Context, prompt string, result any) error {
	reqBody := generateRequest{
		Contents: []promptContent{{Parts: []promptPart{{Text: prompt}}}},
	}
	reqBody.GenerationConfig.ResponseMimeType = "application/json"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("empty response")
	}

	if err := json.Unmarshal([]byte(gr.Candidates[0].Content.Parts[0].Text), result); err != nil {
		return fmt.Errorf("failed to decode model output: %w", err)
	}
	return nil
}
