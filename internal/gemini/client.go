// Package gemini is a hand-rolled client for the Gemini generateContent REST
// API, covering the two remote capabilities the app consumes: marketing copy
// synthesis and product image synthesis.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/ads"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/dataurl"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	contentModel = "gemini-3-flash-preview"
	imageModel   = "gemini-2.5-flash-image"

	defaultTimeout = 120 * time.Second
)

var (
	// ErrMissingAPIKey means the client was constructed without a credential.
	// Detected before any network call.
	ErrMissingAPIKey = errors.New("gemini: missing API key")

	// ErrNoImageData means the image endpoint answered but carried no inline
	// image payload.
	ErrNoImageData = errors.New("gemini: no image data in response")

	// ErrMalformedContent means the copy endpoint answered but the body was
	// not the expected {headline, body, hashtags} object.
	ErrMalformedContent = errors.New("gemini: malformed ad content response")
)

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the given key. An empty key is refused up
// front so the caller can surface a configuration problem instead of a
// network failure.
func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := os.Getenv("GEMINI_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

// NewClientFromEnv reads GEMINI_API_KEY.
func NewClientFromEnv() (*Client, error) {
	return NewClient(os.Getenv("GEMINI_API_KEY"))
}

// SetBaseURL points the client at a different API host. Used by tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
}

type geminiRequest struct {
	Contents          []geminiContent   `json:"contents"`
	SystemInstruction *geminiContent    `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type generationConfig struct {
	ResponseModalities []string     `json:"responseModalities,omitempty"`
	ResponseMimeType   string       `json:"responseMimeType,omitempty"`
	ResponseSchema     *schema      `json:"responseSchema,omitempty"`
	ImageConfig        *imageConfig `json:"imageConfig,omitempty"`
}

type schema struct {
	Type       string             `json:"type"`
	Properties map[string]*schema `json:"properties,omitempty"`
	Items      *schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

type geminiResponse struct {
	Candidates []candidate `json:"candidates"`
	Error      *apiError   `json:"error,omitempty"`
}

type candidate struct {
	Content contentResponse `json:"content"`
}

type contentResponse struct {
	Parts []partResponse `json:"parts"`
}

type partResponse struct {
	Text       string          `json:"text,omitempty"`
	InlineData *inlineDataResp `json:"inlineData,omitempty"`
}

type inlineDataResp struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// GenerateImage asks the image model for a studio-style product shot and
// returns it as a data URI.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{
				{Text: fmt.Sprintf("Commercial photography of %s, high-end studio lighting, 8k, professional product shot, minimalist background, no text.", prompt)},
			}},
		},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
			ImageConfig: &imageConfig{
				AspectRatio: "1:1",
			},
		},
	}

	resp, err := c.doGenerate(ctx, imageModel, req)
	if err != nil {
		return "", err
	}

	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				mimeType := part.InlineData.MimeType
				if mimeType == "" {
					mimeType = "image/png"
				}
				return fmt.Sprintf("data:%s;base64,%s", mimeType, part.InlineData.Data), nil
			}
		}
	}

	return "", ErrNoImageData
}

// GenerateAdContent asks the copy model for headline/body/hashtags. The
// product image, when present, rides along as inline JPEG data.
func (c *Client) GenerateAdContent(ctx context.Context, productImage string, brand ads.BrandProfile, style, userPrompt string) (ads.AdContent, error) {
	parts := []geminiPart{
		{Text: buildContentPrompt(brand, style, userPrompt)},
	}
	if productImage != "" {
		parts = append(parts, geminiPart{
			InlineData: &inlineData{
				MimeType: "image/jpeg",
				Data:     dataurl.RawBase64(productImage),
			},
		})
	}

	req := geminiRequest{
		Contents: []geminiContent{
			{Parts: parts},
		},
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemInstructionFor(style)}},
		},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: &schema{
				Type: "OBJECT",
				Properties: map[string]*schema{
					"headline": {Type: "STRING"},
					"body":     {Type: "STRING"},
					"hashtags": {Type: "ARRAY", Items: &schema{Type: "STRING"}},
				},
				Required: []string{"headline", "body", "hashtags"},
			},
		},
	}

	resp, err := c.doGenerate(ctx, contentModel, req)
	if err != nil {
		return ads.AdContent{}, err
	}

	text := firstText(resp)
	if text == "" {
		return ads.AdContent{}, fmt.Errorf("%w: empty response text", ErrMalformedContent)
	}

	// Pointer fields so an absent key is distinguishable from an empty one.
	var payload struct {
		Headline *string  `json:"headline"`
		Body     *string  `json:"body"`
		Hashtags []string `json:"hashtags"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return ads.AdContent{}, fmt.Errorf("%w: %v", ErrMalformedContent, err)
	}
	if payload.Headline == nil || payload.Body == nil || payload.Hashtags == nil {
		return ads.AdContent{}, fmt.Errorf("%w: missing required field", ErrMalformedContent)
	}

	return ads.AdContent{
		Headline: *payload.Headline,
		Body:     *payload.Body,
		Hashtags: payload.Hashtags,
	}, nil
}

func (c *Client) doGenerate(ctx context.Context, model string, req geminiRequest) (*geminiResponse, error) {
	jsonBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	slog.Debug("calling gemini", "model", model, "request_bytes", len(jsonBody))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if geminiResp.Error != nil {
		return nil, fmt.Errorf("API error: %s", geminiResp.Error.Message)
	}

	return &geminiResp, nil
}

func firstText(resp *geminiResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}
