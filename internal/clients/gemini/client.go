package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"
)

// Default model identifiers.
const (
	DefaultTextModel  = "gemini-3-flash-preview"
	DefaultImageModel = "gemini-2.5-flash-image"
	DefaultVideoModel = "veo-3.1-fast-generate-preview"
)

var (
	// ErrNotConfigured is returned by every call when no API key is set.
	ErrNotConfigured = errors.New("GEMINI_API_KEY is not configured")
	// ErrEmptyResponse is returned when the model produced no usable candidate.
	ErrEmptyResponse = errors.New("generative API returned an empty response")
	// ErrNoImage is returned when an image request yields no inline image data.
	ErrNoImage = errors.New("no image generated")
)

// Config holds the credentials and model selection.
type Config struct {
	APIKey     string
	TextModel  string
	ImageModel string
	VideoModel string
	// BaseURL overrides the Gemini endpoint; empty uses the SDK default.
	BaseURL    string
	HTTPClient *http.Client
}

// Client wraps the Gemini SDK for structured text, image and video generation.
// The SDK client is created lazily so a missing key only fails the calls that need it.
type Client struct {
	cfg  Config
	http *http.Client

	once    sync.Once
	api     *genai.Client
	initErr error
}

// New builds a client; it never fails, configuration problems surface per call.
func New(cfg Config) *Client {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.TextModel == "" {
		cfg.TextModel = DefaultTextModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}
	if cfg.VideoModel == "" {
		cfg.VideoModel = DefaultVideoModel
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{cfg: cfg, http: httpClient}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.cfg.APIKey != ""
}

func (c *Client) client(ctx context.Context) (*genai.Client, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}
	c.once.Do(func() {
		cc := &genai.ClientConfig{
			APIKey:     c.cfg.APIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: c.http,
		}
		if c.cfg.BaseURL != "" {
			cc.HTTPOptions = genai.HTTPOptions{BaseURL: c.cfg.BaseURL}
		}
		c.api, c.initErr = genai.NewClient(ctx, cc)
	})
	if c.initErr != nil {
		return nil, fmt.Errorf("create genai client: %w", c.initErr)
	}
	return c.api, nil
}

// GenerateJSON asks the text model for output constrained by schema and returns the raw JSON text.
func (c *Client) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	api, err := c.client(ctx)
	if err != nil {
		return "", err
	}
	resp, err := api.Models.GenerateContent(ctx, c.cfg.TextModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// GenerateImage renders a square illustration of subject and returns it as a data URL.
func (c *Client) GenerateImage(ctx context.Context, subject string) (string, error) {
	api, err := c.client(ctx)
	if err != nil {
		return "", err
	}
	prompt := fmt.Sprintf("High quality, cute, artistic photo of %s", strings.TrimSpace(subject))
	resp, err := api.Models.GenerateContent(ctx, c.cfg.ImageModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: "1:1"},
	})
	if err != nil {
		return "", fmt.Errorf("generate image: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrNoImage
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		mime := part.InlineData.MIMEType
		if mime == "" {
			mime = "image/png"
		}
		return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(part.InlineData.Data)), nil
	}
	return "", ErrNoImage
}

// StatusCode extracts the HTTP status of a Gemini API error, or 0.
func StatusCode(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code
	}
	return 0
}

// OpenDownload streams a generated asset, authenticating with the server key.
// The caller closes the returned body.
func (c *Client) OpenDownload(ctx context.Context, uri string) (io.ReadCloser, string, error) {
	if !c.Enabled() {
		return nil, "", ErrNotConfigured
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build download request: %w", err)
	}
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download generated asset: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_ = resp.Body.Close()
		return nil, "", fmt.Errorf("download generated asset: status %s", resp.Status)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "video/mp4"
	}
	return resp.Body, contentType, nil
}
