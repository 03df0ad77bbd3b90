package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/engr-razib/BrandingAssetGenerator/internal/brand"
)

const (
	DefaultModel      = "imagen-4.0-generate-001"
	defaultBaseURL    = "https://generativelanguage.googleapis.com"
	defaultAPIVersion = "v1beta"
	defaultMimeType   = "image/png"
)

var ErrNoImages = errors.New("API returned no images")

type Options struct {
	APIKey     string
	BaseURL    string
	APIVersion string
	Model      string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type Client struct {
	apiKey     string
	baseURL    string
	apiVersion string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	apiVersion := strings.TrimSpace(opts.APIVersion)
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		apiKey:     opts.APIKey,
		baseURL:    baseURL,
		apiVersion: apiVersion,
		model:      model,
		httpClient: opts.HTTPClient,
		logger:     logger,
	}
}

func (c *Client) Model() string {
	return c.model
}

// GenerateImage asks the configured model for a single image and returns
// its decoded bytes. Imagen models go through :predict, Gemini image
// models through :generateContent.
func (c *Client) GenerateImage(ctx context.Context, req brand.ImageRequest) ([]byte, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, errors.New("prompt is empty")
	}

	ratio := req.AspectRatio
	if ratio == "" {
		ratio = brand.DefaultAspectRatio
	}

	mimeType := strings.TrimSpace(req.MimeType)
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	count := req.Count
	if count < 1 {
		count = 1
	}

	var (
		images []image
		err    error
	)
	if isImagenModel(c.model) {
		images, err = c.predict(ctx, prompt, ratio, mimeType, count)
	} else {
		images, err = c.generateContentImage(ctx, prompt, ratio)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate image: %w", err)
	}
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	data, err := base64.StdEncoding.DecodeString(stripDataURLPrefix(images[0].Data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoImages
	}

	c.logger.Debug("image generated", "model", c.model, "aspect_ratio", string(ratio), "bytes", len(data), "mime", images[0].MimeType)
	return data, nil
}

func (c *Client) predict(ctx context.Context, prompt string, ratio brand.AspectRatio, mimeType string, count int) ([]image, error) {
	payload := predictRequest{
		Instances: []predictInstance{{Prompt: prompt}},
		Parameters: predictParameters{
			SampleCount:   count,
			AspectRatio:   string(ratio),
			OutputOptions: &outputOptions{MimeType: mimeType},
		},
	}

	var decoded predictResponse
	if err := c.post(ctx, "predict", payload, &decoded); err != nil {
		return nil, err
	}

	var images []image
	for _, p := range decoded.Predictions {
		if p.BytesBase64Encoded == "" {
			continue
		}
		mt := p.MimeType
		if mt == "" {
			mt = mimeType
		}
		images = append(images, image{Data: p.BytesBase64Encoded, MimeType: mt})
	}
	return images, nil
}

func (c *Client) generateContentImage(ctx context.Context, prompt string, ratio brand.AspectRatio) ([]image, error) {
	req := generateContentRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"IMAGE"},
			ImageConfig:        &imageConfig{AspectRatio: string(ratio)},
		},
	}

	var decoded generateContentResponse
	err := c.post(ctx, "generateContent", req, &decoded)
	if err != nil && isUnknownFieldError(err, "imageConfig") {
		c.logger.Warn("model rejected imageConfig, retrying without aspect ratio", "model", c.model)
		req.GenerationConfig.ImageConfig = nil
		err = c.post(ctx, "generateContent", req, &decoded)
	}
	if err != nil {
		return nil, err
	}
	return extractImages(decoded), nil
}

func (c *Client) post(ctx context.Context, method string, payload any, out any) error {
	if c.httpClient == nil {
		return errors.New("http client is nil")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/models/%s:%s", c.baseURL, c.apiVersion, c.model, method)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("content-type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer httpResp.Body.Close()

	rawBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode >= 400 {
		return &APIError{Status: httpResp.Status, StatusCode: httpResp.StatusCode, Body: strings.TrimSpace(string(rawBody))}
	}

	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func extractImages(resp generateContentResponse) []image {
	if len(resp.Candidates) == 0 {
		return nil
	}

	var images []image
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.InlineData != nil && p.InlineData.Data != "" {
			images = append(images, image{Data: p.InlineData.Data, MimeType: p.InlineData.MimeType})
		}
	}
	return images
}

func isImagenModel(model string) bool {
	return strings.HasPrefix(strings.ToLower(model), "imagen")
}

func stripDataURLPrefix(value string) string {
	if idx := strings.IndexByte(value, ','); idx >= 0 {
		return value[idx+1:]
	}
	return value
}

func isUnknownFieldError(err error, field string) bool {
	message := err.Error()
	return strings.Contains(message, "Unknown name") && strings.Contains(message, field)
}
