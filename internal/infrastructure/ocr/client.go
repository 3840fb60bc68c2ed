// Package ocr calls the external OCR service that reads text from images.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"

	gatepassapp "github.com/zumech/backend/internal/application/gatepass"
	"github.com/zumech/backend/internal/infrastructure/logger"
)

var _ gatepassapp.OCREngine = (*Client)(nil)

// Client posts images as multipart "file" uploads to an OCR endpoint that
// answers {"text": "..."}
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(cl *Client) {
		cl.logger = l
	}
}

// NewClient creates a client for the full endpoint URL, e.g.
// http://ocr:8000/ocr
func NewClient(endpoint string, timeout time.Duration, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("ocr endpoint is required")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type recognizeResponse struct {
	Text  string `json:"text"`
	Error string `json:"error"`
}

// Recognize returns the text found in image
func (c *Client) Recognize(ctx context.Context, image []byte, filename string) (string, error) {
	if filename == "" {
		filename = "image.png"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read ocr response: %w", err)
	}

	var parsed recognizeResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("ocr service returned status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("failed to parse ocr response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != "" {
			return "", fmt.Errorf("ocr service returned status %d: %s", resp.StatusCode, parsed.Error)
		}
		return "", fmt.Errorf("ocr service returned status %d", resp.StatusCode)
	}

	logger.For(ctx, c.logger).Debug("OCR complete",
		zap.Int("image_bytes", len(image)),
		zap.Int("text_len", len(parsed.Text)),
		zap.Duration("duration", time.Since(start)),
	)
	return parsed.Text, nil
}
