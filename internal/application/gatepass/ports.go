package gatepass

import (
	"context"
	"io"
)

// CompletionRequest is one single-turn call to a language model. Image is
// optional; when set the model must accept image input.
type CompletionRequest struct {
	System      string
	Text        string
	Image       []byte
	MimeType    string
	MaxTokens   int
	Temperature float64
}

// LanguageModel returns the text reply for a prompt
type LanguageModel interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Provider names the backend for logs and metrics
	Provider() string
}

// OCREngine turns an image into plain text
type OCREngine interface {
	Recognize(ctx context.Context, image []byte, filename string) (string, error)
}

// PutOptions control how an object is written
type PutOptions struct {
	ContentType  string
	CacheControl string
	// NoOverwrite fails with ALREADY_EXISTS when the key is taken
	NoOverwrite bool
}

// ObjectStore keeps uploaded files
type ObjectStore interface {
	PutObject(ctx context.Context, key string, body io.Reader, size int64, opts PutOptions) error
	// ObjectURL returns a URL the client can download key from
	ObjectURL(ctx context.Context, key string) (string, error)
}
