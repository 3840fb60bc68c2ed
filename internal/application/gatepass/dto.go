package gatepass

import (
	"io"
	"time"

	"github.com/zumech/backend/internal/domain/gatepass"
)

// ExtractRequest is the body of POST /extract
type ExtractRequest struct {
	// Base64Image may carry a data URL prefix
	Base64Image string  `json:"base64Image"`
	MimeType    string  `json:"mimeType" binding:"max=100"`
	FileURL     *string `json:"fileUrl" binding:"omitempty,max=2048"`
}

// ExtractResponse is the structured result of an extraction
type ExtractResponse struct {
	DocumentNo *string         `json:"documentNo"`
	Date       *string         `json:"date"`
	FileURL    *string         `json:"fileUrl"`
	Items      []gatepass.Item `json:"items"`
}

// NormalizeRequest is the body of POST /normalize
type NormalizeRequest struct {
	Raw string `json:"raw"`
}

// OCRRequest is the body of POST /ocr
type OCRRequest struct {
	Base64Image string `json:"base64Image"`
}

// OCRResponse carries recognized text
type OCRResponse struct {
	Text string `json:"text"`
}

// ListExtractionsRequest carries the GET /extractions query
type ListExtractionsRequest struct {
	GP    string `form:"gp"`
	Limit int    `form:"limit"`
}

// ExtractionResponse is a stored extraction
type ExtractionResponse struct {
	ID           int64           `json:"id"`
	DocumentNo   *string         `json:"document_no"`
	DocumentDate *string         `json:"document_date"`
	Items        []gatepass.Item `json:"items"`
	URL          *string         `json:"URL"`
	CreatedAt    time.Time       `json:"created_at"`
}

// UploadInput is a file received through POST /upload
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadResponse locates a stored upload
type UploadResponse struct {
	Path    string `json:"path"`
	FileURL string `json:"fileUrl"`
}

// ToExtractionResponse converts a domain extraction
func ToExtractionResponse(e *gatepass.Extraction) ExtractionResponse {
	items := e.Items
	if items == nil {
		items = []gatepass.Item{}
	}
	return ExtractionResponse{
		ID:           e.ID,
		DocumentNo:   e.DocumentNo,
		DocumentDate: e.DocumentDate,
		Items:        items,
		URL:          e.URL,
		CreatedAt:    e.CreatedAt,
	}
}
