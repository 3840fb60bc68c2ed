// Package gatepass holds structured data extracted from scanned gate-pass
// documents and the rules for turning model output into that structure.
package gatepass

import (
	"context"

	"github.com/zumech/backend/internal/domain/shared"
)

// Item is one material row read off a gate pass
type Item struct {
	IndNo               *string `json:"indNo"`
	MaterialNo          *string `json:"materialNo"`
	MaterialDescription *string `json:"materialDescription"`
	QuantityFromRemarks *string `json:"quantityFromRemarks"`
}

// IsEmpty reports whether no field was extracted
func (i Item) IsEmpty() bool {
	return i.IndNo == nil && i.MaterialNo == nil && i.MaterialDescription == nil && i.QuantityFromRemarks == nil
}

// Document is the normalized view of one extraction
type Document struct {
	DocumentNo *string `json:"documentNo"`
	Date       *string `json:"date"`
	Items      []Item  `json:"items"`
}

// Extraction is a persisted extraction result
type Extraction struct {
	shared.BaseEntity
	DocumentNo   *string
	DocumentDate *string
	Items        []Item
	RawText      string
	URL          *string
}

// Repository persists extractions
type Repository interface {
	// Insert stores an extraction
	Insert(ctx context.Context, e *Extraction) error

	// FindByDocumentPrefix lists extractions whose document number starts
	// with prefix (case-insensitive), newest first. Empty prefix lists all.
	FindByDocumentPrefix(ctx context.Context, prefix string, limit int) ([]Extraction, error)
}

// DefaultListLimit is the page size for extraction lookups
const DefaultListLimit = 10
