package printing

import "context"

// DocumentArchive keeps a copy of every rendered document
type DocumentArchive interface {
	Archive(ctx context.Context, key string, pdf []byte) error
}

// Content types of rendered output
const (
	ContentTypePDF = "application/pdf"
	ContentTypeZIP = "application/zip"
)

// Document is a rendered file ready to be sent to a client
type Document struct {
	FileName    string
	ContentType string
	Data        []byte
}

// BillNumbersRequest lists the bills of a summary or export
type BillNumbersRequest struct {
	BillNos []string `json:"billnos" binding:"required,min=1,max=500"`
}
