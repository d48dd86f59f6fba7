package domain

import (
	"errors"
	"time"
)

var ErrDocumentNotFound = errors.New("document not found")

// Document is metadata for a stored file. The binary payload lives at
// FilePath and is not modelled here.
type Document struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ClientID  *string   `json:"clientId,omitempty"`
	ProjectID *string   `json:"projectId,omitempty"`
	InvoiceID *string   `json:"invoiceId,omitempty"`
	QuoteID   *string   `json:"quoteId,omitempty"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // invoice, quote, report, contract, ...
	FilePath  string    `json:"filePath"`
	FileSize  *int64    `json:"fileSize,omitempty"`
	MimeType  string    `json:"mimeType,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
