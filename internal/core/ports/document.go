package ports

import (
	"context"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
)

// DocumentFilter narrows a document listing. Empty fields match everything.
type DocumentFilter struct {
	Type      string
	ClientID  string
	ProjectID string
}

// CreateDocumentInput carries the fields accepted when registering a document.
type CreateDocumentInput struct {
	UserID    string
	ClientID  *string
	ProjectID *string
	InvoiceID *string
	QuoteID   *string
	Name      string
	Type      string
	FilePath  string
	FileSize  *int64
	MimeType  string
}

// DocumentRepository defines persistence operations for document metadata.
type DocumentRepository interface {
	ListByUser(ctx context.Context, userID string, f DocumentFilter) ([]*domain.Document, error)
	Create(ctx context.Context, d *domain.Document) error
	Delete(ctx context.Context, id, userID string) error
}

// DocumentService defines document use cases.
type DocumentService interface {
	List(ctx context.Context, userID string, f DocumentFilter) ([]*domain.Document, error)
	Create(ctx context.Context, in CreateDocumentInput) (*domain.Document, error)
	Delete(ctx context.Context, id, userID string) error
}
