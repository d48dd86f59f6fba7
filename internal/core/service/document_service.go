package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// DocumentService implements document metadata use cases. File payloads are
// referenced by path only.
type DocumentService struct {
	repo ports.DocumentRepository
	log  zerolog.Logger
}

func NewDocumentService(repo ports.DocumentRepository, log zerolog.Logger) *DocumentService {
	return &DocumentService{repo: repo, log: log}
}

func (s *DocumentService) List(ctx context.Context, userID string, f ports.DocumentFilter) ([]*domain.Document, error) {
	return s.repo.ListByUser(ctx, userID, f)
}

func (s *DocumentService) Create(ctx context.Context, in ports.CreateDocumentInput) (*domain.Document, error) {
	d := &domain.Document{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		ClientID:  in.ClientID,
		ProjectID: in.ProjectID,
		InvoiceID: in.InvoiceID,
		QuoteID:   in.QuoteID,
		Name:      in.Name,
		Type:      in.Type,
		FilePath:  in.FilePath,
		FileSize:  in.FileSize,
		MimeType:  in.MimeType,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, d); err != nil {
		s.log.Error().Err(err).Str("user_id", in.UserID).Msg("failed to create document")
		return nil, err
	}
	return d, nil
}

func (s *DocumentService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
