package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"wikiflow-server/internal/domain"
	"wikiflow-server/internal/repository"

	"github.com/google/uuid"
)

// ChangeFeed receives collection-change events for connected clients.
// Implementations must not block.
type ChangeFeed interface {
	Broadcast(event string, payload interface{})
}

const (
	EventDocumentSaved   = "document_saved"
	EventDocumentDeleted = "document_deleted"
	EventProjectSaved    = "project_saved"
)

type DocumentService struct {
	repo repository.DocumentRepository
	feed ChangeFeed
}

func NewDocumentService(repo repository.DocumentRepository, feed ChangeFeed) *DocumentService {
	return &DocumentService{
		repo: repo,
		feed: feed,
	}
}

// List returns the full stored collection, seeding the store on first run.
// The bootstrap is idempotent: the seed is written once and subsequent calls
// read it back.
func (s *DocumentService) List(ctx context.Context) ([]*domain.Document, error) {
	docs, err := s.repo.All(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			seed := repository.SeedDocuments()
			if err := s.repo.ReplaceAll(ctx, seed); err != nil {
				return nil, err
			}
			return seed, nil
		}
		return nil, err
	}
	return docs, nil
}

// Save upserts a document. An ID matching a stored record updates it: the
// pre-update content, updatedAt and author are snapshotted onto the front of
// the history before the fields are overwritten, and id, createdAt and
// createdBy are preserved. Anything else creates a fresh record at the front
// of the collection.
func (s *DocumentService) Save(ctx context.Context, actor *domain.User, req *domain.SaveDocumentRequest) (*domain.Document, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyDocument
	}
	for i := range req.Attachments {
		if err := checkAttachmentSize(req.Attachments[i].SizeBytes, req.Attachments[i].Data); err != nil {
			return nil, err
		}
	}

	docs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	accessLevel := req.AccessLevel
	if accessLevel == "" {
		accessLevel = domain.RoleViewer
	}

	now := time.Now()
	var saved *domain.Document

	if idx := indexOfDocument(docs, req.ID); idx >= 0 {
		old := docs[idx]
		if !domain.CanEdit(actor.Role, old.AccessLevel) {
			return nil, ErrForbidden
		}

		version := domain.DocVersion{
			VersionID: uuid.New().String(),
			Content:   old.Content,
			UpdatedAt: old.UpdatedAt,
			UpdatedBy: old.CreatedBy,
		}

		saved = &domain.Document{
			ID:          old.ID,
			Title:       req.Title,
			Content:     req.Content,
			Tags:        req.Tags,
			Category:    req.Category,
			CreatedBy:   old.CreatedBy,
			CreatedAt:   old.CreatedAt,
			UpdatedAt:   now,
			History:     append([]domain.DocVersion{version}, old.History...),
			AccessLevel: accessLevel,
			Attachments: req.Attachments,
		}
		docs[idx] = saved
	} else {
		if actor.Role == domain.RoleViewer {
			return nil, ErrForbidden
		}

		saved = &domain.Document{
			ID:          uuid.New().String(),
			Title:       req.Title,
			Content:     req.Content,
			Tags:        req.Tags,
			Category:    req.Category,
			CreatedBy:   actor.Name,
			CreatedAt:   now,
			UpdatedAt:   now,
			History:     []domain.DocVersion{},
			AccessLevel: accessLevel,
			Attachments: req.Attachments,
		}
		docs = append([]*domain.Document{saved}, docs...)
	}

	if err := s.repo.ReplaceAll(ctx, docs); err != nil {
		return nil, err
	}

	if s.feed != nil {
		s.feed.Broadcast(EventDocumentSaved, saved)
	}

	return saved, nil
}

// Get returns a single document by id.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	docs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if idx := indexOfDocument(docs, id); idx >= 0 {
		return docs[idx], nil
	}
	return nil, ErrDocumentNotFound
}

// Delete removes a document by id and rewrites the collection.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	docs, err := s.List(ctx)
	if err != nil {
		return err
	}

	remaining := make([]*domain.Document, 0, len(docs))
	for _, d := range docs {
		if d.ID != id {
			remaining = append(remaining, d)
		}
	}
	if len(remaining) == len(docs) {
		return ErrDocumentNotFound
	}

	if err := s.repo.ReplaceAll(ctx, remaining); err != nil {
		return err
	}

	if s.feed != nil {
		s.feed.Broadcast(EventDocumentDeleted, map[string]string{"id": id})
	}

	return nil
}

// AddAttachment appends an uploaded file to a document. The 500 KiB cap is
// enforced before the collection is touched; oversize uploads leave the
// attachment list unchanged.
func (s *DocumentService) AddAttachment(ctx context.Context, actor *domain.User, docID string, upload *domain.AttachmentUpload) (*domain.Document, error) {
	raw, err := base64.StdEncoding.DecodeString(upload.Data)
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > domain.MaxAttachmentSize {
		return nil, ErrAttachmentTooLarge
	}

	doc, err := s.Get(ctx, docID)
	if err != nil {
		return nil, err
	}

	attachment := domain.Attachment{
		ID:         uuid.New().String(),
		Name:       upload.Name,
		MimeType:   upload.MimeType,
		SizeBytes:  int64(len(raw)),
		Data:       upload.Data,
		UploadedAt: time.Now(),
	}

	req := &domain.SaveDocumentRequest{
		ID:          doc.ID,
		Title:       doc.Title,
		Content:     doc.Content,
		Tags:        doc.Tags,
		Category:    doc.Category,
		AccessLevel: doc.AccessLevel,
		Attachments: append(append([]domain.Attachment{}, doc.Attachments...), attachment),
	}

	return s.Save(ctx, actor, req)
}

func checkAttachmentSize(sizeBytes int64, data string) error {
	if sizeBytes > domain.MaxAttachmentSize {
		return ErrAttachmentTooLarge
	}
	// The decoded length is what lands in storage, not the base64 text.
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return err
	}
	if int64(len(raw)) > domain.MaxAttachmentSize {
		return ErrAttachmentTooLarge
	}
	return nil
}

func indexOfDocument(docs []*domain.Document, id string) int {
	if id == "" {
		return -1
	}
	for i, d := range docs {
		if d.ID == id {
			return i
		}
	}
	return -1
}
