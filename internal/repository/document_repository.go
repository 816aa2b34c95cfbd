package repository

import (
	"context"

	"wikiflow-server/internal/domain"
)

// DocumentRepository reads and rewrites the document collection as a single
// unit. Record-level semantics (versioning, create-vs-update) live in the
// service layer.
type DocumentRepository interface {
	All(ctx context.Context) ([]*domain.Document, error)
	ReplaceAll(ctx context.Context, docs []*domain.Document) error
}

type documentRepository struct {
	store Store
}

func NewDocumentRepository(store Store) DocumentRepository {
	return &documentRepository{store: store}
}

func (r *documentRepository) All(ctx context.Context) ([]*domain.Document, error) {
	var docs []*domain.Document
	if err := r.store.Load(ctx, KeyDocuments, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) ReplaceAll(ctx context.Context, docs []*domain.Document) error {
	return r.store.Save(ctx, KeyDocuments, docs)
}
