package book

import (
	"context"

	"github.com/google/uuid"
)

// CoverStorage is the external image-upload collaborator. Upload takes
// the raw client payload and returns a stable public URL.
type CoverStorage interface {
	UploadCover(ctx context.Context, key string, payload string) (string, error)
}

// CoverCleaner schedules best-effort removal of a stored cover. The
// service logs and swallows enqueue failures; a deleted book may leave
// an orphaned image behind, which is accepted.
type CoverCleaner interface {
	EnqueueDeleteCover(ctx context.Context, coverURL string) error
}

// Service defines business logic for the book domain.
type Service interface {
	// Create uploads the cover and persists a new book owned by ownerID.
	Create(ctx context.Context, ownerID uuid.UUID, req CreateBookRequest) (*Book, error)

	// List returns the feed page. page/limit arrive already normalized
	// by the handler (>= 1).
	List(ctx context.Context, page, limit int) (*ListBooksResponse, error)

	// ListByOwner returns all of one owner's books, newest first,
	// without pagination.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Book, error)

	// Delete removes a book. Existence is checked before ownership:
	// ErrBookNotFound for a missing book, ErrNotOwner when principalID
	// is not the owner.
	Delete(ctx context.Context, id, principalID uuid.UUID) error
}
