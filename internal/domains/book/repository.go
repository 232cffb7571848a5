package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the book domain.
type Repository interface {
	// Create inserts a new book.
	Create(ctx context.Context, b *Book) error

	// FindByID retrieves a book by UUID.
	// Returns ErrBookNotFound if not exists.
	FindByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// List returns one window of the feed, newest first, joined with
	// owner summaries.
	List(ctx context.Context, offset, limit int) ([]BookWithOwner, error)

	// Count returns the size of the full collection.
	Count(ctx context.Context) (int, error)

	// ListByOwner returns all books of one owner, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Book, error)

	// Delete removes a book by ID.
	// Returns ErrBookNotFound if nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
