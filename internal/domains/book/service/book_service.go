package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookworm-backend/internal/domains/book"
)

type bookService struct {
	repo    book.Repository
	storage book.CoverStorage
	cleaner book.CoverCleaner
}

func NewBookService(repo book.Repository, storage book.CoverStorage, cleaner book.CoverCleaner) book.Service {
	return &bookService{
		repo:    repo,
		storage: storage,
		cleaner: cleaner,
	}
}

func (s *bookService) Create(ctx context.Context, ownerID uuid.UUID, req book.CreateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()

	// Upload before the insert: a failed upload must not leave a book
	// row pointing at nothing.
	coverURL, err := s.storage.UploadCover(ctx, fmt.Sprintf("covers/%s.jpg", id), req.Image)
	if err != nil {
		return nil, fmt.Errorf("upload cover: %w", err)
	}

	now := time.Now()
	b := &book.Book{
		ID:        id,
		Title:     req.Title,
		Caption:   req.Caption,
		Rating:    req.Rating,
		Image:     coverURL,
		UserID:    ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *bookService) List(ctx context.Context, page, limit int) (*book.ListBooksResponse, error) {
	offset := (page - 1) * limit

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	books, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	return &book.ListBooksResponse{
		Books:       books,
		CurrentPage: page,
		TotalBooks:  total,
		TotalPages:  (total + limit - 1) / limit,
	}, nil
}

func (s *bookService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]book.Book, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *bookService) Delete(ctx context.Context, id, principalID uuid.UUID) error {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	// Ownership check runs only after existence is confirmed.
	if b.UserID != principalID {
		return book.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Best-effort cover cleanup. The deletion already succeeded; a
	// failed enqueue leaves an orphaned image, which is accepted.
	if b.Image != "" {
		if err := s.cleaner.EnqueueDeleteCover(ctx, b.Image); err != nil {
			log.Error().
				Err(err).
				Str("book_id", id.String()).
				Msg("Failed to enqueue cover cleanup")
		}
	}

	return nil
}
