package book

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalog entry posted by a user. The owner reference is set
// once at creation and never reassigned; created_at is the sole
// ordering key for listings.
type Book struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Caption   string    `json:"caption" db:"caption"`
	Rating    int       `json:"rating" db:"rating"`
	Image     string    `json:"image" db:"image_url"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// OwnerSummary is the slice of the owner embedded in feed listings
// (the original's populate("user", "username profileImage")).
type OwnerSummary struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	ProfileImage string    `json:"profile_image"`
}

// BookWithOwner is a feed row: the book plus its owner summary.
type BookWithOwner struct {
	Book
	User OwnerSummary `json:"user"`
}
