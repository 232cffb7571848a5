package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateBookRequest carries a base64 (or data-URI) image payload, the
// way the mobile client sends it.
type CreateBookRequest struct {
	Title   string `json:"title" binding:"required"`
	Caption string `json:"caption" binding:"required"`
	Image   string `json:"image" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Caption,
			validation.Required.Error("caption is required"),
			validation.Length(1, 2000),
		),
		validation.Field(&r.Image,
			validation.Required.Error("image is required"),
		),
		validation.Field(&r.Rating,
			validation.Required.Error("rating is required"),
			validation.Min(1).Error("rating must be between 1 and 5"),
			validation.Max(5).Error("rating must be between 1 and 5"),
		),
	)
}

// ListBooksResponse is the paginated feed envelope. TotalPages is
// computed from the full collection size, never clamped to the
// requested page.
type ListBooksResponse struct {
	Books       []BookWithOwner `json:"books"`
	CurrentPage int             `json:"currentPage"`
	TotalBooks  int             `json:"totalBooks"`
	TotalPages  int             `json:"totalPages"`
}
