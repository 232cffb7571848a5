package book

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")

	// ErrNotOwner: the authenticated principal does not own the book.
	// Checked only after existence, so a 404 never leaks into a 401.
	ErrNotOwner = errors.New("not the book owner")
)
