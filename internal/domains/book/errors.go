package book

import "errors"

var (
	// ErrBookNotFound maps to a 404 with "Book not found.".
	ErrBookNotFound = errors.New("book not found")

	// ErrAuthorMissing is returned when a create/update references an
	// author id that does not exist; maps to a 422 on author_id.
	ErrAuthorMissing = errors.New("author does not exist")
)
