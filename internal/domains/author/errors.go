package author

import "errors"

var (
	// ErrAuthorNotFound maps to a 404 with "Author not found.".
	ErrAuthorNotFound = errors.New("author not found")

	// ErrNoBooksFound is returned when an existing author has zero
	// books. Kept distinct from ErrAuthorNotFound: both map to 404
	// but with different messages.
	ErrNoBooksFound = errors.New("no books found for this author")
)
