package author

import (
	"fmt"
	"time"

	"library-backend/internal/shared"
	"library-backend/internal/shared/resource"
)

// Author entity. IDs are database-assigned and immutable.
type Author struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Bio       string      `json:"bio"`
	BirthDate shared.Date `json:"birth_date"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Resource parametrizes the shared list/show machinery for authors.
var Resource = resource.Definition{
	Singular:        "author",
	Plural:          "authors",
	Columns:         []string{"id", "name", "bio", "birth_date", "created_at", "updated_at"},
	SortFields:      []string{"id", "created_at", "name"},
	SearchColumns:   [2]string{"name", "bio"},
	NotFoundMessage: "Author not found.",
}

// Cache TTLs.
const (
	ListTTL  = 5 * time.Minute
	ItemTTL  = time.Hour
	BooksTTL = time.Hour
)

// BooksPerPage is the fixed page size of the author's-books listing.
const BooksPerPage = 20

// BooksKey is the cache key of one page of an author's books.
func BooksKey(authorID int64, page int) string {
	return fmt.Sprintf("author_books_%d_page_%d", authorID, page)
}

// BooksKeyPattern matches every cached books page of one author.
func BooksKeyPattern(authorID int64) string {
	return fmt.Sprintf("author_books_%d_*", authorID)
}
