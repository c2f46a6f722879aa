package book

import (
	"time"

	"library-backend/internal/shared"
	"library-backend/internal/shared/resource"
)

// Book entity. author_id always references an existing author; the
// foreign key is ON DELETE RESTRICT.
type Book struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	PublishDate shared.Date `json:"publish_date"`
	AuthorID    int64       `json:"author_id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// AuthorRef is the eager-loaded author embedded in book responses.
type AuthorRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Resource parametrizes the shared list/show machinery for books.
// DateColumn enables the publish_date_from/publish_date_to range
// filter on the list endpoint.
var Resource = resource.Definition{
	Singular:        "book",
	Plural:          "books",
	Columns:         []string{"id", "title", "description", "publish_date", "author_id", "created_at", "updated_at"},
	SortFields:      []string{"id", "title", "publish_date"},
	SearchColumns:   [2]string{"title", "description"},
	DateColumn:      "publish_date",
	NotFoundMessage: "Book not found.",
}

// Cache TTLs.
const (
	ListTTL = 5 * time.Minute
	ItemTTL = time.Hour
)
