package book

import (
	"context"

	"library-backend/internal/shared/resource"
)

// Repository is the book data-access contract.
type Repository interface {
	// List returns projected rows plus the total count for pagination.
	// Rows embed the author as {id, name} when author_id is projected.
	List(ctx context.Context, f resource.ListFilter) ([]map[string]interface{}, int, error)

	// GetRow fetches one book with a field projection, embedding the
	// author the same way List does.
	GetRow(ctx context.Context, id int64, fields []string) (map[string]interface{}, error)

	// GetBook loads the full entity for update/delete flows.
	GetBook(ctx context.Context, id int64) (*Book, error)

	Create(ctx context.Context, req *StoreBookRequest) (*Book, error)
	Update(ctx context.Context, b *Book) (*Book, error)
	Delete(ctx context.Context, id int64) error

	// AuthorExists backs the referential check on create/update.
	AuthorExists(ctx context.Context, authorID int64) (bool, error)

	// ListByAuthor serves the /authors/{id}/books sub-resource; rows
	// carry id, title, publish_date, author_id and author_name.
	ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]map[string]interface{}, int, error)
}
