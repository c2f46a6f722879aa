package author

import (
	"context"

	"library-backend/internal/shared/resource"
)

// Repository is the author data-access contract.
type Repository interface {
	// List returns projected rows plus the total count for pagination.
	List(ctx context.Context, f resource.ListFilter) ([]map[string]interface{}, int, error)

	// GetRow fetches one author with a field projection.
	GetRow(ctx context.Context, id int64, fields []string) (map[string]interface{}, error)

	// GetAuthor loads the full entity for update/delete flows.
	GetAuthor(ctx context.Context, id int64) (*Author, error)

	Create(ctx context.Context, req *StoreAuthorRequest) (*Author, error)
	Update(ctx context.Context, a *Author) (*Author, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// BookLister is the slice of the book repository the author service
// needs for the /authors/{id}/books sub-resource. Declared here so the
// author domain does not import the book domain.
type BookLister interface {
	ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]map[string]interface{}, int, error)
}
