package author

import (
	"context"

	"library-backend/internal/shared/resource"
)

// Service is the author business-logic contract. Read operations go
// through the versioned cache; writes invalidate it.
type Service interface {
	List(ctx context.Context, params resource.ListParams, page int) (*resource.ListResult, error)
	Get(ctx context.Context, id int64, fields string) (map[string]interface{}, error)
	Create(ctx context.Context, req *StoreAuthorRequest) (*Author, error)
	Update(ctx context.Context, id int64, req *UpdateAuthorRequest) (*Author, error)
	Delete(ctx context.Context, id int64) error

	// Books lists the author's books at a fixed page size of 20.
	// Returns ErrAuthorNotFound or ErrNoBooksFound for the two
	// distinct 404 paths.
	Books(ctx context.Context, authorID int64, page int) (*resource.ListResult, error)
}
