package book

import (
	"context"

	"library-backend/internal/shared/resource"
)

// Service is the book business-logic contract. Read operations go
// through the versioned cache; writes invalidate it and the cached
// book pages of the affected author.
type Service interface {
	List(ctx context.Context, params resource.ListParams, page int) (*resource.ListResult, error)
	Get(ctx context.Context, id int64, fields string) (map[string]interface{}, error)
	Create(ctx context.Context, req *StoreBookRequest) (*Book, error)
	Update(ctx context.Context, id int64, req *UpdateBookRequest) (*Book, error)
	Delete(ctx context.Context, id int64) error
}
