package service

import (
	"context"
	"fmt"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/shared/resource"
	"library-backend/pkg/cache"
	"library-backend/pkg/logger"
)

type bookService struct {
	repo  book.Repository
	cache cache.Cache
}

func NewBookService(repo book.Repository, c cache.Cache) book.Service {
	return &bookService{
		repo:  repo,
		cache: c,
	}
}

// List serves list pages through the versioned cache. A cache-layer
// failure degrades to a direct database read instead of a 500.
func (s *bookService) List(ctx context.Context, params resource.ListParams, page int) (*resource.ListResult, error) {
	key, ok := s.listKey(ctx, params, page)
	if ok {
		var cached resource.ListResult
		if found, err := s.cache.Get(ctx, key, &cached); err != nil {
			logger.Error("book list cache read failed", err)
		} else if found {
			return &cached, nil
		}
	}

	items, total, err := s.repo.List(ctx, resource.ListFilter{
		Fields:    params.ResolveFields(book.Resource),
		Search:    params.Search,
		DateFrom:  params.DateFrom,
		DateTo:    params.DateTo,
		SortField: params.SortField,
		SortOrder: params.SortOrder,
		Limit:     params.PerPage,
		Offset:    (page - 1) * params.PerPage,
	})
	if err != nil {
		return nil, err
	}

	result := &resource.ListResult{Items: items, Total: total}
	if ok {
		if err := s.cache.Set(ctx, key, result, book.ListTTL); err != nil {
			logger.Error("book list cache write failed", err)
		}
	}
	return result, nil
}

func (s *bookService) Get(ctx context.Context, id int64, fields string) (map[string]interface{}, error) {
	key := book.Resource.ItemKey(id, fields)

	var cached map[string]interface{}
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		logger.Error("book cache read failed", err)
	} else if found {
		return cached, nil
	}

	row, err := s.repo.GetRow(ctx, id, resource.ResolveFields(fields, book.Resource))
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, row, book.ItemTTL); err != nil {
		logger.Error("book cache write failed", err)
	}
	return row, nil
}

func (s *bookService) Create(ctx context.Context, req *book.StoreBookRequest) (*book.Book, error) {
	if err := s.requireAuthor(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.bumpListVersion(ctx)
	s.invalidateAuthorBooks(ctx, created.AuthorID)
	return created, nil
}

func (s *bookService) Update(ctx context.Context, id int64, req *book.UpdateBookRequest) (*book.Book, error) {
	existing, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	previousAuthor := existing.AuthorID

	if err := req.ApplyTo(existing); err != nil {
		return nil, err
	}

	if existing.AuthorID != previousAuthor {
		if err := s.requireAuthor(ctx, existing.AuthorID); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidateItem(ctx, id)
	s.bumpListVersion(ctx)
	s.invalidateAuthorBooks(ctx, previousAuthor)
	if updated.AuthorID != previousAuthor {
		s.invalidateAuthorBooks(ctx, updated.AuthorID)
	}
	return updated, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	// Load first so the owning author's cached book pages can be
	// invalidated after the delete.
	existing, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateItem(ctx, id)
	s.bumpListVersion(ctx)
	s.invalidateAuthorBooks(ctx, existing.AuthorID)
	return nil
}

func (s *bookService) requireAuthor(ctx context.Context, authorID int64) error {
	exists, err := s.repo.AuthorExists(ctx, authorID)
	if err != nil {
		return err
	}
	if !exists {
		return book.ErrAuthorMissing
	}
	return nil
}

// listKey resolves the version counter into a cache key. Returns
// ok=false when the cache layer is unavailable, disabling caching for
// this request.
func (s *bookService) listKey(ctx context.Context, params resource.ListParams, page int) (string, bool) {
	version, err := resource.Version(ctx, s.cache, book.Resource)
	if err != nil {
		logger.Error("book cache version read failed", err)
		return "", false
	}
	return book.Resource.ListKey(version, page, params), true
}

func (s *bookService) bumpListVersion(ctx context.Context) {
	if err := resource.BumpVersion(ctx, s.cache, book.Resource); err != nil {
		logger.Error("book cache version bump failed", err)
	}
}

func (s *bookService) invalidateItem(ctx context.Context, id int64) {
	if err := s.cache.DeletePattern(ctx, book.Resource.ItemKeyPattern(id)); err != nil {
		logger.Error("book cache invalidation failed", err)
	}
}

func (s *bookService) invalidateAuthorBooks(ctx context.Context, authorID int64) {
	if err := s.cache.DeletePattern(ctx, author.BooksKeyPattern(authorID)); err != nil {
		logger.Error(fmt.Sprintf("author %d books cache invalidation failed", authorID), err)
	}
}
