package service

import (
	"context"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/resource"
	"library-backend/pkg/cache"
	"library-backend/pkg/logger"
)

type authorService struct {
	repo  author.Repository
	books author.BookLister
	cache cache.Cache
}

func NewAuthorService(repo author.Repository, books author.BookLister, c cache.Cache) author.Service {
	return &authorService{
		repo:  repo,
		books: books,
		cache: c,
	}
}

// List serves list pages through the versioned cache. A cache-layer
// failure degrades to a direct database read instead of a 500.
func (s *authorService) List(ctx context.Context, params resource.ListParams, page int) (*resource.ListResult, error) {
	key, ok := s.listKey(ctx, params, page)
	if ok {
		var cached resource.ListResult
		if found, err := s.cache.Get(ctx, key, &cached); err != nil {
			logger.Error("author list cache read failed", err)
		} else if found {
			return &cached, nil
		}
	}

	items, total, err := s.repo.List(ctx, resource.ListFilter{
		Fields:    params.ResolveFields(author.Resource),
		Search:    params.Search,
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
		if err := s.cache.Set(ctx, key, result, author.ListTTL); err != nil {
			logger.Error("author list cache write failed", err)
		}
	}
	return result, nil
}

func (s *authorService) Get(ctx context.Context, id int64, fields string) (map[string]interface{}, error) {
	key := author.Resource.ItemKey(id, fields)

	var cached map[string]interface{}
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		logger.Error("author cache read failed", err)
	} else if found {
		return cached, nil
	}

	row, err := s.repo.GetRow(ctx, id, resource.ResolveFields(fields, author.Resource))
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, row, author.ItemTTL); err != nil {
		logger.Error("author cache write failed", err)
	}
	return row, nil
}

func (s *authorService) Create(ctx context.Context, req *author.StoreAuthorRequest) (*author.Author, error) {
	created, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	// The new id has no single-item cache entry yet; bumping the list
	// version is the only invalidation needed.
	s.bumpListVersion(ctx)
	return created, nil
}

func (s *authorService) Update(ctx context.Context, id int64, req *author.UpdateAuthorRequest) (*author.Author, error) {
	existing, err := s.repo.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.ApplyTo(existing); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidateItem(ctx, id)
	s.bumpListVersion(ctx)
	return updated, nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateItem(ctx, id)
	s.bumpListVersion(ctx)
	return nil
}

func (s *authorService) Books(ctx context.Context, authorID int64, page int) (*resource.ListResult, error) {
	exists, err := s.repo.Exists(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, author.ErrAuthorNotFound
	}

	key := author.BooksKey(authorID, page)

	var cached resource.ListResult
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		logger.Error("author books cache read failed", err)
	} else if found {
		return nonEmpty(&cached)
	}

	items, total, err := s.books.ListByAuthor(ctx, authorID, author.BooksPerPage, (page-1)*author.BooksPerPage)
	if err != nil {
		return nil, err
	}

	result := &resource.ListResult{Items: items, Total: total}
	if err := s.cache.Set(ctx, key, result, author.BooksTTL); err != nil {
		logger.Error("author books cache write failed", err)
	}
	return nonEmpty(result)
}

// nonEmpty keeps the zero-books case distinguishable from a missing
// author: both are 404s with different messages.
func nonEmpty(result *resource.ListResult) (*resource.ListResult, error) {
	if len(result.Items) == 0 {
		return nil, author.ErrNoBooksFound
	}
	return result, nil
}

// listKey resolves the version counter into a cache key. Returns
// ok=false when the cache layer is unavailable, disabling caching for
// this request.
func (s *authorService) listKey(ctx context.Context, params resource.ListParams, page int) (string, bool) {
	version, err := resource.Version(ctx, s.cache, author.Resource)
	if err != nil {
		logger.Error("author cache version read failed", err)
		return "", false
	}
	return author.Resource.ListKey(version, page, params), true
}

func (s *authorService) bumpListVersion(ctx context.Context) {
	if err := resource.BumpVersion(ctx, s.cache, author.Resource); err != nil {
		logger.Error("author cache version bump failed", err)
	}
}

func (s *authorService) invalidateItem(ctx context.Context, id int64) {
	if err := s.cache.DeletePattern(ctx, author.Resource.ItemKeyPattern(id)); err != nil {
		logger.Error("author cache invalidation failed", err)
	}
	if err := s.cache.DeletePattern(ctx, author.BooksKeyPattern(id)); err != nil {
		logger.Error("author books cache invalidation failed", err)
	}
}
