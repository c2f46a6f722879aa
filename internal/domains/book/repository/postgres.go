package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared"
	"library-backend/internal/shared/resource"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

// List returns projected rows. Whenever author_id is part of the
// projection, each row additionally embeds its author as {id, name},
// matching the show endpoint and the author's-books sub-resource.
func (r *postgresRepository) List(ctx context.Context, f resource.ListFilter) ([]map[string]interface{}, int, error) {
	items, total, err := resource.ListRows(ctx, r.pool, book.Resource, f)
	if err != nil {
		return nil, 0, err
	}

	if hasField(f.Fields, "author_id") {
		if err := r.embedAuthors(ctx, items); err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}

// GetRow fetches one book with the projection, embedding the author as
// {id, name} when author_id is projected.
func (r *postgresRepository) GetRow(ctx context.Context, id int64, fields []string) (map[string]interface{}, error) {
	row, err := resource.GetRow(ctx, r.pool, book.Resource, id, fields)
	if errors.Is(err, resource.ErrNotFound) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}

	if hasField(fields, "author_id") {
		if err := r.embedAuthors(ctx, []map[string]interface{}{row}); err != nil {
			return nil, err
		}
	}
	return row, nil
}

func (r *postgresRepository) GetBook(ctx context.Context, id int64) (*book.Book, error) {
	query := `
		SELECT id, title, description, publish_date, author_id, created_at, updated_at
		FROM books
		WHERE id = $1
	`

	b, err := r.scanBook(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) Create(ctx context.Context, req *book.StoreBookRequest) (*book.Book, error) {
	query := `
		INSERT INTO books (title, description, publish_date, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, publish_date, author_id, created_at, updated_at
	`

	b, err := r.scanBook(r.pool.QueryRow(ctx, query,
		req.Title, req.Description, req.PublishDate, req.AuthorID))
	if err != nil {
		return nil, fmt.Errorf("failed to insert book: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
		UPDATE books
		SET title = $1, description = $2, publish_date = $3, author_id = $4, updated_at = now()
		WHERE id = $5
		RETURNING id, title, description, publish_date, author_id, created_at, updated_at
	`

	updated, err := r.scanBook(r.pool.QueryRow(ctx, query,
		b.Title, b.Description, b.PublishDate.Format(shared.DateLayout), b.AuthorID, b.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if result.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) AuthorExists(ctx context.Context, authorID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, authorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]map[string]interface{}, int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM books WHERE author_id = $1`, authorID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	query := `
		SELECT b.id, b.title, b.publish_date, b.author_id, a.name AS author_name
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE b.author_id = $1
		ORDER BY b.id ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("author books query failed: %w", err)
	}

	items, err := resource.CollectRowMaps(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// embedAuthors looks up the authors referenced by the given rows in one
// query and attaches each as an {id, name} ref.
func (r *postgresRepository) embedAuthors(ctx context.Context, rows []map[string]interface{}) error {
	ids := authorIDs(rows)
	if len(ids) == 0 {
		return nil
	}

	authorRows, err := r.pool.Query(ctx,
		`SELECT id, name FROM authors WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("failed to load book authors: %w", err)
	}
	defer authorRows.Close()

	refs := make(map[int64]book.AuthorRef, len(ids))
	for authorRows.Next() {
		var ref book.AuthorRef
		if err := authorRows.Scan(&ref.ID, &ref.Name); err != nil {
			return fmt.Errorf("failed to scan book author: %w", err)
		}
		refs[ref.ID] = ref
	}
	if err := authorRows.Err(); err != nil {
		return fmt.Errorf("rows error: %w", err)
	}

	attachAuthors(rows, refs)
	return nil
}

// authorIDs collects the distinct author_id values present in the rows.
func authorIDs(rows []map[string]interface{}) []int64 {
	seen := make(map[int64]bool)
	ids := []int64{}
	for _, row := range rows {
		id, ok := row["author_id"].(int64)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// attachAuthors sets row["author"] for every row whose author_id has a
// resolved ref. Rows without a match are left untouched.
func attachAuthors(rows []map[string]interface{}, refs map[int64]book.AuthorRef) {
	for _, row := range rows {
		id, ok := row["author_id"].(int64)
		if !ok {
			continue
		}
		if ref, found := refs[id]; found {
			row["author"] = ref
		}
	}
}

func hasField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

func (r *postgresRepository) scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	var publishDate time.Time

	err := row.Scan(&b.ID, &b.Title, &b.Description, &publishDate, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}

	b.PublishDate = shared.NewDate(publishDate)
	return &b, nil
}
