package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared"
	"library-backend/internal/shared/resource"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context, f resource.ListFilter) ([]map[string]interface{}, int, error) {
	return resource.ListRows(ctx, r.pool, author.Resource, f)
}

func (r *postgresRepository) GetRow(ctx context.Context, id int64, fields []string) (map[string]interface{}, error) {
	row, err := resource.GetRow(ctx, r.pool, author.Resource, id, fields)
	if errors.Is(err, resource.ErrNotFound) {
		return nil, author.ErrAuthorNotFound
	}
	return row, err
}

func (r *postgresRepository) GetAuthor(ctx context.Context, id int64) (*author.Author, error) {
	query := `
		SELECT id, name, bio, birth_date, created_at, updated_at
		FROM authors
		WHERE id = $1
	`

	a, err := r.scanAuthor(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, author.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) Create(ctx context.Context, req *author.StoreAuthorRequest) (*author.Author, error) {
	query := `
		INSERT INTO authors (name, bio, birth_date)
		VALUES ($1, $2, $3)
		RETURNING id, name, bio, birth_date, created_at, updated_at
	`

	a, err := r.scanAuthor(r.pool.QueryRow(ctx, query, req.Name, req.Bio, req.BirthDate))
	if err != nil {
		return nil, fmt.Errorf("failed to insert author: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
		UPDATE authors
		SET name = $1, bio = $2, birth_date = $3, updated_at = now()
		WHERE id = $4
		RETURNING id, name, bio, birth_date, created_at, updated_at
	`

	updated, err := r.scanAuthor(r.pool.QueryRow(ctx, query,
		a.Name, a.Bio, a.BirthDate.Format(shared.DateLayout), a.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, author.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if result.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) scanAuthor(row pgx.Row) (*author.Author, error) {
	var a author.Author
	var birthDate time.Time

	err := row.Scan(&a.ID, &a.Name, &a.Bio, &birthDate, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	a.BirthDate = shared.NewDate(birthDate)
	return &a, nil
}
