package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"library-backend/internal/config"
	"library-backend/internal/infrastructure/database"
)

const (
	authorCount    = 10
	booksPerAuthor = 5
)

// Seeds the database with a deterministic data set: 10 authors with 5
// books each. Existing rows are removed first so the seeder can be
// rerun.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatalf("failed to load database config: %v", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if err := seed(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Printf("seeded %d authors with %d books each", authorCount, booksPerAuthor)
}

func seed(ctx context.Context, db *database.PostgresDB) error {
	if _, err := db.Pool.Exec(ctx,
		`TRUNCATE books, authors RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("truncate failed: %w", err)
	}

	for i := 1; i <= authorCount; i++ {
		var authorID int64
		err := db.Pool.QueryRow(ctx, `
			INSERT INTO authors (name, bio, birth_date)
			VALUES ($1, $2, $3)
			RETURNING id
		`,
			fmt.Sprintf("Author %d", i),
			fmt.Sprintf("Biography of author %d.", i),
			birthDate(i),
		).Scan(&authorID)
		if err != nil {
			return fmt.Errorf("insert author %d: %w", i, err)
		}

		for j := 1; j <= booksPerAuthor; j++ {
			_, err := db.Pool.Exec(ctx, `
				INSERT INTO books (title, description, publish_date, author_id)
				VALUES ($1, $2, $3, $4)
			`,
				fmt.Sprintf("Book %d by Author %d", j, i),
				fmt.Sprintf("Description of book %d by author %d.", j, i),
				publishDate(i, j),
				authorID,
			)
			if err != nil {
				return fmt.Errorf("insert book %d for author %d: %w", j, i, err)
			}
		}
	}

	return nil
}

func birthDate(i int) string {
	return fmt.Sprintf("%04d-%02d-%02d", 1950+i, (i%12)+1, (i%28)+1)
}

func publishDate(i, j int) string {
	return fmt.Sprintf("%04d-%02d-%02d", 2000+i, (j%12)+1, ((i+j)%28)+1)
}
