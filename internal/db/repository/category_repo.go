package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/triviahub/trivia-api/internal/db"
	"github.com/triviahub/trivia-api/internal/trivia"
)

// CategoryRepository reads the fixed category set seeded by migrations.
type CategoryRepository struct {
	db db.Querier
}

func NewCategoryRepository(q db.Querier) *CategoryRepository {
	return &CategoryRepository{db: q}
}

// ListAll returns every category ordered by ascending id.
func (r *CategoryRepository) ListAll(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.db.Query(ctx, "SELECT id, type FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []trivia.Category{}
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// GetByID fetches a single category; trivia.ErrNotFound when no row matches.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (trivia.Category, error) {
	var c trivia.Category
	err := r.db.QueryRow(ctx, "SELECT id, type FROM categories WHERE id = $1", id).
		Scan(&c.ID, &c.Type)
	if errors.Is(err, pgx.ErrNoRows) {
		return trivia.Category{}, trivia.ErrNotFound
	}
	if err != nil {
		return trivia.Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return c, nil
}
