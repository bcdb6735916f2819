package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/triviahub/trivia-api/internal/db"
	"github.com/triviahub/trivia-api/internal/trivia"
)

const questionColumns = "id, question, answer, category, difficulty"

// QuestionRepository owns every SQL statement touching the questions table.
type QuestionRepository struct {
	db db.Querier
}

func NewQuestionRepository(q db.Querier) *QuestionRepository {
	return &QuestionRepository{db: q}
}

// ListOrdered returns all questions ordered by ascending id.
func (r *QuestionRepository) ListOrdered(ctx context.Context) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx, "SELECT "+questionColumns+" FROM questions ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return scanQuestions(rows)
}

// Search returns questions whose text contains term, case-insensitively,
// ordered by ascending id. SQL wildcards inside term keep their meaning,
// mirroring a plain ILIKE '%term%'.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE question ILIKE '%' || $1 || '%' ORDER BY id", term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return scanQuestions(rows)
}

// ListByCategory returns all questions in one category, ordered by ascending id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE category = $1 ORDER BY id", categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions by category: %w", err)
	}
	return scanQuestions(rows)
}

// ListCandidates returns questions whose ids are not in excludeIDs, optionally
// narrowed to one category (0 means all categories).
func (r *QuestionRepository) ListCandidates(ctx context.Context, excludeIDs []int, categoryID int) ([]trivia.Question, error) {
	query, args := candidateQuery(excludeIDs, categoryID)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quiz candidates: %w", err)
	}
	return scanQuestions(rows)
}

// GetByID fetches a single question; trivia.ErrNotFound when no row matches.
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (trivia.Question, error) {
	var q trivia.Question
	err := r.db.QueryRow(ctx, "SELECT "+questionColumns+" FROM questions WHERE id = $1", id).
		Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if errors.Is(err, pgx.ErrNoRows) {
		return trivia.Question{}, trivia.ErrNotFound
	}
	if err != nil {
		return trivia.Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
	return q, nil
}

// Insert stores a new question and returns its assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, q trivia.Question) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		"INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4) RETURNING id",
		q.Question, q.Answer, q.Category, q.Difficulty).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}

// Delete removes a question by id; trivia.ErrNotFound when no row matched.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM questions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return trivia.ErrNotFound
	}
	return nil
}

// candidateQuery builds the quiz candidate statement. NOT (id = ANY($1)) is
// true for every row when the exclusion list is empty, so one statement covers
// both first and subsequent quiz rounds.
func candidateQuery(excludeIDs []int, categoryID int) (string, []any) {
	exclude := make([]int32, len(excludeIDs))
	for i, id := range excludeIDs {
		exclude[i] = int32(id)
	}

	query := "SELECT " + questionColumns + " FROM questions WHERE NOT (id = ANY($1))"
	args := []any{exclude}
	if categoryID != 0 {
		query += " AND category = $2"
		args = append(args, categoryID)
	}
	query += " ORDER BY id"
	return query, args
}

func scanQuestions(rows pgx.Rows) ([]trivia.Question, error) {
	defer rows.Close()

	questions := []trivia.Question{}
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}
