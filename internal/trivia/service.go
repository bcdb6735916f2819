package trivia

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors the HTTP layer maps onto fixed response envelopes. Anything
// else coming out of the service is treated as a storage failure.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
)

type questionStore interface {
	ListOrdered(ctx context.Context) ([]Question, error)
	Search(ctx context.Context, term string) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)
	ListCandidates(ctx context.Context, excludeIDs []int, categoryID int) ([]Question, error)
	GetByID(ctx context.Context, id int) (Question, error)
	Insert(ctx context.Context, q Question) (int, error)
	Delete(ctx context.Context, id int) error
}

type categoryStore interface {
	ListAll(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int) (Category, error)
}

// Service implements the trivia operations on top of the storage layer.
type Service struct {
	questions  questionStore
	categories categoryStore
}

func NewService(questions questionStore, categories categoryStore) *Service {
	return &Service{questions: questions, categories: categories}
}

// Categories returns the id to label mapping for every category.
func (s *Service) Categories(ctx context.Context) (map[int]string, error) {
	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return CategoryMap(categories), nil
}

// ListQuestions returns every question, ordered by id.
func (s *Service) ListQuestions(ctx context.Context) ([]Question, error) {
	return s.questions.ListOrdered(ctx)
}

// SearchQuestions returns every question whose text contains term,
// case-insensitively.
func (s *Service) SearchQuestions(ctx context.Context, term string) ([]Question, error) {
	return s.questions.Search(ctx, term)
}

// QuestionsByCategory lists a category's questions. The category must exist;
// an existing category with no questions is an empty success, not ErrNotFound.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.questions.ListByCategory(ctx, categoryID)
}

// CreateQuestion validates and stores a new question, returning its id.
// All four fields are required; an int zero value counts as missing.
func (s *Service) CreateQuestion(ctx context.Context, q Question) (int, error) {
	if q.Question == "" || q.Answer == "" || q.Category == 0 || q.Difficulty == 0 {
		return 0, fmt.Errorf("%w: question, answer, category and difficulty are required", ErrValidation)
	}
	return s.questions.Insert(ctx, q)
}

// DeleteQuestion removes a question after confirming it exists.
func (s *Service) DeleteQuestion(ctx context.Context, id int) error {
	if _, err := s.questions.GetByID(ctx, id); err != nil {
		return err
	}
	return s.questions.Delete(ctx, id)
}

// NextQuizQuestion picks a uniformly random question whose id is not in
// previousIDs, optionally restricted to a category. A nil question with a nil
// error means the pool is exhausted.
func (s *Service) NextQuizQuestion(ctx context.Context, previousIDs []int, category *QuizCategory) (*Question, error) {
	categoryID := 0
	if category != nil {
		categoryID = category.ID
	}

	candidates, err := s.questions.ListCandidates(ctx, previousIDs, categoryID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	picked := candidates[rand.Intn(len(candidates))]
	return &picked, nil
}
