package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/triviahub/trivia-api/pkg/http/errors"
)

// HTTPHandlers provides the REST endpoints of the trivia API.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for the trivia endpoints.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// questionPostRequest is the dual-purpose POST /questions payload: a
// non-empty searchTerm selects search, otherwise the remaining fields
// describe a question to create.
type questionPostRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
	SearchTerm string `json:"searchTerm"`
}

type quizRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// Categories handles GET /categories.
func (h *HTTPHandlers) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list categories failed")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"categories":       categories,
		"total_categories": len(categories),
	})
}

// Questions handles GET /questions (paginated listing) and POST /questions
// (search when searchTerm is present, create otherwise).
func (h *HTTPHandlers) Questions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listQuestions(w, r)
	case http.MethodPost:
		h.searchOrCreateQuestion(w, r)
	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

func (h *HTTPHandlers) listQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	questions, err := h.svc.ListQuestions(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("list questions failed")
		httperrors.RespondInternalError(w)
		return
	}

	categories, err := h.svc.Categories(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("list categories failed")
		httperrors.RespondInternalError(w)
		return
	}

	current := Paginate(questions, pageParam(r))
	if len(current) == 0 {
		httperrors.RespondNotFound(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        current,
		"total_questions":  len(questions),
		"categories":       categories,
		"current_category": 1,
	})
}

func (h *HTTPHandlers) searchOrCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req questionPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	if req.SearchTerm != "" {
		h.searchQuestions(w, r, req.SearchTerm)
		return
	}
	h.createQuestion(w, r, req)
}

func (h *HTTPHandlers) searchQuestions(w http.ResponseWriter, r *http.Request, term string) {
	matches, err := h.svc.SearchQuestions(r.Context(), term)
	if err != nil {
		h.logger.Error().Err(err).Str("term", term).Msg("search questions failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	// An out-of-range page is an empty success here, unlike GET /questions.
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       Paginate(matches, pageParam(r)),
		"total_questions": len(matches),
	})
}

func (h *HTTPHandlers) createQuestion(w http.ResponseWriter, r *http.Request, req questionPostRequest) {
	ctx := r.Context()

	id, err := h.svc.CreateQuestion(ctx, Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		if !errors.Is(err, ErrValidation) {
			h.logger.Error().Err(err).Msg("create question failed")
		}
		httperrors.RespondUnprocessable(w)
		return
	}

	questions, err := h.svc.ListQuestions(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("list questions failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"created":         id,
		"questions":       Paginate(questions, pageParam(r)),
		"total_questions": len(questions),
	})
}

// DeleteQuestion handles DELETE /questions/{id}. Every failure past routing,
// a missing row included, responds 422: the deletion was understood but could
// not be processed.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	ctx := r.Context()
	if err := h.svc.DeleteQuestion(ctx, id); err != nil {
		if !errors.Is(err, ErrNotFound) {
			h.logger.Error().Err(err).Int("question_id", id).Msg("delete question failed")
		}
		httperrors.RespondUnprocessable(w)
		return
	}

	questions, err := h.svc.ListQuestions(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("list questions failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"deleted":         id,
		"questions":       Paginate(questions, pageParam(r)),
		"total_questions": len(questions),
	})
}

// QuestionsByCategory handles GET /categories/{id}/questions. The category
// must exist; a category with no questions lists as an empty success.
func (h *HTTPHandlers) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	questions, err := h.svc.QuestionsByCategory(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("category_id", id).Msg("list questions by category failed")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       Paginate(questions, pageParam(r)),
		"total_questions": len(questions),
	})
}

// Quizzes handles POST /quizzes: it returns a random question not yet played
// this round, or a null question once the pool is exhausted.
func (h *HTTPHandlers) Quizzes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	question, err := h.svc.NextQuizQuestion(r.Context(), req.PreviousQuestions, req.QuizCategory)
	if err != nil {
		h.logger.Error().Err(err).Msg("pick quiz question failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": question,
	})
}

// pageParam reads the page query parameter, defaulting to 1 when absent or
// not an integer. Zero and negative values pass through and paginate to an
// empty slice.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
