package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/internal/config"
	"github.com/triviahub/trivia-api/internal/logging"
	"github.com/triviahub/trivia-api/internal/trivia"
	httperrors "github.com/triviahub/trivia-api/pkg/http/errors"
)

// pinger is the one pool method the health endpoint needs.
type pinger interface {
	Ping(ctx context.Context) error
}

// healthHandler reports liveness, degrading to 503 while the database does
// not answer.
func healthHandler(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.Ping(r.Context()); err != nil {
			logger := logging.FromContext(r.Context())
			logger.Error().Err(err).Msg("health check failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

// NewHTTPServer wires the trivia routes plus health and metrics endpoints.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, handlers *trivia.HTTPHandlers) *http.Server {
	mux := http.NewServeMux()

	// Catch-all so unknown paths answer with the JSON not-found envelope
	// instead of the mux default plain text.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w)
	})

	mux.HandleFunc("/healthz", healthHandler(pool))

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/categories", handlers.Categories)
	mux.HandleFunc("/categories/{id}/questions", handlers.QuestionsByCategory)
	mux.HandleFunc("/questions", handlers.Questions)
	mux.HandleFunc("/questions/{id}", handlers.DeleteQuestion)
	mux.HandleFunc("/quizzes", handlers.Quizzes)

	handler := chain(mux,
		requestID(),
		requestLogger(logger),
		corsMiddleware(cfg.CORS),
		instrumentHTTP(),
	)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}
