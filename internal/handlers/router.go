// internal/handlers/router.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go_5_exam_review/internal/config"
	"go_5_exam_review/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Handlers はルーターに登録するハンドラ一式
type Handlers struct {
	User       *UserHandler
	Bookmark   *BookmarkHandler
	TestResult *TestResultHandler
	Review     *ReviewHandler
	Schedule   *ScheduleHandler
	// HealthCheck は /health で呼ばれる (DB の Ping など)
	HealthCheck func(ctx context.Context) error
}

// NewRouter はミドルウェアと /api/v1 のルートを組み立てる
func NewRouter(cfg *config.Config, logger *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/users", h.User.CreateUser)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			if cfg.Auth.Enabled {
				logger.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(cfg))
			} else {
				logger.Warn("Authentication disabled, using X-User-ID header")
				r.Use(middleware.DevUserContextMiddleware)
			}

			r.Get("/me", h.User.GetMe)

			r.Route("/bookmarks", func(r chi.Router) {
				r.Post("/", h.Bookmark.PostBookmark)
				r.Get("/", h.Bookmark.GetBookmarks)
				r.Delete("/{question_id}", h.Bookmark.DeleteBookmark)
				r.Put("/{question_id}/reminder", h.Bookmark.PutReminder)
				r.Delete("/{question_id}/reminder", h.Bookmark.DeleteReminder)
			})

			r.Route("/test-results", func(r chi.Router) {
				r.Post("/", h.TestResult.PostTestResult)
				r.Get("/{result_id}/feedback", h.TestResult.GetFeedbackLog)
				r.Put("/{result_id}/reviews/{question_id}", h.Review.PutReview)
				r.Delete("/{result_id}/reviews/{question_id}", h.Review.DeleteReview)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/due", h.Review.GetDueQuestions)
				r.Get("/due/count", h.Review.GetDueCount)
				r.Post("/delay", h.Schedule.PostDelay)
			})

			r.Put("/preferences/pacing", h.Schedule.PutPacing)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if h.HealthCheck != nil {
			if err := h.HealthCheck(r.Context()); err != nil {
				middleware.GetLogger(r.Context()).Error("Health check failed", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
