package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/tasks-api/internal/api"
	apiMiddleware "github.com/phrazzld/tasks-api/internal/api/middleware"
)

// healthCheckTimeout bounds the database ping made by /health.
const healthCheckTimeout = 2 * time.Second

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{apiMiddleware.TraceIDHeader},
		MaxAge:         300,
	}))
	r.Use(middleware.Timeout(app.config.Server.RequestTimeout))

	taskHandler := api.NewTaskHandler(app.taskService, app.logger)

	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)

		r.Route("/{"+api.TaskIDParam+"}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTask)
			r.Patch("/", taskHandler.UpdateTask)
			r.Put("/", taskHandler.ReplaceTask)
			r.Delete("/", taskHandler.DeleteTask)
		})
	})

	r.Get("/health", app.handleHealth)

	return r
}

// handleHealth answers "OK" when the store is reachable and 503 otherwise.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := app.ping(ctx); err != nil {
		app.logger.Error("Health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		app.logger.Error("Failed to write health check response", "error", err)
	}
}
