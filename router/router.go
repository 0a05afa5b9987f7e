// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/exercise-tracker/handlers"
	"github.com/danielhkuo/exercise-tracker/middleware"
	"github.com/danielhkuo/exercise-tracker/store"
	"github.com/danielhkuo/exercise-tracker/web"
)

// NewRouter registers every route on a fresh mux. The returned handler also
// applies CORS and request metrics.
func NewRouter(st store.Store) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(st)
	exerciseHandler := handlers.NewExerciseHandler(st)
	logHandler := handlers.NewLogHandler(st)
	healthHandler := handlers.NewHealthHandler(st)

	// Operations
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Users
	mux.HandleFunc("POST /api/users", middleware.WithLogging(userHandler.CreateUser))
	mux.HandleFunc("GET /api/users", middleware.WithLogging(userHandler.ListUsers))

	// Exercises and logs
	mux.HandleFunc("POST /api/users/{id}/exercises", middleware.WithLogging(exerciseHandler.LogExercise))
	mux.HandleFunc("GET /api/users/{id}/logs", middleware.WithLogging(logHandler.GetLogs))

	// Landing page and assets
	mux.HandleFunc("GET /{$}", serveIndex)
	mux.Handle("GET /", http.FileServerFS(web.Public()))

	return middleware.CORS(middleware.Metrics(mux))
}

func serveIndex(w http.ResponseWriter, r *http.Request) {
	page, err := web.IndexHTML()
	if err != nil {
		slog.Error("landing page missing", "error", err)
		http.Error(w, "landing page unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}
