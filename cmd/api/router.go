package main

import (
	"context"
	"net/http"
	"time"

	"bookgen/internal/book"
	"bookgen/internal/httpx"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxRequestBytes = 1 << 20

// pinger reports database readiness. It is nil when no database is configured.
type pinger interface {
	Ping(ctx context.Context) error
}

type routerDeps struct {
	books     *book.HTTPHandler
	snapshots *book.SnapshotHandler
	db        pinger
	limiter   *httpx.RateLimitMiddleware
	cfg       config
}

func newRouter(d routerDeps) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if d.db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
			defer cancel()
			if err := d.db.Ping(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", promhttp.Handler())

	router.HandleFunc("GET /api/books", d.books.List)
	router.HandleFunc("GET /api/books/export", d.books.Export)
	router.HandleFunc("GET /api/regions", d.books.Regions)
	if d.snapshots != nil {
		router.HandleFunc("GET /api/snapshots/{key}", d.snapshots.Get)
	}

	middlewares := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware,
		httpx.AccessLogMiddleware,
		httpx.SecurityHeadersMiddleware(d.cfg.EnableHSTS),
		httpx.CORSMiddleware(d.cfg.CORSOrigins),
		httpx.RequestSizeLimitMiddleware(maxRequestBytes),
	}
	if d.limiter != nil {
		middlewares = append(middlewares, d.limiter.Middleware)
	}
	return httpx.Chain(router, middlewares...)
}
