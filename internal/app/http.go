package app

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"learnql/pkg/logger"
	"learnql/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/graph-gophers/graphql-transport-ws/graphqlws"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed graphiql.html
var graphiqlPage []byte

// healthCheck reports whether the backing store is usable.
type healthCheck func(ctx context.Context) error

func newRouter(log *slog.Logger, schema *graphql.Schema, allowedOrigins []string, health healthCheck) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(withLogger(log))
	r.Use(middleware.RequestLogger(&structuredLogger{log: log}))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	gql := &relay.Handler{Schema: schema}
	r.With(observeGraphQL).Post("/query", gql.ServeHTTP)
	r.Get("/subscriptions", graphqlws.NewHandlerFunc(schema, gql))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(graphiqlPage)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			if err := health(r.Context()); err != nil {
				logger.FromContext(r.Context()).Warn("health check failed", "error", err)
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// withLogger stores a request scoped logger in the request context.
func withLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := base.With(slog.String("request_id", middleware.GetReqID(r.Context())))
			next.ServeHTTP(w, r.WithContext(logger.WithLogger(r.Context(), l)))
		})
	}
}

func observeGraphQL(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.GraphQLRequests.WithLabelValues(strconv.Itoa(status)).Inc()
		metrics.GraphQLDuration.Observe(time.Since(start).Seconds())
	})
}

type structuredLogger struct {
	log *slog.Logger
}

func (l *structuredLogger) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &logEntry{log: l.log.With(
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("remote_addr", r.RemoteAddr),
	)}
}

type logEntry struct {
	log *slog.Logger
}

func (e *logEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	e.log.Info("request complete",
		slog.Int("status", status),
		slog.Int("bytes", bytes),
		slog.Duration("duration", elapsed),
	)
}

func (e *logEntry) Panic(v interface{}, stack []byte) {
	e.log.Error("request panic",
		slog.Any("panic", v),
		slog.String("stack", string(stack)),
	)
}
