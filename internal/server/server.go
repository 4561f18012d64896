// Package server wires the HTTP routes of the game and runs the listener.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/questgame/internal/game"
	"github.com/osse101/questgame/internal/handler"
	"github.com/osse101/questgame/internal/logger"
	"github.com/osse101/questgame/internal/metrics"
	"github.com/osse101/questgame/internal/sse"
)

type Server struct {
	httpServer *http.Server
	svc        game.Service
	hub        *sse.Hub
}

// NewServer creates a new Server instance. The UI is served from
// <home>/ui when that directory exists.
func NewServer(addr, home string, svc game.Service, ready handler.ReadinessChecker, hub *sse.Hub) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(home, svc, ready, hub),
			ReadHeaderTimeout: ReadHeaderTimeout,
			IdleTimeout:       IdleTimeout,
		},
		svc: svc,
		hub: hub,
	}
}

// NewRouter builds the route tree. It is separate from NewServer so tests
// can serve it through httptest.
func NewRouter(home string, svc game.Service, ready handler.ReadinessChecker, hub *sse.Hub) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(CORSMiddleware())
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.NotFound(handler.HandleNotFound())
	r.MethodNotAllowed(handler.HandleMethodNotAllowed())

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(ready))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	if hub != nil {
		r.Get("/events", sse.Handler(hub))
	}

	games := handler.NewGameHandlers(svc)
	r.Route(APIPrefix, func(r chi.Router) {
		r.Get("/state", games.HandleState())
		r.Get("/status", games.HandleStatus())
		r.Get("/today", games.HandleToday())
		r.Get("/log", games.HandleLog())
		r.Get("/shop", games.HandleShop())
		r.Get("/backlog", games.HandleBacklog())
		r.Get("/inbox", games.HandleInbox())
		r.Get("/weekly", games.HandleWeekly())
		r.Get("/pending-rewards", games.HandlePendingRewards())
		r.Get("/celebrations", games.HandleCelebrations())
		r.Get("/revenue", games.HandleRevenue())

		r.Post("/add", games.HandleAdd())
		r.Post("/triage", games.HandleTriage())
		r.Post("/plan", games.HandlePlan())
		r.Route("/backlog", func(r chi.Router) {
			r.Post("/edit", games.HandleBacklogEdit())
			r.Post("/delete", games.HandleBacklogDelete())
		})

		r.Post("/step", games.HandleStep())
		r.Post("/done", games.HandleDone())
		r.Post("/event", games.HandleEvent())
		r.Post("/sync", games.HandleSync())

		r.Post("/daily-reward", games.HandleDailyReward())
		r.Post("/daily-spin", games.HandleSpin())
		r.Post("/use-reward", games.HandleUseReward())
		r.Post("/shop/buy", games.HandleBuy())

		r.Post("/celebrate", games.HandleCelebrate())
		r.Post("/revenue", games.HandleAddRevenue())
	})

	uiDir := filepath.Join(home, UIDirName)
	if info, err := os.Stat(uiDir); err == nil && info.IsDir() {
		r.Handle("/*", http.FileServer(http.Dir(uiDir)))
	} else {
		slog.Default().Debug(LogMsgStaticDisabled, "dir", uiDir)
	}

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server. It blocks until the listener fails or Stop is called.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if s.hub != nil {
		s.hub.Start()
	}
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully. Event streams are closed first so
// Shutdown does not wait on them.
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	if s.hub != nil {
		s.hub.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
