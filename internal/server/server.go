package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mossholt/cardforge/internal/database"
	"github.com/mossholt/cardforge/internal/game"
	"github.com/mossholt/cardforge/internal/handler"
	"github.com/mossholt/cardforge/internal/logger"
	"github.com/mossholt/cardforge/internal/metrics"
)

// Server wires the HTTP surface over the game service
type Server struct {
	httpServer  *http.Server
	dbPool      database.Pool
	gameService game.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, dbPool database.Pool, gameService game.Service) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned, public)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	artHandler := handler.NewArtHandler(gameService)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", handler.HandleGetState(gameService))
		r.Get("/collection", handler.HandleGetCollection(gameService))
		r.Get("/catalog", handler.HandleGetCatalog(gameService))
		r.Get("/art/{cardID}", artHandler.HandleGetArt)

		r.Route("/packs", func(r chi.Router) {
			r.Post("/buy", handler.HandleBuyPack(gameService))
		})

		r.Route("/cards", func(r chi.Router) {
			r.Post("/sell", handler.HandleSellCard(gameService))
			r.Post("/sell-batch", handler.HandleSellBatch(gameService))
			r.Post("/sell-duplicates", handler.HandleSellDuplicates(gameService))
			r.Post("/sell-all", handler.HandleSellAll(gameService))
			r.Post("/lock", handler.HandleToggleLock(gameService))
		})

		r.Post("/deck/toggle", handler.HandleToggleDeck(gameService))
		r.Post("/battle/result", handler.HandleBattleResult(gameService))
		r.Post("/progress/reset", handler.HandleResetProgress(gameService))
		r.Post("/factory-reset", handler.HandleFactoryReset(gameService))

		r.Route("/cosmetics", func(r chi.Router) {
			r.Post("/buy", handler.HandleBuyCosmetic(gameService))
			r.Post("/equip", handler.HandleEquipCosmetic(gameService))
		})

		r.Route("/audio", func(r chi.Router) {
			r.Post("/tracks", handler.HandleAddAudioTrack(gameService))
			r.Delete("/tracks/{trackID}", handler.HandleRemoveAudioTrack(gameService))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Put("/config", handler.HandleUpdateConfig(gameService))
			r.Post("/cards/{cardID}/image", handler.HandleUpdateCardImage(gameService, artHandler))
			r.Post("/sfx", handler.HandleUpdateSFX(gameService))
			r.Post("/card-back", handler.HandleUpdateCardBack(gameService))
			r.Post("/logo", handler.HandleUpdateLogo(gameService))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:      dbPool,
		gameService: gameService,
	}
}

// Handler exposes the router, used by tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins serving. Blocks until the listener stops.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// Shutdown stops the listener gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Health and metrics endpoints would drown the log
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted, "method", r.Method, "path", r.URL.Path)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
