package server

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/colbertgate/colbertgate/logger"
	"github.com/colbertgate/colbertgate/metrics"
	"github.com/colbertgate/colbertgate/tracer"
)

// Server is the HTTP facade over the embedding engine and the vector store.
//
// It holds no mutable state of its own beyond the two long-lived client
// handles, which are injected once at startup and reused across all
// requests. Request handling is strictly sequential per request: embed
// completes before the store is called.
type Server struct {
	cfg     *Config
	log     *logger.Logger
	trc     *tracer.Tracer
	metrics *metrics.Metrics

	encoder Encoder
	store   Store

	router *gin.Engine
	http   *http.Server
}

// NewServer builds the gin engine, installs the middleware chain and
// registers all routes.
func NewServer(cfg *Config, log *logger.Logger, trc *tracer.Tracer, m *metrics.Metrics, enc Encoder, store Store) *Server {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:     cfg,
		log:     log,
		trc:     trc,
		metrics: m,
		encoder: enc,
		store:   store,
		router:  gin.New(),
	}

	s.router.Use(
		gin.Recovery(),
		RequestObserver(log, m),
		TraceRequests(trc),
	)
	s.setupRoutes()

	s.http = &http.Server{
		Addr:    cfg.Addr,
		Handler: s.router,
	}

	return s
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
