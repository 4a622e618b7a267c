// File: studiobook/devserver/devserver.go

// Package devserver is an in-memory stand-in for the booking backend. It
// speaks the same wire contract the real API does (paths, envelopes,
// error bodies), so the client and cache can be exercised against it in
// integration tests and local frontend work. State lives behind one
// mutex and vanishes on exit; it is a test double, not a booking
// service.
package devserver

import (
	"net/http"
	"time"

	"studiobook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// tokenTTL is how long issued bearer tokens stay valid.
const tokenTTL = 30 * time.Minute

// Config carries the knobs for building a Server.
type Config struct {
	// RatePerMin caps requests per client IP; 0 disables limiting.
	RatePerMin int
	// Seed preloads the demo studio fixture.
	Seed bool
	// RequestLogging attaches gin's request logger; off keeps test
	// output quiet.
	RequestLogging bool
	Logger         *zap.Logger
}

// Server is the assembled stub API.
type Server struct {
	engine *gin.Engine
	state  *state
	logger *zap.Logger
}

// New builds a Server with its routes registered.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = utils.GetLogger()
	}

	s := &Server{
		state:  newState(),
		logger: logger,
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(utils.ErrorHandler())
	if cfg.RequestLogging {
		engine.Use(gin.Logger())
	}
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if cfg.RatePerMin > 0 {
		engine.Use(rateLimitMiddleware(cfg.RatePerMin))
	}

	s.registerRoutes(engine)
	s.engine = engine

	if cfg.Seed {
		if err := s.SeedDemoData(); err != nil {
			logger.Warn("Failed to seed demo data", zap.Error(err))
		}
	}

	return s
}

// Handler exposes the server for http.Server and httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}
