// Package httpserver is the HTTP surface of the service: gin routes for
// sign-up/sign-in, the cookie-based access gate, and the ambient middleware
// (recovery, access log, CORS).
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/jwtauth/internal/logging"
	"github.com/dmitrijs2005/jwtauth/internal/server/config"
	"github.com/dmitrijs2005/jwtauth/internal/server/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// AccountService is what the handlers need from the authentication service.
type AccountService interface {
	SignUp(ctx context.Context, email, password string) error
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
}

// Pinger reports storage liveness for /health. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	address         string
	shutdownTimeout time.Duration
	engine          *gin.Engine
	logger          logging.Logger
}

// NewServer builds the gin engine with all routes and middleware.
func NewServer(cfg *config.Config, l logging.Logger, accounts AccountService, db Pinger) *Server {
	logger := l.With("module", "http_server")

	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	engine.Use(accessLog(logger), recovery(logger))

	if origins := cfg.AllowedOrigins(); len(origins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
		engine.Use(cors.New(corsConfig))
	}

	h := &Handler{
		accounts:      accounts,
		db:            db,
		logger:        logger,
		secureCookies: !cfg.IsLocal(),
		tokenValidity: cfg.TokenValidityDuration,
	}
	registerRoutes(engine, h, cfg.BasePath, []byte(cfg.SecretKey), logger)

	return &Server{
		address:         cfg.Address,
		shutdownTimeout: cfg.ShutdownTimeout,
		engine:          engine,
		logger:          logger,
	}
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		timeout := s.shutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
