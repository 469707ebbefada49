package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"erp-lookup/internal/lookup"
	"erp-lookup/internal/middleware"
	"erp-lookup/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Lookup domain
	lookupUC   lookup.UseCase
	middleware middleware.Middleware
	breakers   BreakerReporter

	gatherer prometheus.Gatherer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	LookupUseCase lookup.UseCase
	Middleware    middleware.Middleware

	// Breakers feeds /ready; nil reports every entity as reachable.
	Breakers BreakerReporter

	// Gatherer backs /metrics; nil disables the route.
	Gatherer prometheus.Gatherer
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)
	if logger == nil {
		logger = cfg.Logger
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		lookupUC:        cfg.LookupUseCase,
		middleware:      cfg.Middleware,
		breakers:        cfg.Breakers,
		gatherer:        cfg.Gatherer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.lookupUC == nil {
		return errors.New("lookup use case is required")
	}
	return nil
}
