package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"library-catalog/config"
	"library-catalog/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Catalog domain
	dbDriver   string
	postgresDB *sql.DB

	// Cross-cutting
	authConfig      config.AuthConfig
	rateLimitConfig config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Catalog domain
	DatabaseDriver string
	PostgresDB     *sql.DB

	// Cross-cutting
	Auth      config.AuthConfig
	RateLimit config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		dbDriver:        cfg.DatabaseDriver,
		postgresDB:      cfg.PostgresDB,
		authConfig:      cfg.Auth,
		rateLimitConfig: cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
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
	if srv.dbDriver == "postgres" && srv.postgresDB == nil {
		return errors.New("postgres connection is required for the postgres driver")
	}
	return nil
}
