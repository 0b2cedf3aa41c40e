package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"finpal-guardian/internal/document"
	"finpal-guardian/internal/guardian"
	tgDelivery "finpal-guardian/internal/guardian/delivery/telegram"
	"finpal-guardian/internal/middleware"
	"finpal-guardian/internal/threat"
	"finpal-guardian/pkg/log"
	"finpal-guardian/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	metrics     *metrics.Metrics

	// Router and pipelines
	guardianUC guardian.UseCase
	documentUC document.UseCase
	threatUC   threat.UseCase

	// Telegram webhook
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware
	Metrics     *metrics.Metrics

	GuardianUseCase guardian.UseCase
	DocumentUseCase document.UseCase
	ThreatUseCase   threat.UseCase

	// TelegramHandler is optional.
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance and mounts its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		metrics:         cfg.Metrics,
		guardianUC:      cfg.GuardianUseCase,
		documentUC:      cfg.DocumentUseCase,
		threatUC:        cfg.ThreatUseCase,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Engine exposes the router, mostly for tests.
func (srv *HTTPServer) Engine() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.guardianUC == nil {
		return errors.New("guardian usecase is required")
	}
	return nil
}
