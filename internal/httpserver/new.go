package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"catalog-service/internal/item/event"
	"catalog-service/internal/item/repository"
	"catalog-service/pkg/log"
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

	// Middleware
	serviceName     string
	tracingEnabled  bool
	rateLimitPerMin int

	// Item domain
	itemRepo  repository.Repository
	publisher event.Publisher
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Middleware
	ServiceName     string
	TracingEnabled  bool
	RateLimitPerMin int

	// Item domain
	ItemRepository repository.Repository
	EventPublisher event.Publisher
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		serviceName:     cfg.ServiceName,
		tracingEnabled:  cfg.TracingEnabled,
		rateLimitPerMin: cfg.RateLimitPerMin,
		itemRepo:        cfg.ItemRepository,
		publisher:       cfg.EventPublisher,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.publisher == nil {
		srv.publisher = event.NewNoopPublisher()
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
	if srv.itemRepo == nil {
		return errors.New("item repository is required")
	}
	return nil
}
