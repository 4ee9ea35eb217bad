package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-grid/internal/calendar/repository"
	calendarUC "calendar-grid/internal/calendar/usecase"
	"calendar-grid/internal/middleware"
	"calendar-grid/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Calendar domain
	calendarSource  repository.Source
	calendarOptions calendarUC.Options
	middleware      middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Calendar domain
	CalendarSource  repository.Source
	CalendarOptions calendarUC.Options
	Middleware      middleware.Config
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		calendarSource:  cfg.CalendarSource,
		calendarOptions: cfg.CalendarOptions,
		middleware:      cfg.Middleware,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
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
	if srv.calendarSource == nil {
		return errors.New("calendar source is required")
	}
	return nil
}
