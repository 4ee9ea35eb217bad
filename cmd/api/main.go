package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calendar-grid/config"
	_ "calendar-grid/docs" // Swagger docs
	"calendar-grid/internal/calendar/repository"
	"calendar-grid/internal/calendar/repository/gateway"
	"calendar-grid/internal/calendar/repository/google"
	calendarUC "calendar-grid/internal/calendar/usecase"
	"calendar-grid/internal/httpserver"
	"calendar-grid/internal/middleware"
	"calendar-grid/pkg/daterange"
	"calendar-grid/pkg/gcalendar"
	"calendar-grid/pkg/log"
	"calendar-grid/pkg/slotgrid"
)

// @title       Calendar Grid API
// @description Date ranges, slot grid, drag selections and bucketed events for the calendar grid.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Grid...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Effective timezone
	loc, err := daterange.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Calendar.Timezone, err)
		loc, _ = daterange.LoadLocation("UTC")
	}
	logger.Infof(ctx, "Calendar timezone: %s", loc)

	grid := slotgrid.Config{
		StartHour:       cfg.Calendar.StartHour,
		EndHour:         cfg.Calendar.EndHour,
		SlotMinutes:     cfg.Calendar.SlotMinutes,
		SlotPixelHeight: cfg.Calendar.SlotPixelHeight,
	}
	if err := grid.Validate(); err != nil {
		logger.Warnf(ctx, "Invalid grid configuration, using defaults: %v", err)
		grid = slotgrid.Default()
	}

	// 4. Event source
	source := newSource(ctx, logger, cfg)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		CalendarSource:  source,
		CalendarOptions: calendarUC.Options{
			Location:       loc,
			Grid:           grid,
			Providers:      cfg.Gateway.Providers,
			Limit:          cfg.Calendar.DefaultLimit,
			CacheSize:      cfg.Cache.Size,
			CacheTTL:       cfg.Cache.TTL,
			SessionSize:    cfg.Selection.MaxSessions,
			SessionTTL:     cfg.Selection.TTL,
			MaxOccurrences: cfg.Calendar.MaxOccurrences,
		},
		Middleware: middleware.Config{
			CreatePerMin: cfg.RateLimit.CreatePerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newSource prefers the office gateway, then a direct Google Calendar
// connection. With neither configured the gateway source stays inactive and
// event routes answer 424.
func newSource(ctx context.Context, logger log.Logger, cfg *config.Config) repository.Source {
	if cfg.Gateway.URL != "" {
		logger.Infof(ctx, "Calendar source: gateway %s (providers: %v)", cfg.Gateway.URL, cfg.Gateway.Providers)
		return gateway.New(gateway.Config{
			BaseURL:   cfg.Gateway.URL,
			APIKey:    cfg.Gateway.APIKey,
			Timeout:   cfg.Gateway.Timeout,
			Providers: cfg.Gateway.Providers,
		}, logger)
	}

	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, err := gcalendar.NewClientFromFiles(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Calendar source: Google Calendar")
			return google.New(client, cfg.GoogleCalendar.CalendarID, logger)
		}
	}

	logger.Warn(ctx, "No calendar source configured: set gateway.url or google_calendar.credentials_path")
	return gateway.New(gateway.Config{}, logger)
}
