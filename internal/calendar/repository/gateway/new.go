// Package gateway reads and writes events through the office gateway REST API.
package gateway

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"calendar-grid/internal/calendar/repository"
	"calendar-grid/pkg/log"
)

const defaultTimeout = 15 * time.Second

// Config holds the gateway connection settings.
type Config struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	Providers []string // e.g. ["google", "microsoft"]
}

type implRepository struct {
	client    *resty.Client
	baseURL   string
	providers []string
	l         log.Logger
}

// New creates a gateway-backed Source.
func New(cfg Config, l log.Logger) repository.Source {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	providers := make([]string, 0, len(cfg.Providers))
	for _, p := range cfg.Providers {
		if p = strings.TrimSpace(p); p != "" {
			providers = append(providers, p)
		}
	}

	return &implRepository{client: client, baseURL: baseURL, providers: providers, l: l}
}

func (r *implRepository) Name() string {
	return "gateway"
}

func (r *implRepository) Active() bool {
	return r.baseURL != "" && len(r.providers) > 0
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("calendar/repository/gateway.%s", method)
}
