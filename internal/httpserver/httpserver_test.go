package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-grid/internal/calendar/repository/gateway"
	calendarUC "calendar-grid/internal/calendar/usecase"
	"calendar-grid/internal/middleware"
	"calendar-grid/pkg/log"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:         l,
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    "test",
		CalendarSource: gateway.New(gateway.Config{}, l),
		CalendarOptions: calendarUC.Options{
			Location: time.UTC,
		},
		Middleware: middleware.Config{CreatePerMin: 60},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func serve(t *testing.T, srv *HTTPServer, method, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	srv.gin.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	source := gateway.New(gateway.Config{}, l)

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing mode", cfg: Config{Port: 8080, CalendarSource: source}},
		{name: "missing port", cfg: Config{Mode: gin.TestMode, CalendarSource: source}},
		{name: "missing source", cfg: Config{Port: 8080, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(l, tt.cfg); err == nil {
				t.Fatal("expected an error")
			}
		})
	}

	if _, err := New(nil, Config{Port: 8080, Mode: gin.TestMode, CalendarSource: source}); err == nil {
		t.Fatal("expected an error for a nil logger")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w, env := serve(t, srv, http.MethodGet, path)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			var data map[string]any
			if err := json.Unmarshal(env.Data, &data); err != nil {
				t.Fatalf("decode data: %v", err)
			}
			if data["service"] != ServiceName {
				t.Errorf("service = %v, want %s", data["service"], ServiceName)
			}
		})
	}
}

func TestHealth_ReportsSource(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready"} {
		t.Run(path, func(t *testing.T) {
			_, env := serve(t, srv, http.MethodGet, path)
			var data healthResp
			if err := json.Unmarshal(env.Data, &data); err != nil {
				t.Fatalf("decode data: %v", err)
			}
			if data.Source.Name != "gateway" || data.Source.Active {
				t.Errorf("source = %+v, want inactive gateway", data.Source)
			}
			if data.Status != statusDegraded {
				t.Errorf("status = %q, want %q", data.Status, statusDegraded)
			}
			if data.Timezone != "UTC" {
				t.Errorf("timezone = %q, want UTC", data.Timezone)
			}
		})
	}
}

func TestHealth_ActiveSource(t *testing.T) {
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		CalendarSource: gateway.New(gateway.Config{
			BaseURL:   "http://gateway.invalid",
			Providers: []string{"google"},
		}, l),
		CalendarOptions: calendarUC.Options{Location: time.UTC},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, env := serve(t, srv, http.MethodGet, "/health")
	var data healthResp
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Status != "healthy" || !data.Source.Active {
		t.Errorf("data = %+v, want healthy with an active source", data)
	}
}

func TestCalendarRoutes(t *testing.T) {
	srv := newTestServer(t)

	t.Run("slots", func(t *testing.T) {
		w, env := serve(t, srv, http.MethodGet, "/api/v1/calendar/slots")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
		}
		var data struct {
			Timezone string `json:"timezone"`
			Slots    []any  `json:"slots"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if data.Timezone != "UTC" {
			t.Errorf("timezone = %q, want UTC", data.Timezone)
		}
		if len(data.Slots) != 65 {
			t.Errorf("len(slots) = %d, want 65", len(data.Slots))
		}
	})

	t.Run("events without integration", func(t *testing.T) {
		w, _ := serve(t, srv, http.MethodGet, "/api/v1/calendar/events?view=day&date=2024-06-12")
		if w.Code != http.StatusFailedDependency {
			t.Fatalf("status = %d, want 424", w.Code)
		}
	})

	t.Run("request id echoed", func(t *testing.T) {
		w, _ := serve(t, srv, http.MethodGet, "/live")
		if w.Header().Get(middleware.HeaderRequestID) == "" {
			t.Error("missing request id header")
		}
	})
}
