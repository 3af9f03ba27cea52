package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"animated-nav/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	staticDir := t.TempDir()
	cssDir := filepath.Join(staticDir, "css")
	if err := os.MkdirAll(cssDir, 0o755); err != nil {
		t.Fatalf("failed to create static dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cssDir, "animated-nav.css"), []byte(".nav{}"), 0o644); err != nil {
		t.Fatalf("failed to write stylesheet: %v", err)
	}

	return &config.Config{
		Port:              "0",
		Environment:       "test",
		CORSOrigins:       []string{"http://localhost:3000"},
		SiteName:          "Menu",
		SiteLanguage:      "en",
		StaticDir:         staticDir,
		CharDelayStep:     50 * time.Millisecond,
		RateLimitRequests: 1000,
		RateLimitWindow:   60,
		EnableMetrics:     true,
	}
}

func newTestApplication(t *testing.T, cfg *config.Config) *Application {
	t.Helper()
	gin.SetMode(gin.TestMode)

	application, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to create application: %v", err)
	}
	t.Cleanup(func() {
		_ = application.Shutdown(context.Background())
	})
	return application
}

func serve(application *Application, method, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	application.Router().ServeHTTP(recorder, httptest.NewRequest(method, target, nil))
	return recorder
}

func TestNewRequiresConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatalf("expected error without config")
	}

	cfg := testConfig(t)
	cfg.CharDelayStep = 0
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected validation error for zero delay step")
	}
}

func TestApplicationRoutes(t *testing.T) {
	application := newTestApplication(t, testConfig(t))

	tests := []struct {
		name   string
		target string
		status int
		want   string
	}{
		{name: "index", target: "/", status: http.StatusOK, want: `aria-label="Primary"`},
		{name: "fragment", target: "/fragment/nav", status: http.StatusOK, want: `data-id="option3"`},
		{name: "api", target: "/api/v1/navigation", status: http.StatusOK, want: `"SETTINGS"`},
		{name: "health", target: "/health", status: http.StatusOK, want: `"healthy"`},
		{name: "metrics", target: "/metrics", status: http.StatusOK, want: "animated_nav_"},
		{name: "stylesheet", target: "/static/css/animated-nav.css", status: http.StatusOK, want: ".nav{}"},
		{name: "api not found", target: "/api/v1/missing", status: http.StatusNotFound, want: "Route not found"},
		{name: "page not found", target: "/missing", status: http.StatusNotFound, want: "Page not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(application, http.MethodGet, tt.target)
			if recorder.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, recorder.Code)
			}
			if !strings.Contains(recorder.Body.String(), tt.want) {
				t.Fatalf("expected body to contain %q, got %s", tt.want, recorder.Body.String())
			}
		})
	}
}

func TestIndexVersionsStylesheet(t *testing.T) {
	application := newTestApplication(t, testConfig(t))

	recorder := serve(application, http.MethodGet, "/")
	if !strings.Contains(recorder.Body.String(), "/static/css/animated-nav.css?v=") {
		t.Fatalf("expected versioned stylesheet link, got %s", recorder.Body.String())
	}
}

func TestStylePrefixAndDataDir(t *testing.T) {
	dataDir := t.TempDir()
	definition := `[{"id": "docs", "label": "DOCS", "accent": true}]`
	if err := os.WriteFile(filepath.Join(dataDir, "menu.json"), []byte(definition), 0o644); err != nil {
		t.Fatalf("failed to write definitions: %v", err)
	}

	cfg := testConfig(t)
	cfg.NavDataDir = dataDir
	cfg.NavStrict = true
	cfg.StylePrefix = "site-"
	application := newTestApplication(t, cfg)

	recorder := serve(application, http.MethodGet, "/api/v1/navigation")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	var payload struct {
		Items []struct {
			ID     string `json:"id"`
			Class  string `json:"class"`
			Accent bool   `json:"accent"`
		} `json:"items"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Items) != 1 || payload.Items[0].ID != "docs" {
		t.Fatalf("expected only the docs item, got %+v", payload.Items)
	}
	if payload.Items[0].Class != "site-nav-item site-nav-item--accent" {
		t.Fatalf("unexpected class %q", payload.Items[0].Class)
	}
}

func TestStrictDataDirFailsOnInvalidDefinitions(t *testing.T) {
	dataDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dataDir, "menu.json"), []byte(`{broken`), 0o644); err != nil {
		t.Fatalf("failed to write definitions: %v", err)
	}

	cfg := testConfig(t)
	cfg.NavDataDir = dataDir
	cfg.NavStrict = true
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected strict loading to fail")
	}
}

func TestAssetModTimeRejectsForeignPaths(t *testing.T) {
	application := newTestApplication(t, testConfig(t))

	if _, err := application.assetModTime("/other/file.css"); err == nil {
		t.Fatalf("expected error for non-static path")
	}
	if _, err := application.assetModTime("/static/css/animated-nav.css"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
