package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestBuildContentSecurityPolicyAllowsInlineStyles(t *testing.T) {
	directives := parseContentSecurityPolicy(buildContentSecurityPolicy())

	styleSrc, ok := directives["style-src"]
	if !ok {
		t.Fatalf("expected style-src directive to be present")
	}
	for _, required := range []string{"'self'", "'unsafe-inline'"} {
		if _, allowed := styleSrc[required]; !allowed {
			t.Fatalf("expected style-src to allow %s", required)
		}
	}

	if _, allowed := directives["script-src"]["'none'"]; !allowed {
		t.Fatalf("expected scripts to be disabled")
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SecurityHeadersMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := recorder.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected nosniff, got %q", got)
	}
	if recorder.Header().Get("Content-Security-Policy") == "" {
		t.Fatalf("expected a content security policy")
	}
	if recorder.Header().Get("Strict-Transport-Security") != "" {
		t.Fatalf("expected no HSTS header over plain HTTP")
	}
}

func parseContentSecurityPolicy(policy string) map[string]map[string]struct{} {
	result := make(map[string]map[string]struct{})

	for _, directive := range strings.Split(policy, ";") {
		directive = strings.TrimSpace(directive)
		if directive == "" {
			continue
		}

		parts := strings.Fields(directive)
		if len(parts) == 0 {
			continue
		}

		name := parts[0]
		values := make(map[string]struct{}, len(parts)-1)
		for _, value := range parts[1:] {
			values[value] = struct{}{}
		}

		result[name] = values
	}

	return result
}
