package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"animated-nav/pkg/logger"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var fromContext interface{}
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) {
		fromContext = logger.FromContext(c.Request.Context()).Data["request_id"]
		c.Status(http.StatusOK)
	})

	t.Run("Generated", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		id := recorder.Header().Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected generated uuid, got %q", id)
		}
		if fromContext != id {
			t.Fatalf("expected request id in log context, got %v", fromContext)
		}
	})

	t.Run("Propagated", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "upstream-id")
		router.ServeHTTP(recorder, req)

		if got := recorder.Header().Get(RequestIDHeader); got != "upstream-id" {
			t.Fatalf("expected propagated id, got %q", got)
		}
	})

	t.Run("Replaced", func(t *testing.T) {
		cases := map[string]string{
			"log injection": "abc\nlevel=error msg=forged",
			"spaces":        "upstream id",
			"punctuation":   "id;drop",
			"too long":      strings.Repeat("a", 129),
		}

		for name, header := range cases {
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, header)
			router.ServeHTTP(recorder, req)

			id := recorder.Header().Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				t.Errorf("%s: expected replacement uuid, got %q", name, id)
			}
			if fromContext != id {
				t.Errorf("%s: expected replacement id in log context, got %v", name, fromContext)
			}
		}
	})
}
