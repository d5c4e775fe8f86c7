package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestIsBodyTooLarge(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "max bytes error", err: &http.MaxBytesError{Limit: 1}, want: true},
		{name: "http too large string", err: errors.New("http: request body too large"), want: true},
		{name: "other error", err: errors.New("boom"), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBodyTooLarge(tc.err); got != tc.want {
				t.Fatalf("IsBodyTooLarge(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestReadLimitedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		b, err := ReadLimitedBody(c, 8)
		if err != nil {
			if IsBodyTooLarge(err) {
				c.String(http.StatusRequestEntityTooLarge, "too large")
				return
			}
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.String(http.StatusOK, string(b))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small")))
	if w.Code != http.StatusOK || w.Body.String() != "small" {
		t.Fatalf("expected echo of small body, got %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("much too large")))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status 413, got %d", w.Code)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if _, err := uuid.Parse(w.Body.String()); err != nil {
		t.Fatalf("expected generated uuid, got %q", w.Body.String())
	}
	if w.Header().Get(RequestIDHeader) != w.Body.String() {
		t.Fatalf("expected response header to echo request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "abc-123" {
		t.Fatalf("expected inbound id to be reused, got %q", w.Body.String())
	}
}
