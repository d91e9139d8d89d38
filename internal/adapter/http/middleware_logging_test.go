package adapthttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := &Server{log: zap.New(core)}
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("OK"))
	})

	handler := s.loggingMiddleware(nextHandler)

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status %d, got %d", http.StatusTeapot, w.Code)
	}

	entries := logs.FilterMessage("http request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != "GET" || fields["path"] != "/test-path" || fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("log entry missing expected fields. Got: %v", fields)
	}
	if fields["bytes"] != int64(2) {
		t.Errorf("expected bytes=2, got %v", fields["bytes"])
	}
}

func TestLoggingMiddlewareDefaultStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := &Server{log: zap.New(core)}
	handler := s.loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	entries := logs.All()
	if len(entries) != 1 || entries[0].ContextMap()["status"] != int64(http.StatusOK) {
		t.Fatalf("expected a single 200 entry, got %v", entries)
	}
}
