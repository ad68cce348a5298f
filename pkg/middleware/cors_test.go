package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsHandler() http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot) // marker: did the request reach the handler
	})
	return CORS(DefaultCORSOptions())(inner)
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	corsHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/products", nil))

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("Allow-Methods header missing")
	}
	if rec.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Error("Allow-Headers header missing")
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	rec := httptest.NewRecorder()
	corsHandler().ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/api/faq", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("preflight body = %q, want empty", rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
}

func TestCORSPassesNonPreflightThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	corsHandler().ServeHTTP(rec, httptest.NewRequest("POST", "/api/contact", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want handler marker 418", rec.Code)
	}
}
