package assist

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter() chi.Router {
	r := chi.NewRouter()
	NewHandler(NewEngine(), 0, 0).RegisterRoutes(r)
	return r
}

func TestHandleMessage(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assist/message", strings.NewReader(`{"message":"How do I register?"}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp messageResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !strings.Contains(resp.Reply, "click the 'Register' tab") {
		t.Errorf("Expected onboarding reply, got %q", resp.Reply)
	}
	if len(resp.Suggestions) != 3 || resp.Suggestions[0] != "What information do I need?" {
		t.Errorf("Expected registration suggestions, got %v", resp.Suggestions)
	}
}

func TestHandleMessageRejectsEmpty(t *testing.T) {
	r := newTestRouter()

	for _, body := range []string{`{"message":""}`, `{"message":"   "}`, `not json`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/assist/message", strings.NewReader(body))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected status 400, got %d", body, w.Code)
		}
	}
}
