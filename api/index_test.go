package handler

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandler_SharesStoreAcrossInvocations(t *testing.T) {
	t.Setenv("API_ROOT_PATH", "")
	prev := log.Writer()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(prev) })

	req := httptest.NewRequest(http.MethodPost, "/todos", strings.NewReader(`{"task":"t","description":"d"}`))
	rr := httptest.NewRecorder()
	Handler(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("POST /todos status=%d, want %d; body=%s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	Handler(rr, httptest.NewRequest(http.MethodGet, "/todos/1", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /todos/1 status=%d, want %d", rr.Code, http.StatusOK)
	}
}
