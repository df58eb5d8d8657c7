package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/codehardth/calc/internal/server"
)

type evaluationResponse struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
	State      string `json:"state"`
	Result     string `json:"result"`
	Error      string `json:"error"`
}

func postExpression(t *testing.T, handler http.Handler, source string) evaluationResponse {
	t.Helper()

	body := strings.NewReader(`{"expression": ` + quote(source) + `}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/expressions:evaluate", body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status for %q: got %d, want %d", source, rec.Code, http.StatusOK)
	}

	var res evaluationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("should decode response for %q: %v", source, err)
	}
	return res
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestEvaluateEndpoint(t *testing.T) {
	t.Parallel()

	handler := server.NewHTTPHandler()

	res := postExpression(t, handler, "2 + 3 * 4")
	if res.State != "SUCCEEDED" {
		t.Errorf("unexpected state: got %q, want SUCCEEDED", res.State)
	}
	if res.Result != "14" {
		t.Errorf("unexpected result: got %q, want %q", res.Result, "14")
	}
	if res.Name != "evaluations/1" {
		t.Errorf("unexpected name: got %q, want %q", res.Name, "evaluations/1")
	}
}

func TestEvaluateEndpointReportsFailures(t *testing.T) {
	t.Parallel()

	handler := server.NewHTTPHandler()

	res := postExpression(t, handler, "10 / 0")
	if res.State != "FAILED" {
		t.Errorf("unexpected state: got %q, want FAILED", res.State)
	}
	if res.Error != "Division by zero" {
		t.Errorf("unexpected error: got %q, want %q", res.Error, "Division by zero")
	}
	if res.Result != "" {
		t.Errorf("failed evaluation should carry no result, got %q", res.Result)
	}
}

func TestListEndpoint(t *testing.T) {
	t.Parallel()

	handler := server.NewHTTPHandler()
	postExpression(t, handler, "1 + 1")
	postExpression(t, handler, "2 + 2")

	req := httptest.NewRequest(http.MethodGet, "/v1/expressions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var res struct {
		Evaluations []evaluationResponse `json:"evaluations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("should decode response: %v", err)
	}

	if len(res.Evaluations) != 2 {
		t.Fatalf("unexpected number of evaluations: got %d, want 2", len(res.Evaluations))
	}
	// most recent first
	if res.Evaluations[0].Expression != "2 + 2" || res.Evaluations[1].Expression != "1 + 1" {
		t.Errorf("unexpected order: got %q then %q", res.Evaluations[0].Expression, res.Evaluations[1].Expression)
	}
}

func TestRejectsUnknownPath(t *testing.T) {
	t.Parallel()

	handler := server.NewHTTPHandler()

	for _, path := range []string{"/", "/v1/workflows", "/v1/expressionsfoo"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("unexpected status for %q: got %d, want %d", path, rec.Code, http.StatusNotFound)
		}
	}
}

func TestRejectsWrongMethod(t *testing.T) {
	t.Parallel()

	handler := server.NewHTTPHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/expressions:evaluate", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("unexpected status: got %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/expressions", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("unexpected status: got %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestRejectsMalformedBody(t *testing.T) {
	t.Parallel()

	handler := server.NewHTTPHandler()

	for _, body := range []string{"", "{", `{"expression": ""}`, `{"other": "1 + 1"}`} {
		req := httptest.NewRequest(http.MethodPost, "/v1/expressions:evaluate", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("unexpected status for body %q: got %d, want %d", body, rec.Code, http.StatusBadRequest)
		}
	}
}
