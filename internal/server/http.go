// Package server exposes the expression pipeline over HTTP. Every
// evaluation is recorded and listable, mirroring an executions-style API.
package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/samber/lo"

	"github.com/codehardth/calc/internal/expression"
)

var basePathRegexp = regexp.MustCompile(`^/v1/expressions`)

const (
	stateSucceeded = "SUCCEEDED"
	stateFailed    = "FAILED"
)

type evaluation struct {
	Name       string    `json:"name"`
	Expression string    `json:"expression"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	State      string    `json:"state"`
	Result     string    `json:"result,omitempty"`
	Error      string    `json:"error,omitempty"`
}

type httpHandler struct {
	idBase      uint64
	evaluations sync.Map
}

// NewHTTPHandler returns the handler serving the evaluation API:
//
//	POST /v1/expressions:evaluate  evaluate {"expression": "..."}
//	GET  /v1/expressions           list recorded evaluations
func NewHTTPHandler() http.Handler {
	return &httpHandler{}
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !basePathRegexp.MatchString(r.URL.Path) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	switch r.URL.Path {
	case "/v1/expressions:evaluate":
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		h.evaluate(w, r)

	case "/v1/expressions":
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		h.list(w)

	default:
		http.Error(w, "Not Found", http.StatusNotFound)
	}
}

func (h *httpHandler) evaluate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req struct {
		Expression string `json:"expression"`
	}
	if err := json.Unmarshal(body, &req); err != nil || req.Expression == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	id := atomic.AddUint64(&h.idBase, 1)
	ev := evaluation{
		Name:       fmt.Sprintf("evaluations/%d", id),
		Expression: req.Expression,
		StartTime:  time.Now(),
	}

	// an evaluation failure is an expected outcome, not a transport error
	v, err := expression.EvaluateString(req.Expression).Unwrap()
	ev.EndTime = time.Now()
	if err != nil {
		ev.State = stateFailed
		ev.Error = err.Error()
	} else {
		ev.State = stateSucceeded
		ev.Result = expression.FormatValue(v)
	}

	h.evaluations.Store(id, ev)
	writeJSON(w, ev)
}

func (h *httpHandler) list(w http.ResponseWriter) {
	type entry struct {
		id uint64
		ev evaluation
	}

	var entries []entry
	h.evaluations.Range(func(key, value any) bool {
		entries = append(entries, entry{id: key.(uint64), ev: value.(evaluation)})
		return true
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].id > entries[j].id // most recent first
	})

	writeJSON(w, map[string]any{
		"evaluations": lo.Map(entries, func(e entry, _ int) evaluation { return e.ev }),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("failed to marshal response: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err = w.Write(b); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}
