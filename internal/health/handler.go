// Rentora | 2026
// handler.go

package health

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rentora/rentora/internal/core"
)

// Checker pings one dependency.
type Checker interface {
	Ping(ctx context.Context) error
}

type CheckResult struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

type StatusResponse struct {
	Status string        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

type Handler struct {
	checkers map[string]Checker
	timeout  time.Duration
}

func NewHandler(checkers map[string]Checker) *Handler {
	return &Handler{
		checkers: checkers,
		timeout:  3 * time.Second,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/livez", h.Liveness)
	r.Get("/readyz", h.Readiness)
	r.Get("/healthz", h.Readiness)
}

// Liveness answers as long as the process serves requests; it checks
// nothing downstream.
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	core.OK(w, StatusResponse{Status: "ok"})
}

// Readiness pings every registered dependency and reports 503 when
// any of them fails.
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	checks := make([]CheckResult, 0, len(h.checkers))
	healthy := true

	for name, checker := range h.checkers {
		result := CheckResult{Name: name, Healthy: true}
		if err := checker.Ping(ctx); err != nil {
			result.Healthy = false
			result.Error = err.Error()
			healthy = false
		}
		checks = append(checks, result)
	}

	status := "ok"
	code := http.StatusOK
	if !healthy {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	core.JSON(w, code, StatusResponse{Status: status, Checks: checks})
}
