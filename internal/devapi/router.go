package devapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/studydash/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

const (
	ServiceName = "StudyDash Dev Backend"

	// RequestsPerMinute is the per-IP limit of every route.
	RequestsPerMinute = 120
)

type ctxKey string

const claimsKey ctxKey = "claims"

type handler struct {
	verifier *Verifier
	source   Source
	logger   logging.Logger
	now      func() time.Time
}

// NewRouter mounts the fixture API:
//
//	GET /api/status           unauthenticated
//	GET /api/dashboard-stats  {"message", "stats"}
//	GET /api/my-notes         {"message", "notes"}
func NewRouter(v *Verifier, src Source, l logging.Logger) http.Handler {
	h := &handler{verifier: v, source: src, logger: l.With("module", "devapi"), now: time.Now}

	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		httprate.Limit(RequestsPerMinute, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)),
	)

	r.Get("/api/status", h.status)
	r.Group(func(r chi.Router) {
		r.Use(h.requireToken)
		r.Get("/api/dashboard-stats", h.dashboardStats)
		r.Get("/api/my-notes", h.myNotes)
	})
	return r
}

func (h *handler) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer"))
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Authorization token missing"})
			return
		}

		claims, err := h.verifier.Verify(token)
		if err != nil {
			h.logger.Warn(r.Context(), "token rejected", "error", err, "request_id", middleware.GetReqID(r.Context()))
			writeJSON(w, http.StatusForbidden, map[string]any{"message": "Invalid or expired token: " + err.Error()})
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

func claimsFrom(ctx context.Context) *Claims {
	c, _ := ctx.Value(claimsKey).(*Claims)
	return c
}

func (h *handler) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "running",
		"service":     ServiceName,
		"server_time": h.now().UTC().Format("2006-01-02 15:04:05"),
	})
}

func (h *handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	uid := claimsFrom(r.Context()).Subject

	stats, err := h.source.DashboardStats(r.Context(), uid)
	if err != nil {
		h.logger.Error(r.Context(), "dashboard stats failed", "uid", uid, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Failed to retrieve dashboard stats: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Dashboard stats retrieved successfully.",
		"stats":   stats,
	})
}

func (h *handler) myNotes(w http.ResponseWriter, r *http.Request) {
	uid := claimsFrom(r.Context()).Subject

	notes, err := h.source.Notes(r.Context(), uid)
	if err != nil {
		h.logger.Error(r.Context(), "notes failed", "uid", uid, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Failed to retrieve notes: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Notes retrieved successfully.",
		"notes":   notes,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
