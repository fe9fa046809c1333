// Package portal serves the read-only client view of a project: stage
// progress, construction diary and material approvals, reachable through a
// signed share link instead of an account.
package portal

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tr013432-design/spazio/internal/domain"
	"github.com/tr013432-design/spazio/internal/insights"
	"github.com/tr013432-design/spazio/internal/service"
)

type Handler struct {
	projects service.ProjectService
	issuer   *ShareLinkIssuer
	logger   *slog.Logger
}

func NewHandler(projects service.ProjectService, issuer *ShareLinkIssuer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{projects: projects, issuer: issuer, logger: logger}
}

// Router builds the portal HTTP handler with logging, recovery and CORS for
// the browser client.
func Router(h *Handler, allowOrigin string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{allowOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/portal/{token}", func(r chi.Router) {
		r.Get("/", h.getProject)
		r.Post("/materials/{materialID}/approve", h.approveMaterial)
	})

	return r
}

type stepView struct {
	Stage string `json:"stage"`
	State string `json:"state"`
}

type dailyLogView struct {
	Date     string `json:"date"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type materialView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Status   string `json:"status"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type projectView struct {
	Title       string         `json:"title"`
	ClientName  string         `json:"clientName"`
	Stage       string         `json:"stage"`
	Stepper     []stepView     `json:"stepper"`
	Progress    int            `json:"progress"`
	PaidValue   int64          `json:"paidValue"`
	TotalValue  int64          `json:"totalValue"`
	PaidPercent int            `json:"paidPercent"`
	Deadline    string         `json:"deadline,omitempty"`
	DailyLogs   []dailyLogView `json:"dailyLogs"`
	Materials   []materialView `json:"materials"`
}

func stepStateLabel(s domain.StepState) string {
	switch s {
	case domain.StepCompleted:
		return "completed"
	case domain.StepCurrent:
		return "current"
	default:
		return "locked"
	}
}

func buildView(p *domain.Project) projectView {
	view := projectView{
		Title:       p.Title,
		ClientName:  p.ClientName,
		Stage:       string(p.Stage),
		Progress:    p.Progress,
		PaidValue:   p.PaidValue,
		TotalValue:  p.TotalValue,
		PaidPercent: insights.PaidPercent(p.PaidValue, p.TotalValue),
		DailyLogs:   []dailyLogView{},
		Materials:   []materialView{},
	}
	if p.Deadline != nil {
		view.Deadline = p.Deadline.Format("2006-01-02")
	}

	stages := domain.ProjectStages()
	for i, state := range domain.ProjectStepper(p.Stage) {
		view.Stepper = append(view.Stepper, stepView{
			Stage: string(stages[i]),
			State: stepStateLabel(state),
		})
	}
	for _, l := range p.DailyLogs {
		view.DailyLogs = append(view.DailyLogs, dailyLogView{
			Date:     l.Date.Format("2006-01-02"),
			Content:  l.Content,
			ImageURL: l.ImageURL,
		})
	}
	for _, m := range p.MaterialApprovals {
		view.Materials = append(view.Materials, materialView{
			ID:       m.ID,
			Name:     m.Name,
			Category: m.Category,
			Status:   string(m.Status),
			ImageURL: m.ImageURL,
		})
	}
	return view
}

func (h *Handler) resolveProject(w http.ResponseWriter, r *http.Request) *domain.Project {
	projectID, err := h.issuer.Verify(chi.URLParam(r, "token"))
	if err != nil {
		http.Error(w, "share link is invalid or has expired", http.StatusUnauthorized)
		return nil
	}
	p, err := h.projects.GetByID(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "project no longer exists", http.StatusNotFound)
			return nil
		}
		h.logger.Error("loading portal project", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil
	}
	return p
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	p := h.resolveProject(w, r)
	if p == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(buildView(p)); err != nil {
		h.logger.Error("encoding portal response", "error", err)
	}
}

func (h *Handler) approveMaterial(w http.ResponseWriter, r *http.Request) {
	p := h.resolveProject(w, r)
	if p == nil {
		return
	}

	materialID := chi.URLParam(r, "materialID")
	owned := false
	for _, m := range p.MaterialApprovals {
		if m.ID == materialID {
			owned = true
			break
		}
	}
	if !owned {
		http.Error(w, "material not part of this project", http.StatusNotFound)
		return
	}

	if err := h.projects.ReviewMaterial(r.Context(), materialID, true); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			http.Error(w, "material already reviewed", http.StatusConflict)
			return
		}
		h.logger.Error("approving material", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"id":     materialID,
		"status": string(domain.MaterialApproved),
	})
}

// Serve runs the portal on addr until the context ends.
func Serve(addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("client portal listening", "addr", addr)
	return srv.ListenAndServe()
}
