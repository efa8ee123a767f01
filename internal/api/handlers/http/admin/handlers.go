package admin

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Fouss011/ayii-ratp/internal/domain"
	"github.com/Fouss011/ayii-ratp/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AdminOps interface {
	Seed(ctx context.Context, req domain.SeedEntityRequest) (uuid.UUID, error)
	ReopenNearest(ctx context.Context, req domain.NearEntityRequest) (*uuid.UUID, error)
	PurgeReports(ctx context.Context, olderThanHours int) (int64, error)
	Wipe(ctx context.Context) error
	EnsureSchema(ctx context.Context) error
	ExportReports(ctx context.Context, from, to time.Time, limit int) ([]domain.Report, error)
}

type StatsGetter interface {
	Summary(ctx context.Context, req domain.StatsRequest) (*domain.StatsSummary, error)
}

type Sweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

type Handler struct {
	logger *slog.Logger
	Admin  AdminOps
	Stats  StatsGetter
	Sweep  Sweeper
}

func NewHandler(logger *slog.Logger, admin AdminOps, stats StatsGetter, sweep Sweeper) *Handler {
	return &Handler{
		logger: logger,
		Admin:  admin,
		Stats:  stats,
		Sweep:  sweep,
	}
}

func (h *Handler) AdminSeed(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.SeedEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	id, err := h.Admin.Seed(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("entity seeded", slog.String("kind", string(req.Kind)), slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) AdminReopenNearest(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.NearEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	id, err := h.Admin.ReopenNearest(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if id == nil {
		h.writeJSON(w, http.StatusOK, map[string]any{"reopened": nil})
		return
	}

	l.Info("entity reopened", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, map[string]string{"reopened": id.String()})
}

func (h *Handler) AdminPurgeReports(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	hours := parseInt(r.URL.Query().Get("older_than_hours"), 0)
	n, err := h.Admin.PurgeReports(r.Context(), hours)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("reports purged", slog.Int64("deleted", n))
	h.writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}

func (h *Handler) AdminWipe(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	if r.URL.Query().Get("confirm") != "yes" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "confirm=yes required"})
		return
	}
	if err := h.Admin.Wipe(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Warn("all data wiped", slog.String("remote", r.RemoteAddr))
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "wiped"})
}

func (h *Handler) AdminEnsureSchema(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.EnsureSchema(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) AdminSweep(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	n, err := h.Sweep.SweepExpired(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("manual sweep done", slog.Int64("closed", n))
	h.writeJSON(w, http.StatusOK, map[string]int64{"closed": n})
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	req := domain.StatsRequest{Hours: parseInt(r.URL.Query().Get("hours"), 24)}

	summary, err := h.Stats.Summary(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

// AdminExportCSV streams reports in a window as CSV.
func (h *Handler) AdminExportCSV(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	q := r.URL.Query()

	from, err := time.Parse(time.RFC3339, q.Get("from"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "from must be RFC3339"})
		return
	}
	var to time.Time
	if raw := q.Get("to"); raw != "" {
		to, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "to must be RFC3339"})
			return
		}
	}
	limit := parseInt(q.Get("limit"), 0)

	reports, err := h.Admin.ExportReports(r.Context(), from, to, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="reports.csv"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"id", "kind", "signal", "lat", "lng", "created_at"})
	for _, rep := range reports {
		_ = cw.Write([]string{
			rep.ID.String(),
			string(rep.Kind),
			string(rep.Signal),
			strconv.FormatFloat(rep.Lat, 'f', -1, 64),
			strconv.FormatFloat(rep.Lng, 'f', -1, 64),
			rep.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		l.Error("csv flush failed", slog.Any("error", err))
	}

	l.Info("reports exported", slog.Int("rows", len(reports)))
}
