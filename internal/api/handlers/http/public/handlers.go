package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/google/uuid"

	"github.com/Fouss011/ayii-ratp/internal/domain"
	"github.com/Fouss011/ayii-ratp/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ReportSubmitter interface {
	Submit(ctx context.Context, req domain.SubmitReportRequest) (*domain.SubmitReportResponse, error)
}

type MapViewer interface {
	Nearby(ctx context.Context, req domain.NearbyRequest) (*domain.NearbyView, error)
}

type AlertZoner interface {
	Zones(ctx context.Context, req domain.AlertZonesRequest) ([]domain.AlertZone, error)
	Acknowledge(ctx context.Context, req domain.AckRequest) (uuid.UUID, error)
}

type Handler struct {
	logger  *slog.Logger
	Reports ReportSubmitter
	Map     MapViewer
	Alerts  AlertZoner
}

func NewHandler(logger *slog.Logger, reports ReportSubmitter, mapViewer MapViewer, alerts AlertZoner) *Handler {
	return &Handler{
		logger:  logger,
		Reports: reports,
		Map:     mapViewer,
		Alerts:  alerts,
	}
}

func (h *Handler) PublicReportSubmit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.SubmitReportRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("report validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l.Info("report submitted",
		slog.String("kind", string(req.Kind)),
		slog.String("signal", string(req.Signal)),
	)

	resp, err := h.Reports.Submit(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) PublicNearby(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	q := r.URL.Query()
	req := domain.NearbyRequest{
		Lat:      parseFloat(q.Get("lat"), 0),
		Lng:      parseFloat(q.Get("lng"), 0),
		RadiusKM: parseFloat(q.Get("radius_km"), 2),
		ShowAll:  q.Get("show_all") == "1" || q.Get("show_all") == "true",
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("nearby validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	view, err := h.Map.Nearby(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("map view served",
		slog.Int("outages", len(view.Outages)),
		slog.Int("incidents", len(view.Incidents)),
	)
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) PublicAlertZones(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	q := r.URL.Query()
	req := domain.AlertZonesRequest{
		Kind:        domain.Kind(q.Get("kind")),
		Lat:         parseFloat(q.Get("lat"), 0),
		Lng:         parseFloat(q.Get("lng"), 0),
		RadiusKM:    parseFloat(q.Get("radius_km"), 5),
		WindowHours: parseInt(q.Get("hours"), 0),
		MinCount:    parseInt(q.Get("min_count"), 0),
		CellMeters:  parseInt(q.Get("cell_m"), 0),
	}
	// zero values mean "use the configured default" and skip validation
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("alert zones validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	zones, err := h.Alerts.Zones(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert zones served",
		slog.String("kind", string(req.Kind)),
		slog.Int("zones", len(zones)),
	)
	h.writeJSON(w, http.StatusOK, map[string]any{"zones": zones})
}

func (h *Handler) PublicAck(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.AckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	id, err := h.Alerts.Acknowledge(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("zone acknowledged", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}
