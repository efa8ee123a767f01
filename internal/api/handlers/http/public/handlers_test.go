package public_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Fouss011/ayii-ratp/internal/api/handlers/http/public"
	mock_public "github.com/Fouss011/ayii-ratp/internal/api/handlers/http/public/mocks"
	"github.com/Fouss011/ayii-ratp/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func newHandler(ctrl *gomock.Controller) (*public.Handler, *mock_public.MockReportSubmitter, *mock_public.MockMapViewer, *mock_public.MockAlertZoner) {
	reports := mock_public.NewMockReportSubmitter(ctrl)
	mapViewer := mock_public.NewMockMapViewer(ctrl)
	alerts := mock_public.NewMockAlertZoner(ctrl)
	return public.NewHandler(newTestLogger(), reports, mapViewer, alerts), reports, mapViewer, alerts
}

func TestPublicReportSubmit_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, reports, _, _ := newHandler(ctrl)

	reqBody := `{"kind":"urine","signal":"cut","lat":48.8566,"lng":2.3522}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/report", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	entityID := uuid.New()
	wantResp := &domain.SubmitReportResponse{
		ID:          uuid.New(),
		EntityID:    &entityID,
		Aggregation: domain.AggregationOK,
	}
	reports.EXPECT().
		Submit(gomock.Any(), domain.SubmitReportRequest{
			Kind: domain.KindUrine, Signal: domain.SignalCut, Lat: 48.8566, Lng: 2.3522,
		}).
		Return(wantResp, nil).
		Times(1)

	h.PublicReportSubmit(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.SubmitReportResponse](t, rr)
	if got.Aggregation != domain.AggregationOK {
		t.Fatalf("unexpected outcome: %s", got.Aggregation)
	}
}

func TestPublicReportSubmit_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/report", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.PublicReportSubmit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPublicReportSubmit_BadLatitude_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	reqBody := `{"kind":"urine","signal":"cut","lat":95,"lng":2.3522}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/report", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.PublicReportSubmit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPublicNearby_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mapViewer, _ := newHandler(ctrl)

	mapViewer.EXPECT().
		Nearby(gomock.Any(), domain.NearbyRequest{Lat: 48.85, Lng: 2.35, RadiusKM: 2}).
		Return(&domain.NearbyView{
			Outages:       []domain.Outage{},
			Incidents:     []domain.Incident{{ID: uuid.New(), Kind: domain.KindFire, Active: true}},
			RecentReports: []domain.Report{},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nearby?lat=48.85&lng=2.35&radius_km=2", nil)
	rr := httptest.NewRecorder()

	h.PublicNearby(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.NearbyView](t, rr)
	if len(got.Incidents) != 1 {
		t.Fatalf("want 1 incident, got %d", len(got.Incidents))
	}
}

func TestPublicNearby_BadRadius_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	// radius_km below the 0.1 floor fails validation
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nearby?lat=48.85&lng=2.35&radius_km=0.01", nil)
	rr := httptest.NewRecorder()

	h.PublicNearby(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPublicAlertZones_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, alerts := newHandler(ctrl)

	alerts.EXPECT().
		Zones(gomock.Any(), gomock.Any()).
		Return([]domain.AlertZone{
			{Kind: domain.KindUrine, Lat: 48.8566, Lng: 2.3522, RadiusM: 150, Count: 4},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/alert_zones?kind=urine&lat=48.85&lng=2.35&radius_km=5", nil)
	rr := httptest.NewRecorder()

	h.PublicAlertZones(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string][]domain.AlertZone](t, rr)
	if len(got["zones"]) != 1 || got["zones"][0].Count != 4 {
		t.Fatalf("unexpected zones payload: %+v", got)
	}
}

func TestPublicAlertZones_OutOfRangeParams_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, alerts := newHandler(ctrl)
	alerts.EXPECT().Zones(gomock.Any(), gomock.Any()).Times(0)

	for _, query := range []string{
		"kind=urine&lat=48.85&lng=2.35&cell_m=1000000",
		"kind=urine&lat=48.85&lng=2.35&hours=500",
		"kind=urine&lat=48.85&lng=2.35&min_count=9999",
		"lat=48.85&lng=2.35", // missing kind
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/alert_zones?"+query, nil)
		rr := httptest.NewRecorder()

		h.PublicAlertZones(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("query %q: expected %d got %d body=%s", query, http.StatusBadRequest, rr.Code, rr.Body.String())
		}
	}
}

func TestPublicAlertZones_ZeroTunablesPassThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, alerts := newHandler(ctrl)

	// omitted tunables stay zero so the service substitutes its defaults
	alerts.EXPECT().
		Zones(gomock.Any(), domain.AlertZonesRequest{
			Kind: domain.KindUrine, Lat: 48.85, Lng: 2.35, RadiusKM: 5,
		}).
		Return([]domain.AlertZone{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/alert_zones?kind=urine&lat=48.85&lng=2.35", nil)
	rr := httptest.NewRecorder()

	h.PublicAlertZones(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestPublicAck_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, alerts := newHandler(ctrl)

	ackID := uuid.New()
	alerts.EXPECT().
		Acknowledge(gomock.Any(), domain.AckRequest{Kind: domain.KindSyringe, Lat: 48.85, Lng: 2.35}).
		Return(ackID, nil)

	reqBody := `{"kind":"syringe","lat":48.85,"lng":2.35}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ack", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.PublicAck(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]string](t, rr)
	if got["id"] != ackID.String() {
		t.Fatalf("want ack id %s, got %s", ackID, got["id"])
	}
}
