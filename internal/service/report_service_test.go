package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/Fouss011/ayii-ratp/internal/config"
	"github.com/Fouss011/ayii-ratp/internal/domain"
	"github.com/Fouss011/ayii-ratp/internal/observability"
	"github.com/Fouss011/ayii-ratp/internal/service"
	mock_service "github.com/Fouss011/ayii-ratp/internal/service/mocks"
	"github.com/Fouss011/ayii-ratp/pkg/e"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAggConfig() config.AggregationConfig {
	return config.AggregationConfig{
		MergeRadiusM:         300,
		CloseSearchM:         3000,
		CloseFactor:          1.5,
		CloseHardCapM:        1500,
		IncidentCloseM:       800,
		OutageStaleWindow:    45 * time.Minute,
		OutageStaleFactor:    1.5,
		DefaultOutageRadiusM: 500,
		IncidentTTL: map[domain.Kind]time.Duration{
			domain.KindTraffic: 45 * time.Minute,
		},
		IncidentTTLDefault: 45 * time.Minute,
	}
}

type reportFixture struct {
	reports   *mock_service.MockReportStore
	incidents *mock_service.MockIncidentStore
	outages   *mock_service.MockOutageStore
	firehose  *mock_service.MockReportPublisher
	clock     clockwork.Clock
	svc       service.ReportService
}

func newReportFixture(t *testing.T, ctrl *gomock.Controller) *reportFixture {
	t.Helper()
	f := &reportFixture{
		reports:   mock_service.NewMockReportStore(ctrl),
		incidents: mock_service.NewMockIncidentStore(ctrl),
		outages:   mock_service.NewMockOutageStore(ctrl),
		firehose:  mock_service.NewMockReportPublisher(ctrl),
		clock:     clockwork.NewFakeClockAt(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)),
	}
	f.firehose.EXPECT().Enabled().Return(false).AnyTimes()
	f.svc = service.NewReportService(
		f.reports, f.incidents, f.outages, f.firehose,
		observability.NewMetricsForTesting(), testLogger(), f.clock, testAggConfig(),
	)
	return f
}

func TestSubmit_RejectsUnknownKind(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReportFixture(t, ctrl)
	_, err := f.svc.Submit(context.Background(), domain.SubmitReportRequest{
		Kind: "earthquake", Signal: domain.SignalCut, Lat: 48.85, Lng: 2.35,
	})
	if !errors.Is(err, e.ErrUnknownKind) {
		t.Fatalf("want ErrUnknownKind, got %v", err)
	}
}

func TestSubmit_RejectsBadCoordinates(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReportFixture(t, ctrl)
	_, err := f.svc.Submit(context.Background(), domain.SubmitReportRequest{
		Kind: domain.KindUrine, Signal: domain.SignalCut, Lat: 95, Lng: 2.35,
	})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("want ErrInvalidCoordinates, got %v", err)
	}
}

func TestSubmit_CutIncident_Merged(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReportFixture(t, ctrl)
	incID := uuid.New()

	f.reports.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.incidents.EXPECT().
		UpsertOccurrence(gomock.Any(), domain.KindUrine, 48.8566, 2.3522, 300.0, gomock.Any()).
		Return(incID, true, nil)

	resp, err := f.svc.Submit(context.Background(), domain.SubmitReportRequest{
		Kind: domain.KindUrine, Signal: domain.SignalCut, Lat: 48.8566, Lng: 2.3522,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Aggregation != domain.AggregationOK {
		t.Fatalf("want ok outcome, got %s", resp.Aggregation)
	}
	if resp.EntityID == nil || *resp.EntityID != incID {
		t.Fatalf("want entity %s, got %v", incID, resp.EntityID)
	}
}

func TestSubmit_CutIncident_AggregationFailureKeepsReport(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReportFixture(t, ctrl)
	f.reports.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.incidents.EXPECT().
		UpsertOccurrence(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uuid.Nil, false, errors.New("pg down"))

	resp, err := f.svc.Submit(context.Background(), domain.SubmitReportRequest{
		Kind: domain.KindFire, Signal: domain.SignalCut, Lat: 48.85, Lng: 2.35,
	})
	if err != nil {
		t.Fatalf("report must still be accepted: %v", err)
	}
	if resp.Aggregation != domain.AggregationFailed {
		t.Fatalf("want failed outcome, got %s", resp.Aggregation)
	}
	if resp.ID == uuid.Nil {
		t.Fatal("report id missing")
	}
}

func TestSubmit_InsertFailureFailsCall(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReportFixture(t, ctrl)
	f.reports.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	_, err := f.svc.Submit(context.Background(), domain.SubmitReportRequest{
		Kind: domain.KindUrine, Signal: domain.SignalCut, Lat: 48.85, Lng: 2.35,
	})
	if err == nil {
		t.Fatal("want error when the report row cannot be written")
	}
}

func TestSubmit_RestoredIncident_ClearsNearest(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReportFixture(t, ctrl)
	incID := uuid.New()

	f.reports.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.incidents.EXPECT().
		ClearNearest(gomock.Any(), domain.KindVomit, 48.85, 2.35, 800.0, gomock.Any()).
		Return(&incID, nil)

	resp, err := f.svc.Submit(context.Background(), domain.SubmitReportRequest{
		Kind: domain.KindVomit, Signal: domain.SignalRestored, Lat: 48.85, Lng: 2.35,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Aggregation != domain.AggregationOK || resp.EntityID == nil {
		t.Fatalf("want ok with entity, got %+v", resp)
	}
}

func TestSubmit_RestoredOutage_NoMatchIsNone(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReportFixture(t, ctrl)
	f.reports.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.outages.EXPECT().
		CloseNearestRestored(gomock.Any(), domain.KindPower, 48.85, 2.35, 3000.0, 1.5, 1500.0, gomock.Any()).
		Return(nil, nil)

	resp, err := f.svc.Submit(context.Background(), domain.SubmitReportRequest{
		Kind: domain.KindPower, Signal: domain.SignalRestored, Lat: 48.85, Lng: 2.35,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Aggregation != domain.AggregationNone {
		t.Fatalf("want none outcome, got %s", resp.Aggregation)
	}
	if resp.EntityID != nil {
		t.Fatalf("want no entity, got %v", resp.EntityID)
	}
}

func TestSubmit_CutOutage_AttachesToNearestActive(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReportFixture(t, ctrl)
	existingID := uuid.New()

	// the store resolves nearest-wins; the service must query strictly
	// within the merge radius and attach to whatever comes back
	f.reports.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.outages.EXPECT().
		NearestActive(gomock.Any(), domain.KindWater, 48.85, 2.35, 300.0).
		Return(&existingID, nil)

	resp, err := f.svc.Submit(context.Background(), domain.SubmitReportRequest{
		Kind: domain.KindWater, Signal: domain.SignalCut, Lat: 48.85, Lng: 2.35,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.EntityID == nil || *resp.EntityID != existingID {
		t.Fatalf("want attach to %s, got %v", existingID, resp.EntityID)
	}
}

func TestSubmit_CutOutage_OpensNewWhenNoneNearby(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReportFixture(t, ctrl)
	f.reports.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.outages.EXPECT().NearestActive(gomock.Any(), domain.KindPower, 48.85, 2.35, 300.0).Return(nil, nil)

	var created *domain.Outage
	f.outages.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *domain.Outage) error {
			created = o
			return nil
		})

	resp, err := f.svc.Submit(context.Background(), domain.SubmitReportRequest{
		Kind: domain.KindPower, Signal: domain.SignalCut, Lat: 48.85, Lng: 2.35,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("outage not created")
	}
	if created.RadiusM != 500 {
		t.Fatalf("want default radius 500, got %f", created.RadiusM)
	}
	if created.Status != domain.OutageOngoing {
		t.Fatalf("want ongoing status, got %s", created.Status)
	}
	if resp.EntityID == nil || *resp.EntityID != created.ID {
		t.Fatalf("entity id mismatch: %v vs %s", resp.EntityID, created.ID)
	}
}
