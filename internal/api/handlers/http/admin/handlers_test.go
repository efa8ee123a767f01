package admin_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"log/slog"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Fouss011/ayii-ratp/internal/api/handlers/http/admin"
	mock_admin "github.com/Fouss011/ayii-ratp/internal/api/handlers/http/admin/mocks"
	"github.com/Fouss011/ayii-ratp/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newHandler(ctrl *gomock.Controller) (*admin.Handler, *mock_admin.MockAdminOps, *mock_admin.MockStatsGetter, *mock_admin.MockSweeper) {
	ops := mock_admin.NewMockAdminOps(ctrl)
	stats := mock_admin.NewMockStatsGetter(ctrl)
	sweep := mock_admin.NewMockSweeper(ctrl)
	return admin.NewHandler(newTestLogger(), ops, stats, sweep), ops, stats, sweep
}

func TestAdminSeed_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, ops, _, _ := newHandler(ctrl)
	id := uuid.New()
	ops.EXPECT().
		Seed(gomock.Any(), domain.SeedEntityRequest{Kind: domain.KindFire, Lat: 48.85, Lng: 2.35}).
		Return(id, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/seed",
		bytes.NewBufferString(`{"kind":"fire","lat":48.85,"lng":2.35}`))
	rr := httptest.NewRecorder()

	h.AdminSeed(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	var got map[string]string
	_ = json.Unmarshal(rr.Body.Bytes(), &got)
	if got["id"] != id.String() {
		t.Fatalf("want %s got %s", id, got["id"])
	}
}

func TestAdminWipe_RequiresConfirm(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/wipe", nil)
	rr := httptest.NewRecorder()

	h.AdminWipe(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("wipe without confirm must fail, got %d", rr.Code)
	}
}

func TestAdminWipe_Confirmed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, ops, _, _ := newHandler(ctrl)
	ops.EXPECT().Wipe(gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/wipe?confirm=yes", nil)
	rr := httptest.NewRecorder()

	h.AdminWipe(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
}

func TestAdminSweep_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, sweep := newHandler(ctrl)
	sweep.EXPECT().SweepExpired(gomock.Any()).Return(int64(7), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/sweep", nil)
	rr := httptest.NewRecorder()

	h.AdminSweep(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	var got map[string]int64
	_ = json.Unmarshal(rr.Body.Bytes(), &got)
	if got["closed"] != 7 {
		t.Fatalf("want 7 closed, got %d", got["closed"])
	}
}

func TestAdminStats_DefaultsHours(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, stats, _ := newHandler(ctrl)
	stats.EXPECT().
		Summary(gomock.Any(), domain.StatsRequest{Hours: 24}).
		Return(&domain.StatsSummary{Hours: 24, TotalReports: 10}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rr := httptest.NewRecorder()

	h.AdminStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestAdminExportCSV(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, ops, _, _ := newHandler(ctrl)
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	ops.EXPECT().
		ExportReports(gomock.Any(), from, gomock.Any(), gomock.Any()).
		Return([]domain.Report{
			{ID: uuid.New(), Kind: domain.KindUrine, Signal: domain.SignalCut, Lat: 48.85, Lng: 2.35, CreatedAt: from},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/export.csv?from=2026-08-01T00:00:00Z", nil)
	rr := httptest.NewRecorder()

	h.AdminExportCSV(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("want csv content type, got %s", ct)
	}
	lines := strings.Split(strings.TrimSpace(rr.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header + 1 row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "urine") || !strings.Contains(lines[1], "cut") {
		t.Fatalf("row missing fields: %s", lines[1])
	}
}

func TestAdminExportCSV_BadFrom(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/export.csv?from=yesterday", nil)
	rr := httptest.NewRecorder()

	h.AdminExportCSV(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}
