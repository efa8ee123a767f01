package domain

import (
	"time"

	"github.com/google/uuid"
)

type SubmitReportRequest struct {
	Kind      Kind    `json:"kind" validate:"required"`
	Signal    Signal  `json:"signal" validate:"required"`
	Lat       float64 `json:"lat" validate:"lat"`
	Lng       float64 `json:"lng" validate:"lng"`
	AccuracyM *int    `json:"accuracy_m,omitempty" validate:"omitempty,min=0"`
	Note      *string `json:"note,omitempty"`
	MediaRef  *string `json:"media_ref,omitempty"`
	UserID    *string `json:"user_id,omitempty" validate:"omitempty,uuid"`
	DeviceID  *string `json:"device_id,omitempty"`
}

// AggregationOutcome tells the caller what happened after the report row was
// committed. The report itself is durable either way; a failed side effect is
// reported, not rolled back.
type AggregationOutcome string

const (
	AggregationOK     AggregationOutcome = "ok"
	AggregationFailed AggregationOutcome = "failed"
	AggregationNone   AggregationOutcome = "none"
)

type SubmitReportResponse struct {
	ID          uuid.UUID          `json:"id"`
	EntityID    *uuid.UUID         `json:"entity_id,omitempty"`
	Aggregation AggregationOutcome `json:"aggregation"`
}

type NearbyRequest struct {
	Lat      float64 `json:"lat" validate:"lat"`
	Lng      float64 `json:"lng" validate:"lng"`
	RadiusKM float64 `json:"radius_km" validate:"radius_km"`
	ShowAll  bool    `json:"show_all"`
}

// NearbyView is the map payload: outages, active incidents and the latest
// report pins around the caller, or globally capped sets when ShowAll is on.
type NearbyView struct {
	Outages       []Outage   `json:"outages"`
	Incidents     []Incident `json:"incidents"`
	RecentReports []Report   `json:"last_reports"`
	ServerNow     time.Time  `json:"server_now"`
}

type AckRequest struct {
	Kind   Kind    `json:"kind" validate:"required"`
	Lat    float64 `json:"lat" validate:"lat"`
	Lng    float64 `json:"lng" validate:"lng"`
	UserID *string `json:"user_id,omitempty" validate:"omitempty,uuid"`
}

type AlertZonesRequest struct {
	Kind        Kind    `json:"kind" validate:"required"`
	Lat         float64 `json:"lat" validate:"lat"`
	Lng         float64 `json:"lng" validate:"lng"`
	RadiusKM    float64 `json:"radius_km" validate:"min=0.1,max=50"`
	WindowHours int     `json:"hours" validate:"omitempty,min=1,max=72"`
	MinCount    int     `json:"min_count" validate:"omitempty,min=2,max=50"`
	CellMeters  int     `json:"cell_m" validate:"omitempty,min=50,max=1000"`
}

// AlertZone is a flagged cluster of recent same-kind occurrence reports. The
// center is the mean of the raw points, not the grid cell midpoint.
type AlertZone struct {
	Kind    Kind    `json:"kind"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	RadiusM int     `json:"radius_m"`
	Count   int     `json:"count"`
}

type SeedEntityRequest struct {
	Kind    Kind    `json:"kind" validate:"required"`
	Lat     float64 `json:"lat" validate:"lat"`
	Lng     float64 `json:"lng" validate:"lng"`
	RadiusM float64 `json:"radius_m" validate:"omitempty,min=0"`
}

type NearEntityRequest struct {
	Kind    Kind    `json:"kind" validate:"required"`
	Lat     float64 `json:"lat" validate:"lat"`
	Lng     float64 `json:"lng" validate:"lng"`
	RadiusM float64 `json:"radius_m" validate:"omitempty,min=0"`
}
