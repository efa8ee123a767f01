package domain

import (
	"time"

	"github.com/google/uuid"
)

type OutageStatus string

const (
	OutageOngoing  OutageStatus = "ongoing"
	OutageRestored OutageStatus = "restored"
)

// Outage is a mutable aggregate for outage-class kinds (power, water). The
// center is fixed at creation and never recomputed as reports merge in.
type Outage struct {
	ID         uuid.UUID    `json:"id"`
	Kind       Kind         `json:"kind"`
	Status     OutageStatus `json:"status"`
	Lat        float64      `json:"lat"`
	Lng        float64      `json:"lng"`
	RadiusM    float64      `json:"radius_m"`
	StartedAt  time.Time    `json:"started_at"`
	RestoredAt *time.Time   `json:"restored_at,omitempty"`
}

func (o Outage) Active() bool { return o.RestoredAt == nil }

// Incident is a mutable aggregate for incident-class kinds. Same lifecycle as
// Outage but no spatial extent; closure uses a flat radius instead of the
// radius-proportional rule.
type Incident struct {
	ID           uuid.UUID  `json:"id"`
	Kind         Kind       `json:"kind"`
	Active       bool       `json:"active"`
	Lat          float64    `json:"lat"`
	Lng          float64    `json:"lng"`
	StartedAt    time.Time  `json:"started_at"`
	LastReportAt time.Time  `json:"last_report_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
}

// Ack is a responder claim on an area. It only suppresses re-alerting; it
// never mutates entities.
type Ack struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	UserID    *string   `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
