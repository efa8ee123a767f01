package domain

import (
	"time"

	"github.com/google/uuid"
)

// Kind is the closed set of report categories. The original data model let the
// column be either an enum or free text; here it is a static set and nothing
// introspects the schema at runtime.
type Kind string

const (
	// outage-class
	KindPower Kind = "power"
	KindWater Kind = "water"

	// incident-class: hazards
	KindTraffic  Kind = "traffic"
	KindAccident Kind = "accident"
	KindFire     Kind = "fire"
	KindFlood    Kind = "flood"

	// incident-class: cleanliness (RATP)
	KindUrine       Kind = "urine"
	KindVomit       Kind = "vomit"
	KindFeces       Kind = "feces"
	KindBlood       Kind = "blood"
	KindSyringe     Kind = "syringe"
	KindBrokenGlass Kind = "broken_glass"
)

// Signal carries the two meanings a citizen report can have: "cut" asserts an
// ongoing occurrence, "restored" asserts it is fixed or handled.
type Signal string

const (
	SignalCut      Signal = "cut"
	SignalRestored Signal = "restored"
)

var outageKinds = map[Kind]bool{
	KindPower: true,
	KindWater: true,
}

var incidentKinds = map[Kind]bool{
	KindTraffic:     true,
	KindAccident:    true,
	KindFire:        true,
	KindFlood:       true,
	KindUrine:       true,
	KindVomit:       true,
	KindFeces:       true,
	KindBlood:       true,
	KindSyringe:     true,
	KindBrokenGlass: true,
}

func (k Kind) Valid() bool      { return outageKinds[k] || incidentKinds[k] }
func (k Kind) IsOutage() bool   { return outageKinds[k] }
func (k Kind) IsIncident() bool { return incidentKinds[k] }

func (s Signal) Valid() bool { return s == SignalCut || s == SignalRestored }

// Report is an immutable observation. Only bulk admin purges ever remove rows;
// the aggregation engine reads them and nothing else.
type Report struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Signal    Signal    `json:"signal"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	AccuracyM *int      `json:"accuracy_m,omitempty"`
	Note      *string   `json:"note,omitempty"`
	MediaRef  *string   `json:"media_ref,omitempty"`
	UserID    *string   `json:"user_id,omitempty"`
	DeviceID  *string   `json:"device_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ReportPoint is the slim projection used by the clustering engine.
type ReportPoint struct {
	ID        uuid.UUID
	Kind      Kind
	Lat       float64
	Lng       float64
	CreatedAt time.Time
}
