package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fouss011/ayii-ratp/internal/domain"
)

// ~150 m apart in latitude at any longitude.
const latStep150m = 150.0 / metersPerDegree

func pt(lat, lng float64) domain.ReportPoint {
	return domain.ReportPoint{Kind: domain.KindUrine, Lat: lat, Lng: lng, CreatedAt: time.Now()}
}

func TestClusterPoints_BelowThresholdYieldsNothing(t *testing.T) {
	t.Parallel()

	points := []domain.ReportPoint{
		pt(48.8566, 2.3522),
		pt(48.85661, 2.35221),
	}
	zones := clusterPoints(domain.KindUrine, points, 150, 3)
	assert.Empty(t, zones)
}

func TestClusterPoints_ThresholdReachedFlagsCell(t *testing.T) {
	t.Parallel()

	points := []domain.ReportPoint{
		pt(48.8566, 2.3522),
		pt(48.85661, 2.35221),
		pt(48.85662, 2.35219),
	}
	zones := clusterPoints(domain.KindUrine, points, 150, 3)
	require.Len(t, zones, 1)

	z := zones[0]
	assert.Equal(t, domain.KindUrine, z.Kind)
	assert.Equal(t, 3, z.Count)
	assert.Equal(t, 150, z.RadiusM)

	// center is the mean of the raw points, not the cell midpoint
	assert.InDelta(t, (48.8566+48.85661+48.85662)/3, z.Lat, 1e-9)
	assert.InDelta(t, (2.3522+2.35221+2.35219)/3, z.Lng, 1e-9)
}

func TestClusterPoints_DistantGroupsStaySeparate(t *testing.T) {
	t.Parallel()

	var points []domain.ReportPoint
	for i := 0; i < 3; i++ {
		points = append(points, pt(48.8566, 2.3522))
	}
	// a second burst several cells north
	for i := 0; i < 4; i++ {
		points = append(points, pt(48.8566+10*latStep150m, 2.3522))
	}
	zones := clusterPoints(domain.KindUrine, points, 150, 3)
	require.Len(t, zones, 2)
}

func TestClusterPoints_EmptyInput(t *testing.T) {
	t.Parallel()
	assert.Empty(t, clusterPoints(domain.KindUrine, nil, 150, 3))
}

func TestSuppressAcknowledged_DropsClaimedZone(t *testing.T) {
	t.Parallel()

	zones := []domain.AlertZone{
		{Kind: domain.KindUrine, Lat: 48.8566, Lng: 2.3522, RadiusM: 150, Count: 5},
		{Kind: domain.KindUrine, Lat: 48.8700, Lng: 2.3700, RadiusM: 150, Count: 3},
	}
	acks := []domain.Ack{
		{Kind: domain.KindUrine, Lat: 48.85665, Lng: 2.35225}, // inside the first zone
	}

	got := suppressAcknowledged(zones, acks, 150)
	require.Len(t, got, 1)
	assert.InDelta(t, 48.8700, got[0].Lat, 1e-9)
}

func TestSuppressAcknowledged_FarAckKeepsZone(t *testing.T) {
	t.Parallel()

	zones := []domain.AlertZone{
		{Kind: domain.KindUrine, Lat: 48.8566, Lng: 2.3522, RadiusM: 150, Count: 5},
	}
	acks := []domain.Ack{
		{Kind: domain.KindUrine, Lat: 48.9000, Lng: 2.4000}, // kilometres away
	}

	got := suppressAcknowledged(zones, acks, 150)
	assert.Len(t, got, 1)
}
