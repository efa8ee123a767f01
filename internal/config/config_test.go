package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fouss011/ayii-ratp/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Http.Port)
	assert.Equal(t, 300.0, cfg.Aggregation.MergeRadiusM)
	assert.Equal(t, 3000.0, cfg.Aggregation.CloseSearchM)
	assert.Equal(t, 1.5, cfg.Aggregation.CloseFactor)
	assert.Equal(t, 1500.0, cfg.Aggregation.CloseHardCapM)
	assert.Equal(t, 800.0, cfg.Aggregation.IncidentCloseM)
	assert.Equal(t, 45*time.Minute, cfg.Aggregation.OutageStaleWindow)
	assert.Equal(t, 3, cfg.Alert.WindowHours)
	assert.Equal(t, 150, cfg.Alert.CellMeters)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INCIDENT_MERGE_M", "450")
	t.Setenv("TTL_TRAFFIC", "30m")
	t.Setenv("KAFKA_BROKERS", "b1:9092, b2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 450.0, cfg.Aggregation.MergeRadiusM)
	assert.Equal(t, 30*time.Minute, cfg.Aggregation.TTL(domain.KindTraffic))
	assert.Equal(t, []string{"b1:9092", "b2:9092"}, cfg.Kafka.Brokers)
}

func TestAggregationConfig_TTLFallback(t *testing.T) {
	a := AggregationConfig{
		IncidentTTL:        map[domain.Kind]time.Duration{domain.KindFire: 4 * time.Hour},
		IncidentTTLDefault: 45 * time.Minute,
	}

	assert.Equal(t, 4*time.Hour, a.TTL(domain.KindFire))
	assert.Equal(t, 45*time.Minute, a.TTL(domain.KindUrine))
}

func TestValidate_BadPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")

	_, err := Load()
	assert.Error(t, err)
}
