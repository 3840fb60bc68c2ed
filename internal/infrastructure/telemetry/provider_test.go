package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zumech/backend/internal/infrastructure/config"
	"github.com/zumech/backend/internal/infrastructure/telemetry"
)

func TestConfigFrom(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Env = "staging"
	cfg.Telemetry = config.TelemetryConfig{
		Enabled:           true,
		CollectorEndpoint: "otel:4317",
		SamplingRatio:     0.5,
		ServiceName:       "zumech",
		Insecure:          true,
		MetricsEnabled:    true,
		LogsEnabled:       false,
	}

	got := telemetry.ConfigFrom(cfg)
	assert.Equal(t, "zumech", got.ServiceName)
	assert.Equal(t, "staging", got.Environment)
	assert.Equal(t, "otel:4317", got.CollectorEndpoint)
	assert.True(t, got.TracesEnabled)
	assert.True(t, got.MetricsEnabled)
	assert.False(t, got.LogsEnabled)
	assert.InDelta(t, 0.5, got.SamplingRatio, 1e-9)
}

func TestConfigFrom_DisabledMasksSignals(t *testing.T) {
	cfg := &config.Config{}
	cfg.Telemetry = config.TelemetryConfig{Enabled: false, MetricsEnabled: true, LogsEnabled: true}

	got := telemetry.ConfigFrom(cfg)
	assert.False(t, got.TracesEnabled)
	assert.False(t, got.MetricsEnabled)
	assert.False(t, got.LogsEnabled)
}

func TestSetup_Disabled(t *testing.T) {
	p, err := telemetry.Setup(context.Background(), telemetry.Config{ServiceName: "zumech"}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.False(t, p.TracesEnabled())
	assert.False(t, p.MetricsEnabled())
	assert.NotNil(t, p.Meter("test"))

	core := p.LogCore(zapcore.InfoLevel)
	assert.False(t, core.Enabled(zapcore.ErrorLevel))

	p.EnableSpanProfiles()
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestSetup_NilLogger(t *testing.T) {
	p, err := telemetry.Setup(context.Background(), telemetry.Config{}, nil)
	require.NoError(t, err)
	assert.NoError(t, p.Shutdown(context.Background()))
}
