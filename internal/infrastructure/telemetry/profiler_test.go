package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zumech/backend/internal/infrastructure/telemetry"
)

func TestStartProfiler_Disabled(t *testing.T) {
	p, err := telemetry.StartProfiler(telemetry.ProfilerConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Stop())
}

func TestStartProfiler_RequiresAddress(t *testing.T) {
	_, err := telemetry.StartProfiler(telemetry.ProfilerConfig{Enabled: true, ApplicationName: "zumech"}, nil)
	assert.ErrorContains(t, err, "server address")
}

func TestStartProfiler_RequiresApplicationName(t *testing.T) {
	_, err := telemetry.StartProfiler(telemetry.ProfilerConfig{Enabled: true, ServerAddress: "http://pyroscope:4040"}, nil)
	assert.ErrorContains(t, err, "application name")
}

func TestWithProfilingLabels(t *testing.T) {
	var called int
	telemetry.WithProfilingLabels(context.Background(), map[string]string{"route": "/api/v1/challans", "empty": ""},
		func(ctx context.Context) { called++ })
	telemetry.WithProfilingLabels(context.Background(), nil, func(ctx context.Context) { called++ })
	assert.Equal(t, 2, called)
}

func TestProfiler_NilSafe(t *testing.T) {
	var p *telemetry.Profiler
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Stop())
}
