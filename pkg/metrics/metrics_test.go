package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordBuild(t *testing.T) {
	m := New()

	m.RecordBuild(true, 50*time.Millisecond)
	m.RecordBuild(false, 10*time.Millisecond)
	m.RecordBuild(true, 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.buildsTotal.WithLabelValues(statusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.buildsTotal.WithLabelValues(statusError)))
}

func TestRecordValidationError(t *testing.T) {
	m := New()
	m.RecordValidationError("weight_mismatch")
	m.RecordValidationError("weight_mismatch")
	m.RecordValidationError("unsupported_channel")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.validationErrorTotal.WithLabelValues("weight_mismatch")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationErrorTotal.WithLabelValues("unsupported_channel")))
}

func TestUpdateSeedStats(t *testing.T) {
	m := New()
	m.UpdateSeedStats(3, 7, 512, time.Unix(1700000000, 0))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.seedStudies))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.seedExperiments))
	assert.Equal(t, 512.0, testutil.ToFloat64(m.seedSizeBytes))
	assert.Equal(t, 1700000000.0, testutil.ToFloat64(m.lastSuccess))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.RecordBuild(true, time.Second)
	m.UpdateSeedStats(1, 2, 30, time.Unix(1700000000, 0))

	path := filepath.Join(t.TempDir(), "seedforge.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `seedforge_builds_total{status="success"} 1`)
	assert.Contains(t, out, "seedforge_seed_experiments 2")
	assert.Contains(t, out, "seedforge_build_duration_seconds_count 1")
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := New()
	b := New()
	a.RecordBuild(true, time.Millisecond)

	assert.Equal(t, 0.0, testutil.ToFloat64(b.buildsTotal.WithLabelValues(statusSuccess)))
}
