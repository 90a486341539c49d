package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/seedforge/pkg/archive"
	"github.com/ssargent/seedforge/pkg/config"
	"github.com/ssargent/seedforge/pkg/di"
	"github.com/ssargent/seedforge/pkg/pipeline"
	"github.com/ssargent/seedforge/pkg/wire"
)

const validSeed = `{
  "version": 1,
  "studies": [{
    "name": "Study1",
    "experiments": [
      {"name": "A", "probability_weight": 60},
      {"name": "B", "probability_weight": 40}
    ],
    "filter": {"channel": ["RELEASE"], "platform": ["WINDOWS"]}
  }]
}`

const invalidSeed = `{
  "version": 1,
  "studies": [{
    "name": "Study1",
    "experiments": [
      {"name": "A", "probability_weight": 60},
      {"name": "B", "probability_weight": 30}
    ],
    "filter": {"channel": ["RELEASE"], "platform": ["WINDOWS"]}
  }]
}`

type fixedSerial string

func (f fixedSerial) Generate() (string, error) { return string(f), nil }

func setupTest(t *testing.T) (string, *config.Config) {
	t.Helper()
	c := di.NewContainer()
	c.SetSerialGenerator(fixedSerial("0123456789abcdef0123456789abcdef"))
	SetContainer(c)
	t.Cleanup(func() { SetContainer(nil) })

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Output.SeedPath = filepath.Join(dir, "seed.bin")
	cfg.Output.SerialPath = filepath.Join(dir, "serialnumber")
	cfg.Archive.Dir = filepath.Join(dir, "archive")
	return dir, cfg
}

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRunBuild(t *testing.T) {
	dir, cfg := setupTest(t)
	input := writeInput(t, dir, validSeed)

	res, err := runBuild(context.Background(), cfg, zerolog.Nop(), input, nil)
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef0123456789abcdef", res.Serial)

	serial, err := os.ReadFile(cfg.Output.SerialPath)
	require.NoError(t, err)
	assert.Equal(t, res.Serial, string(serial))

	payload, err := os.ReadFile(cfg.Output.SeedPath)
	require.NoError(t, err)
	decoded, err := wire.Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, res.Serial, decoded.SerialNumber)
	assert.Equal(t, "Study1", decoded.Studies[0].Name)
}

func TestRunBuildFromStdin(t *testing.T) {
	_, cfg := setupTest(t)

	_, err := runBuild(context.Background(), cfg, zerolog.Nop(), "-", strings.NewReader(validSeed))
	require.NoError(t, err)
	assert.FileExists(t, cfg.Output.SeedPath)
}

func TestRunBuildInvalidWritesNothing(t *testing.T) {
	dir, cfg := setupTest(t)
	input := writeInput(t, dir, invalidSeed)
	cfg.Metrics.TextfilePath = filepath.Join(dir, "metrics", "seedforge.prom")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.Metrics.TextfilePath), 0750))

	_, err := runBuild(context.Background(), cfg, zerolog.Nop(), input, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, pipeline.ErrValidation)
	assert.Contains(t, err.Error(), "Study1")
	assert.Contains(t, err.Error(), "90")

	assert.NoFileExists(t, cfg.Output.SeedPath)
	assert.NoFileExists(t, cfg.Output.SerialPath)

	metrics, err := os.ReadFile(cfg.Metrics.TextfilePath)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `seedforge_builds_total{status="error"} 1`)
	assert.Contains(t, string(metrics), `seedforge_validation_errors_total{kind="weight_mismatch"} 1`)
}

func TestRunBuildMissingInput(t *testing.T) {
	dir, cfg := setupTest(t)

	_, err := runBuild(context.Background(), cfg, zerolog.Nop(), filepath.Join(dir, "missing.json"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunBuildWithArchive(t *testing.T) {
	dir, cfg := setupTest(t)
	input := writeInput(t, dir, validSeed)
	cfg.Archive.Enabled = true

	res, err := runBuild(context.Background(), cfg, zerolog.Nop(), input, nil)
	require.NoError(t, err)

	store, err := archive.Open(cfg.Archive.Dir)
	require.NoError(t, err)
	defer store.Close()

	entry, err := store.Get(res.Serial)
	require.NoError(t, err)
	payload, err := os.ReadFile(cfg.Output.SeedPath)
	require.NoError(t, err)
	assert.Equal(t, payload, entry.Payload)
}

func TestApplyBuildFlags(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().AddFlagSet(buildCmd.Flags())
	require.NoError(t, cmd.Flags().Parse([]string{"--out", "/tmp/a.bin", "--archive", "--metrics-textfile", "/tmp/m.prom"}))
	t.Cleanup(func() {
		for _, name := range []string{"out", "archive", "metrics-textfile"} {
			f := buildCmd.Flags().Lookup(name)
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})

	cfg := config.DefaultConfig()
	applyBuildFlags(cmd, cfg)

	assert.Equal(t, "/tmp/a.bin", cfg.Output.SeedPath)
	assert.Equal(t, "./serialnumber", cfg.Output.SerialPath)
	assert.True(t, cfg.Archive.Enabled)
	assert.Equal(t, "/tmp/m.prom", cfg.Metrics.TextfilePath)
}

func TestRunValidate(t *testing.T) {
	dir, _ := setupTest(t)

	t.Run("valid", func(t *testing.T) {
		cmd := &cobra.Command{}
		cmd.SetContext(context.Background())
		var out bytes.Buffer

		require.NoError(t, runValidate(cmd, writeInput(t, dir, validSeed), &out))
		assert.Contains(t, out.String(), "Seed document is valid: 1 studies, 2 experiments")
	})

	t.Run("invalid lists every failure", func(t *testing.T) {
		cmd := &cobra.Command{}
		cmd.SetContext(context.Background())
		var out bytes.Buffer

		doc := strings.Replace(invalidSeed, `"WINDOWS"`, `"WINDOWS", "BEOS"`, 1)
		err := runValidate(cmd, writeInput(t, dir, doc), &out)
		require.Error(t, err)
		assert.Contains(t, out.String(), "probability weights sum to 90")
		assert.Contains(t, out.String(), `unsupported platform "BEOS"`)
	})
}

func TestHelpListsValidationRules(t *testing.T) {
	for _, c := range []*cobra.Command{buildCmd, validateCmd} {
		assert.Contains(t, c.Long, "study names are unique", c.Name())
		assert.Contains(t, c.Long, "start_date", c.Name())
		assert.Contains(t, c.Long, "UTF-8", c.Name())
	}
}
