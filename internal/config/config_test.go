package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afontana/shopfloor/internal/domain"
	"github.com/afontana/shopfloor/internal/schedule"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, string(schedule.PolicyExclusive), cfg.Scheduling.CuttingPolicy)
	assert.Equal(t, schedule.DefaultHorizonDays, cfg.Scheduling.HorizonDays)
	assert.NotEmpty(t, cfg.Database.Path)
}

func TestLoad_PartialFileFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, "database:\n  path: /tmp/orders.db\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/orders.db", cfg.Database.Path)
	assert.Equal(t, string(schedule.PolicyExclusive), cfg.Scheduling.CuttingPolicy)
	assert.Equal(t, schedule.DefaultHorizonDays, cfg.Scheduling.HorizonDays)
}

func TestLoad_RejectsUnknownPolicy(t *testing.T) {
	path := writeConfig(t, "scheduling:\n  cutting_policy: roundrobin\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsBadCapacity(t *testing.T) {
	cases := map[string]string{
		"unknown material":  "capacity:\n  production:\n    C: 100\n",
		"unknown structure": "capacity:\n  cutting:\n    A:\n      revolving: 5\n",
		"non-positive":      "capacity:\n  production:\n    A: 0\n",
	}
	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, contents)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestToRegistry_AppliesOverrides(t *testing.T) {
	path := writeConfig(t, `
capacity:
  cutting:
    A:
      hinged: 20
  production:
    B: 2400
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	reg := cfg.ToRegistry()
	limit, err := reg.CuttingLimit(domain.MaterialA, domain.StructureHinged)
	require.NoError(t, err)
	assert.Equal(t, 20, limit)

	// Untouched entries keep their built-in values.
	limit, err = reg.CuttingLimit(domain.MaterialA, domain.StructureSliding)
	require.NoError(t, err)
	assert.Equal(t, 10, limit)

	prod, err := reg.ProductionLimit(domain.MaterialB)
	require.NoError(t, err)
	assert.Equal(t, 2400, prod)
}
