package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lakeseed/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lakeseed/internal/core/domain"
	"github.com/custodia-labs/lakeseed/internal/core/services"
)

func TestSeedCmd_Use(t *testing.T) {
	assert.Equal(t, "seed [department]", seedCmd.Use)
}

func TestSeedCmd_AllDepartments(t *testing.T) {
	mock := &mockSeeder{}
	setupSeederTest(t, mock)

	out, err := runCLI(t, "seed")

	require.NoError(t, err)
	assert.Equal(t, []string{"clear", "seed"}, mock.calls)
	assert.Contains(t, out, "Seeding complete")
}

func TestSeedCmd_SingleDepartment(t *testing.T) {
	mock := &mockSeeder{}
	setupSeederTest(t, mock)

	out, err := runCLI(t, "seed", "Fundamental_Reader")

	require.NoError(t, err)
	assert.Equal(t, []string{"seed-department", "counts"}, mock.calls)
	assert.Equal(t, []domain.Department{domain.DepartmentFundamentalReader}, mock.seeded)
	assert.Contains(t, out, "Seeding department: Fundamental_Reader")
	assert.Contains(t, out, "Fundamental_Reader: 14 documents")
}

func TestSeedCmd_UnknownDepartment(t *testing.T) {
	mock := &mockSeeder{}
	setupSeederTest(t, mock)

	_, err := runCLI(t, "seed", "Astrologer")

	assert.ErrorIs(t, err, domain.ErrUnknownDepartment)
	assert.Empty(t, mock.calls)
}

func TestSeedCmd_DepartmentError(t *testing.T) {
	mock := &mockSeeder{seedErr: errors.New("boom")}
	setupSeederTest(t, mock)

	_, err := runCLI(t, "seed", "Trend_Analyst")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed failed: boom")
}

func TestClearCmd(t *testing.T) {
	mock := &mockSeeder{}
	setupSeederTest(t, mock)

	out, err := runCLI(t, "clear")

	require.NoError(t, err)
	assert.Equal(t, []string{"clear"}, mock.calls)
	assert.Contains(t, out, "All department stores cleared.")
}

func TestClearCmd_Error(t *testing.T) {
	setupSeederTest(t, &mockSeeder{clearErr: errors.New("locked")})

	_, err := runCLI(t, "clear")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear failed: locked")
}

func TestStatusCmd(t *testing.T) {
	mock := &mockSeeder{}
	setupSeederTest(t, mock)

	out, err := runCLI(t, "status")

	require.NoError(t, err)
	assert.Equal(t, []string{"counts"}, mock.calls)
	assert.Contains(t, out, "Department stores")
	assert.NotContains(t, out, "Seeding complete")
	assert.Contains(t, out, "central_memory")
	assert.Contains(t, out, "daily_snapshots")
	assert.Contains(t, out, "episodes_meta")
	assert.Contains(t, out, "70 documents across 5 department stores")
}

func TestGetCmd_PrintsJSON(t *testing.T) {
	mock := &mockSeeder{doc: domain.Fields{"_id": "12_5_metrics", "win_rate": 0.55}}
	setupSeederTest(t, mock)

	out, err := runCLI(t, "get", "Trend_Analyst", "episodes_meta", "12_5_metrics")

	require.NoError(t, err)
	assert.Contains(t, out, `"_id": "12_5_metrics"`)
	assert.Contains(t, out, `"win_rate": 0.55`)
}

func TestGetCmd_Validation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown department", []string{"get", "Astrologer", "central_memory", "k"}, domain.ErrUnknownDepartment},
		{"unknown collection", []string{"get", "Trend_Analyst", "trades", "k"}, domain.ErrUnknownCollection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockSeeder{}
			setupSeederTest(t, mock)

			_, err := runCLI(t, tt.args...)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, mock.calls)
		})
	}
}

func TestGetCmd_NotFound(t *testing.T) {
	setupSeederTest(t, &mockSeeder{getErr: domain.ErrNotFound})

	_, err := runCLI(t, "get", "Trend_Analyst", "central_memory", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetCmd_RequiresThreeArgs(t *testing.T) {
	setupSeederTest(t, &mockSeeder{})

	_, err := runCLI(t, "get", "Trend_Analyst")

	assert.Error(t, err)
}

func setupConfigTest(t *testing.T) *services.SettingsService {
	t.Helper()
	setupSeederTest(t, &mockSeeder{})
	svc := services.NewSettingsService(memory.NewConfigStore())
	settingsService = svc
	return svc
}

func TestConfigCmd_ShowDefaults(t *testing.T) {
	setupConfigTest(t)

	out, err := runCLI(t, "config")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "Backend: SQLite (local file)")
	assert.Contains(t, out, "Date: 2025-06-30")
	assert.Contains(t, out, "Loop: 12")
	assert.Contains(t, out, "Episode: 5")
	assert.Contains(t, out, "Random seed: 42")
	assert.Contains(t, out, "Parallel: no")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestConfigCmd_SetThenShow(t *testing.T) {
	svc := setupConfigTest(t)

	out, err := runCLI(t, "config", "set", services.KeyBackend, "redis")
	require.NoError(t, err)
	assert.Contains(t, out, "Set storage.backend = redis")

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.BackendRedis, settings.Storage.Backend)

	out, err = runCLI(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Backend: Redis (hash per collection)")
	assert.Contains(t, out, "Address: localhost:6379")
}

func TestConfigCmd_ShowWarnsOnAdapterWithoutFile(t *testing.T) {
	setupConfigTest(t)

	_, err := runCLI(t, "config", "set", services.KeyMarketMode, "adapter")
	require.NoError(t, err)

	out, err := runCLI(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Warning:")
}

func TestConfigCmd_SetRejectsBadValue(t *testing.T) {
	setupConfigTest(t)

	_, err := runCLI(t, "config", "set", services.KeyLoop, "minus one")

	assert.ErrorIs(t, err, domain.ErrInvalidSettings)
}

func TestConfigCmd_Keys(t *testing.T) {
	svc := setupConfigTest(t)

	out, err := runCLI(t, "config", "keys")

	require.NoError(t, err)
	for _, key := range svc.Keys() {
		assert.Contains(t, out, key)
	}
}
