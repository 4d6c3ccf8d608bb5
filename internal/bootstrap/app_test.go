package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mbg_outreach/internal/config"
	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/infrastructure/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver, dsn string) *config.Config {
	return &config.Config{
		Store:     config.StoreConfig{Driver: driver, DSN: dsn},
		WhatsApp:  config.WhatsAppConfig{SimulatedLatency: time.Millisecond},
		Pacing:    config.PacingConfig{Min: 0, Max: 0},
		Discovery: config.DiscoveryConfig{RecentContactWindow: 24 * time.Hour},
		Search:    config.SearchConfig{Rate: 1, Timeout: time.Second},
	}
}

func TestNew_MemoryStore(t *testing.T) {
	app, err := New(context.Background(), testConfig(config.StoreMemory, ""), nil)
	require.NoError(t, err)
	defer app.Close()

	assert.IsType(t, &lock.LocalRunLock{}, app.RunLock)
	status := app.Orchestrator.GetSystemStatus(context.Background())
	assert.Equal(t, entities.ChannelModeSimulation, status.Mode)
	assert.True(t, status.Ready)
}

func TestNew_SQLiteRunsWorkflow(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "outreach.db")
	app, err := New(context.Background(), testConfig(config.StoreSQLite, dsn), nil)
	require.NoError(t, err)
	defer app.Close()

	res := app.Orchestrator.RunFullWorkflow(context.Background())
	require.True(t, res.Success, "errors: %v", res.Summary.Errors)
	assert.Positive(t, res.Summary.NewLeadsFound)

	stats, err := app.LeadUseCase.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, res.Summary.NewLeadsFound, stats.Total)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), testConfig("mongo", ""), nil)
	assert.ErrorContains(t, err, `unsupported store driver "mongo"`)
}

func TestClose_Idempotent(t *testing.T) {
	app, err := New(context.Background(), testConfig(config.StoreMemory, ""), nil)
	require.NoError(t, err)
	assert.NoError(t, app.Close())
	assert.NoError(t, app.Close())
}

func TestNew_DefaultPacing(t *testing.T) {
	for _, k := range []string{
		"PORT", "SERVER_PORT", "STORE_DRIVER", "STORE_DSN", "OPENAI_API_KEY", "WHATSAPP_TOKEN",
		"WHATSAPP_PHONE_ID", "PACING_MIN", "PACING_MAX", "OUTREACH_CONFIG", "NATS_URL", "REDIS_ADDR",
	} {
		t.Setenv(k, "")
	}
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	app, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer app.Close()

	for i := 0; i < 500; i++ {
		d := app.Pacing()
		if d < 5*time.Second || d > 15*time.Second {
			t.Fatalf("pacing draw %s outside 5s..15s", d)
		}
	}
}
