package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mbg_outreach/internal/domain/entities"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "SERVER_PORT", "STORE_DRIVER", "STORE_DSN", "OPENAI_API_KEY", "WHATSAPP_TOKEN",
		"WHATSAPP_PHONE_ID", "WEBHOOK_VERIFY_TOKEN", "PACING_MIN", "PACING_MAX", "LOG_FORMAT",
		"OUTREACH_CONFIG", "AWS_REGION", "DYNAMODB_ENDPOINT",
	} {
		t.Setenv(k, "")
	}
}

func missingPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.yaml")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(missingPath(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, DefaultPort)
	}
	if cfg.Store.Driver != StoreMemory {
		t.Errorf("Store.Driver = %q, want memory", cfg.Store.Driver)
	}
	if cfg.Webhook.VerifyToken != DefaultVerifyToken {
		t.Errorf("Webhook.VerifyToken = %q", cfg.Webhook.VerifyToken)
	}
	if cfg.Pacing.Min != 5*time.Second || cfg.Pacing.Max != 15*time.Second {
		t.Errorf("Pacing = %s..%s, want 5s..15s", cfg.Pacing.Min, cfg.Pacing.Max)
	}
	if cfg.Search.MinPause != 2*time.Second || cfg.Search.MaxPause != 5*time.Second {
		t.Errorf("Search pause = %s..%s, want 2s..5s", cfg.Search.MinPause, cfg.Search.MaxPause)
	}
	if cfg.ChannelMode() != entities.ChannelModeSimulation {
		t.Errorf("ChannelMode() = %s, want simulation", cfg.ChannelMode())
	}
	if cfg.DraftingMode() != entities.DraftingModeTemplate {
		t.Errorf("DraftingMode() = %s, want template", cfg.DraftingMode())
	}
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `server:
  port: "8080"
store:
  driver: sqlite
  dsn: file.db
pacing:
  min: 1s
  max: 2s
whatsapp:
  token: from-file
`
	if err := os.WriteFile(path, []byte(yamlContent), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("WHATSAPP_TOKEN", "from-env")
	t.Setenv("WHATSAPP_PHONE_ID", "12345")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Store.Driver != StoreSQLite || cfg.Store.DSN != "file.db" {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if cfg.Pacing.Min != time.Second || cfg.Pacing.Max != 2*time.Second {
		t.Errorf("Pacing = %s..%s, want 1s..2s", cfg.Pacing.Min, cfg.Pacing.Max)
	}
	if cfg.WhatsApp.Token != "from-env" {
		t.Errorf("WhatsApp.Token = %q, want env override", cfg.WhatsApp.Token)
	}
	if cfg.ChannelMode() != entities.ChannelModeProduction {
		t.Errorf("ChannelMode() = %s, want production", cfg.ChannelMode())
	}
	if cfg.DraftingMode() != entities.DraftingModeAI {
		t.Errorf("DraftingMode() = %s, want ai", cfg.DraftingMode())
	}
}

func TestLoad_PlaceholdersCountAsAbsent(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "your_openai_api_key_here")
	t.Setenv("WHATSAPP_TOKEN", "your_whatsapp_token_here")
	t.Setenv("WHATSAPP_PHONE_ID", "your_phone_number_id_here")

	cfg, err := Load(missingPath(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OpenAI.APIKey != "" || cfg.WhatsApp.Token != "" || cfg.WhatsApp.PhoneID != "" {
		t.Errorf("placeholders kept: %+v %+v", cfg.OpenAI, cfg.WhatsApp)
	}
	if cfg.ChannelMode() != entities.ChannelModeSimulation {
		t.Errorf("ChannelMode() = %s, want simulation", cfg.ChannelMode())
	}
}

func TestLoad_PortFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "4000")

	cfg, err := Load(missingPath(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "4000" {
		t.Errorf("Server.Port = %q, want 4000", cfg.Server.Port)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown store", env: map[string]string{"STORE_DRIVER": "mongo"}},
		{name: "postgres without dsn", env: map[string]string{"STORE_DRIVER": "postgres"}},
		{name: "pacing inverted", env: map[string]string{"PACING_MIN": "10s", "PACING_MAX": "1s"}},
		{name: "log format", env: map[string]string{"LOG_FORMAT": "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(missingPath(t)); err == nil {
				t.Fatalf("Load() error = nil, want validation error")
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"OPENAI_API_KEY":    "openai.api_key",
		"WHATSAPP_PHONE_ID": "whatsapp.phone_id",
		"PORT":              "port",
		"HOME":              "",
		"GOPATH_EXTRA":      "",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}
