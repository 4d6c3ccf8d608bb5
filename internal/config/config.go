// Package config loads service configuration from an optional YAML file and
// environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"mbg_outreach/internal/domain/entities"
)

const (
	DefaultConfigPath  = "config.yaml"
	DefaultPort        = "3001"
	DefaultVerifyToken = "mbg_bread_secure_token"
	DefaultOpenAIModel = "gpt-4o"

	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreDynamoDB = "dynamodb"
)

// placeholders shipped in .env.example; treated as unset.
var placeholders = map[string]struct{}{
	"your_openai_api_key_here":  {},
	"your_whatsapp_token_here":  {},
	"your_phone_number_id_here": {},
}

type Config struct {
	Port      string          `koanf:"port"`
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Store     StoreConfig     `koanf:"store"`
	AWS       AWSConfig       `koanf:"aws"`
	DynamoDB  DynamoDBConfig  `koanf:"dynamodb"`
	OpenAI    OpenAIConfig    `koanf:"openai"`
	WhatsApp  WhatsAppConfig  `koanf:"whatsapp"`
	Webhook   WebhookConfig   `koanf:"webhook"`
	Pacing    PacingConfig    `koanf:"pacing"`
	Discovery DiscoveryConfig `koanf:"discovery"`
	Search    SearchConfig    `koanf:"search"`
	NATS      NATSConfig      `koanf:"nats"`
	Redis     RedisConfig     `koanf:"redis"`
}

type ServerConfig struct {
	Port    string `koanf:"port"`
	GinMode string `koanf:"gin_mode"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig selects the record store. DSN is used by sqlite and postgres.
type StoreConfig struct {
	Driver string `koanf:"driver"`
	DSN    string `koanf:"dsn"`
}

type AWSConfig struct {
	Region          string `koanf:"region"`
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey string `koanf:"secret_access_key"`
}

type DynamoDBConfig struct {
	Endpoint      string `koanf:"endpoint"`
	LeadsTable    string `koanf:"leads_table"`
	MessagesTable string `koanf:"messages_table"`
	CreateTables  bool   `koanf:"create_tables"`
}

type OpenAIConfig struct {
	APIKey  string `koanf:"api_key"`
	Model   string `koanf:"model"`
	BaseURL string `koanf:"base_url"`
}

type WhatsAppConfig struct {
	Token   string `koanf:"token"`
	PhoneID string `koanf:"phone_id"`
	BaseURL string `koanf:"base_url"`
	// SimulatedLatency only applies when no credentials are configured.
	SimulatedLatency time.Duration `koanf:"simulated_latency"`
}

type WebhookConfig struct {
	VerifyToken string `koanf:"verify_token"`
}

// PacingConfig bounds the random pause between dispatches.
type PacingConfig struct {
	Min time.Duration `koanf:"min"`
	Max time.Duration `koanf:"max"`
}

type DiscoveryConfig struct {
	SeedFile            string        `koanf:"seed_file"`
	RecentContactWindow time.Duration `koanf:"recent_contact_window"`
}

type SearchConfig struct {
	BaseURL   string        `koanf:"base_url"`
	UserAgent string        `koanf:"user_agent"`
	Rate      float64       `koanf:"rate"`
	Timeout   time.Duration `koanf:"timeout"`
	MinPause  time.Duration `koanf:"min_pause"`
	MaxPause  time.Duration `koanf:"max_pause"`
}

type NATSConfig struct {
	URL     string `koanf:"url"`
	Subject string `koanf:"subject"`
}

type RedisConfig struct {
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	LockKey  string        `koanf:"lock_key"`
	LockTTL  time.Duration `koanf:"lock_ttl"`
}

// Load reads configPath (or OUTREACH_CONFIG, or ./config.yaml) when present,
// then overrides it with environment variables:
//
//	OPENAI_API_KEY  -> openai.api_key
//	WHATSAPP_TOKEN  -> whatsapp.token
//	PORT            -> port
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath == "" {
		configPath = os.Getenv("OUTREACH_CONFIG")
	}
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	if content, err := os.ReadFile(configPath); err == nil {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return envKey(key), value
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

var sections = map[string]struct{}{
	"server": {}, "log": {}, "store": {}, "aws": {}, "dynamodb": {}, "openai": {}, "whatsapp": {},
	"webhook": {}, "pacing": {}, "discovery": {}, "search": {}, "nats": {}, "redis": {},
}

// envKey splits on the first underscore: SECTION_FIELD_NAME -> section.field_name.
// Variables outside the known sections are ignored, except PORT. Empty
// variables are ignored too.
func envKey(s string) string {
	lower := strings.ToLower(s)
	if lower == "port" {
		return lower
	}
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return ""
	}
	if _, ok := sections[parts[0]]; !ok {
		return ""
	}
	return parts[0] + "." + parts[1]
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = c.Port
	}
	if c.Server.Port == "" {
		c.Server.Port = DefaultPort
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Store.Driver == "" {
		c.Store.Driver = StoreMemory
	}
	if c.Store.Driver == StoreSQLite && c.Store.DSN == "" {
		c.Store.DSN = "outreach.db"
	}
	if c.AWS.Region == "" {
		c.AWS.Region = "us-east-1"
	}
	if c.DynamoDB.LeadsTable == "" {
		c.DynamoDB.LeadsTable = "leads"
	}
	if c.DynamoDB.MessagesTable == "" {
		c.DynamoDB.MessagesTable = "messages"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = DefaultOpenAIModel
	}
	if c.WhatsApp.SimulatedLatency == 0 {
		c.WhatsApp.SimulatedLatency = 500 * time.Millisecond
	}
	if c.Webhook.VerifyToken == "" {
		c.Webhook.VerifyToken = DefaultVerifyToken
	}
	if c.Pacing.Min == 0 && c.Pacing.Max == 0 {
		c.Pacing.Min, c.Pacing.Max = 5*time.Second, 15*time.Second
	}
	if c.Discovery.RecentContactWindow == 0 {
		c.Discovery.RecentContactWindow = 24 * time.Hour
	}
	if c.Search.Rate == 0 {
		c.Search.Rate = 0.5
	}
	if c.Search.Timeout == 0 {
		c.Search.Timeout = 10 * time.Second
	}
	if c.Search.MinPause == 0 && c.Search.MaxPause == 0 {
		c.Search.MinPause, c.Search.MaxPause = 2*time.Second, 5*time.Second
	}
	if c.NATS.Subject == "" {
		c.NATS.Subject = "outreach.lead.status"
	}
	if c.Redis.LockKey == "" {
		c.Redis.LockKey = "outreach:workflow:lock"
	}
	if c.Redis.LockTTL == 0 {
		c.Redis.LockTTL = 30 * time.Minute
	}

	c.OpenAI.APIKey = unlessPlaceholder(c.OpenAI.APIKey)
	c.WhatsApp.Token = unlessPlaceholder(c.WhatsApp.Token)
	c.WhatsApp.PhoneID = unlessPlaceholder(c.WhatsApp.PhoneID)
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory, StoreSQLite, StorePostgres, StoreDynamoDB:
	default:
		return fmt.Errorf("store.driver: unsupported value %q", c.Store.Driver)
	}
	if c.Store.Driver == StorePostgres && c.Store.DSN == "" {
		return fmt.Errorf("store.dsn is required for postgres")
	}
	if c.Pacing.Min < 0 || c.Pacing.Max < c.Pacing.Min {
		return fmt.Errorf("pacing: need 0 <= min <= max, got %s..%s", c.Pacing.Min, c.Pacing.Max)
	}
	if c.Search.MinPause < 0 || c.Search.MaxPause < c.Search.MinPause {
		return fmt.Errorf("search: need 0 <= min_pause <= max_pause, got %s..%s", c.Search.MinPause, c.Search.MaxPause)
	}
	if c.Search.Rate < 0 {
		return fmt.Errorf("search.rate must not be negative")
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format: unsupported value %q", c.Log.Format)
	}
	return nil
}

// ChannelMode is production only when both WhatsApp credentials are present.
func (c *Config) ChannelMode() entities.ChannelMode {
	if c.WhatsApp.Token != "" && c.WhatsApp.PhoneID != "" {
		return entities.ChannelModeProduction
	}
	return entities.ChannelModeSimulation
}

func (c *Config) DraftingMode() entities.DraftingMode {
	if c.OpenAI.APIKey != "" {
		return entities.DraftingModeAI
	}
	return entities.DraftingModeTemplate
}

func unlessPlaceholder(v string) string {
	v = strings.TrimSpace(v)
	if _, ok := placeholders[v]; ok {
		return ""
	}
	return v
}
