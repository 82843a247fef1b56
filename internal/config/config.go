package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	pkgRetry "github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr  string `env:"SERVER_ADDR,notEmpty"`
	CompanyName string `env:"COMPANY_NAME" envDefault:"Innovating Hiring"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
	DBConnectRetry      pkgRetry.RetryConfig `envPrefix:"DB_CONNECT_RETRY_"`

	// External service configurations
	LLMConnectorCfg LLMConnectorConfig `envPrefix:"LLM_"`
	ASRConnectorCfg ASRConnectorConfig `envPrefix:"ASR_"`
	TTSConnectorCfg TTSConnectorConfig `envPrefix:"TTS_"`

	// Interview session configuration
	SessionTTLSlack  time.Duration `env:"SESSION_TTL_SLACK" envDefault:"30m"`
	MaxAudioFileSize int64         `env:"MAX_AUDIO_FILE_SIZE" envDefault:"26214400"` // 25 MiB

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

type LLMConnectorConfig struct {
	HTTPClientConfig
	GenerateEndpoint string      `env:"GENERATE_ENDPOINT,notEmpty"`
	TokenLimits      TokenLimits `envPrefix:"TOKENS_"`
}

// TokenLimits bounds the completion length of each stage persona.
type TokenLimits struct {
	Welcome      int `env:"WELCOME" envDefault:"80"`
	Introduction int `env:"INTRODUCTION" envDefault:"60"`
	Transition   int `env:"TRANSITION" envDefault:"50"`
	Comparison   int `env:"COMPARISON" envDefault:"70"`
	General      int `env:"GENERAL" envDefault:"70"`
}

type ASRConnectorConfig struct {
	HTTPClientConfig
	TranscribeEndpoint string `env:"TRANSCRIBE_ENDPOINT,notEmpty"`
}

type TTSConnectorConfig struct {
	HTTPClientConfig
	SynthesizeEndpoint string `env:"SYNTHESIZE_ENDPOINT,notEmpty"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"30s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"20s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL,notEmpty"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		return fmt.Errorf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns)
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns)
	}

	limits := cfg.LLMConnectorCfg.TokenLimits
	for name, v := range map[string]int{
		"WELCOME":      limits.Welcome,
		"INTRODUCTION": limits.Introduction,
		"TRANSITION":   limits.Transition,
		"COMPARISON":   limits.Comparison,
		"GENERAL":      limits.General,
	} {
		if v < 1 || v > 4096 {
			return fmt.Errorf("LLM_TOKENS_%s must be between 1 and 4096, got %d", name, v)
		}
	}

	if cfg.SessionTTLSlack < time.Minute {
		return fmt.Errorf("SESSION_TTL_SLACK must be at least 1m, got %s", cfg.SessionTTLSlack)
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
