package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultProvider    = "openai"
	DefaultModel       = "gpt-4o-mini"
	DefaultMaxTokens   = 500
	DefaultTemperature = 0.3
	DefaultStyle       = "conventional"
	DefaultMaxDiffSize = 3000
	ConfigDir          = ".config/git-ai"
	ConfigFile         = "config.yaml"
)

const (
	EnvAPIKey      = "GIT_AI_API_KEY"
	EnvProvider    = "GIT_AI_PROVIDER"
	EnvEndpoint    = "GIT_AI_ENDPOINT"
	EnvModel       = "GIT_AI_MODEL"
	EnvMaxTokens   = "GIT_AI_MAX_TOKENS"
	EnvTemperature = "GIT_AI_TEMPERATURE"
	EnvStyle       = "GIT_AI_STYLE"
	EnvMaxDiffSize = "GIT_AI_MAX_DIFF_SIZE"
	EnvNoColor     = "GIT_AI_NO_COLOR"
)

// ErrInvalidConfig marks configuration problems that must stop the run
// before any provider call is attempted.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full user-facing configuration. Precedence is
// environment > config file > defaults.
type Config struct {
	Provider     string   `yaml:"provider"`
	Endpoint     string   `yaml:"endpoint"`
	APIKey       string   `yaml:"api_key"`
	Model        string   `yaml:"model"`
	MaxTokens    int      `yaml:"max_tokens"`
	Temperature  float64  `yaml:"temperature"`
	Style        string   `yaml:"style"`
	MaxDiffSize  int      `yaml:"max_diff_size"`
	ExcludeGlobs []string `yaml:"exclude"`
	Color        bool     `yaml:"color"`
}

func defaults() *Config {
	return &Config{
		Provider:    DefaultProvider,
		Model:       DefaultModel,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
		Style:       DefaultStyle,
		MaxDiffSize: DefaultMaxDiffSize,
		Color:       true,
	}
}

func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ConfigDir, ConfigFile), nil
}

func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ConfigDir), nil
}

// Load reads the config file, fills in defaults for anything unset and
// applies environment overrides on top. A missing file is not an error.
func Load() (*Config, error) {
	cfg, err := loadFile()
	if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

// loadFile reads file and defaults only, so persisted updates never bake
// in environment overrides.
func loadFile() (*Config, error) {
	cfg := defaults()

	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		fillDefaults(cfg)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return cfg, nil
}

func fillDefaults(cfg *Config) {
	def := defaults()
	if cfg.Provider == "" {
		cfg.Provider = def.Provider
	}
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = def.MaxTokens
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = def.Temperature
	}
	if cfg.Style == "" {
		cfg.Style = def.Style
	}
	if cfg.MaxDiffSize == 0 {
		cfg.MaxDiffSize = def.MaxDiffSize
	}
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		cfg.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvProvider)); v != "" {
		cfg.Provider = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvEndpoint)); v != "" {
		cfg.Endpoint = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvModel)); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv(EnvMaxTokens); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv(EnvTemperature); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Temperature = f
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvStyle)); v != "" {
		cfg.Style = v
	}
	if v := os.Getenv(EnvMaxDiffSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxDiffSize = n
		}
	}
	if os.Getenv(EnvNoColor) != "" {
		cfg.Color = false
	}
}

// Validate checks the numeric settings and the credential. Violations are
// fatal and reported before any provider call.
func (c *Config) Validate() error {
	if c.MaxTokens < 10 || c.MaxTokens > 4000 {
		return fmt.Errorf("%w: max_tokens must be between 10 and 4000, got %d", ErrInvalidConfig, c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("%w: temperature must be between 0 and 2, got %g", ErrInvalidConfig, c.Temperature)
	}
	if c.MaxDiffSize <= 0 {
		return fmt.Errorf("%w: max_diff_size must be positive, got %d", ErrInvalidConfig, c.MaxDiffSize)
	}
	if c.Provider == "openai" && strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: no API key configured (set %s or run git-ai config set-key)", ErrInvalidConfig, EnvAPIKey)
	}
	return nil
}

// Save writes the config file, creating the directory when needed.
func Save(cfg *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func SetModel(model string) error {
	return update(func(cfg *Config) { cfg.Model = model })
}

func SetStyle(style string) error {
	return update(func(cfg *Config) { cfg.Style = style })
}

func SetKey(key string) error {
	return update(func(cfg *Config) { cfg.APIKey = key })
}

func SetProvider(provider string) error {
	return update(func(cfg *Config) { cfg.Provider = provider })
}

func update(apply func(*Config)) error {
	cfg, err := loadFile()
	if err != nil {
		return err
	}
	apply(cfg)
	return Save(cfg)
}
