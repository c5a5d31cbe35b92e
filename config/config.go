package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Extraction pipeline
	LLM      LLMConfig
	Deadline DeadlineConfig

	// Calendar export
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	APIKey          string // X-API-Key required when set
	RateLimitPerMin int    // per client IP, 0 disables
	TrustedProxies  []string
	ShutdownTimeout string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DeadlineConfig struct {
	Timezone string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Enabled reports whether calendar export is configured.
func (c GoogleCalendarConfig) Enabled() bool {
	return c.CredentialsPath != ""
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // global timeout for the entire fallback chain
	Temperature     float64          `yaml:"temperature"`
	MaxTokens       int              `yaml:"max_tokens"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// DefaultProvider is used when neither llm.providers nor AI_PROVIDER is set.
const DefaultProvider = "openai"

// defaultModels are used when a provider is configured from the environment alone.
var defaultModels = map[string]string{
	"openai":    "gpt-4-turbo-preview",
	"anthropic": "claude-3-sonnet-20240229",
	"gemini":    "gemini-2.5-flash",
	"deepseek":  "deepseek-chat",
	"qwen":      "qwen-plus",
}

// ErrNoProviders is returned when no LLM provider can be configured.
var ErrNoProviders = errors.New("no LLM providers configured")

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/syncnotes/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration from path, or from the default search paths when path is empty.
// A .env file in the working directory is loaded first if present.
func LoadFile(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/syncnotes/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.APIKey = v.GetString("http_server.api_key")
	if apiKey := v.GetString("syncnotes_api_key"); apiKey != "" {
		cfg.HTTPServer.APIKey = apiKey
	}
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.HTTPServer.ShutdownTimeout = v.GetString("http_server.shutdown_timeout")
	cfg.HTTPServer.TrustedProxies = v.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Deadline.Timezone = v.GetString("deadline.timezone")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = v.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = v.GetInt("llm.max_tokens")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     strings.ToLower(getStringFromMap(providerMap, "name")),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// Zero-config mode: a single provider chosen by AI_PROVIDER with its key from the environment.
	if len(cfg.LLM.Providers) == 0 {
		name := strings.ToLower(v.GetString("ai_provider"))
		provider, err := providerFromEnv(v, name)
		if err != nil {
			return nil, err
		}
		cfg.LLM.Providers = []ProviderConfig{provider}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	return cfg, nil
}

// UseProvider restricts the configuration to the named provider. A provider that is not in
// the file is built from <NAME>_API_KEY and <NAME>_MODEL.
func (c *LLMConfig) UseProvider(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range c.Providers {
		if p.Name == name {
			p.Enabled = true
			p.Priority = 1
			c.Providers = []ProviderConfig{p}
			return nil
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	provider, err := providerFromEnv(v, name)
	if err != nil {
		return err
	}
	c.Providers = []ProviderConfig{provider}
	return nil
}

func providerFromEnv(v *viper.Viper, name string) (ProviderConfig, error) {
	if name == "" {
		name = DefaultProvider
	}
	defaultModel, known := defaultModels[name]
	if !known {
		return ProviderConfig{}, fmt.Errorf("unsupported AI provider %q", name)
	}

	apiKey := v.GetString(name + "_api_key")
	if apiKey == "" {
		return ProviderConfig{}, fmt.Errorf("%w: set llm.providers or %s_API_KEY", ErrNoProviders, strings.ToUpper(name))
	}
	model := v.GetString(name + "_model")
	if model == "" {
		model = defaultModel
	}

	return ProviderConfig{
		Name:     name,
		Enabled:  true,
		Priority: 1,
		APIKey:   apiKey,
		BaseURL:  v.GetString(name + "_base_url"),
		Model:    model,
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.rate_limit_per_min", 60)
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("deadline.timezone", "UTC")
	v.SetDefault("google_calendar.calendar_id", "primary")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("llm.max_tokens", 2000)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	// viper also sees keys set through the config file or .env
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return ""
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return ErrNoProviders
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("%w: no enabled providers", ErrNoProviders)
	}

	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return fmt.Errorf("temperature %.2f out of range [0, 2]", cfg.Temperature)
	}
	if cfg.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must not be negative")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
