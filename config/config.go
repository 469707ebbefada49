package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// ERP upstream
	Upstream UpstreamConfig
	Breaker  BreakerConfig

	// Lookup caches
	Lookup LookupConfig

	Metrics  MetricsConfig
	Boundary BoundaryConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration

	// OAuth2 client credentials. Empty TokenURL disables auth.
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string

	RateLimitPerMin int
	CacheSize       int
	CacheTTL        time.Duration
}

type BreakerConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
	MinRequests  uint32
}

type LookupConfig struct {
	DefaultLimit  int
	MaxLimit      int
	MaxItems      int
	RetryAttempts int
	RetryDelay    time.Duration
	Entities      []EntityConfig
}

// EntityConfig is one entry of lookup.entities. An empty list means the
// built-in catalog.
type EntityConfig struct {
	Name         string         `yaml:"name"`
	Collection   string         `yaml:"collection"`
	DefaultLimit int            `yaml:"default_limit"`
	MaxLimit     int            `yaml:"max_limit"`
	MaxItems     int            `yaml:"max_items"`
	Permission   string         `yaml:"permission"`
	Filters      map[string]any `yaml:"filters"` // "key=value,key=value"
}

type MetricsConfig struct {
	Namespace string
}

type BoundaryConfig struct {
	CacheSize int
	TTL       time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/erp-lookup/.
// CONFIG_FILE points at an explicit file instead.
func Load() (*Config, error) {
	viper.Reset()
	if file := os.Getenv("CONFIG_FILE"); file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/erp-lookup/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Upstream
	cfg.Upstream.BaseURL = viper.GetString("upstream.base_url")
	if baseURL := viper.GetString("erp_base_url"); baseURL != "" {
		cfg.Upstream.BaseURL = baseURL
	}
	cfg.Upstream.Timeout = viper.GetDuration("upstream.timeout")
	cfg.Upstream.TokenURL = viper.GetString("upstream.token_url")
	cfg.Upstream.ClientID = viper.GetString("upstream.client_id")
	cfg.Upstream.ClientSecret = expandEnvVar(viper.GetString("upstream.client_secret"))
	if secret := viper.GetString("erp_client_secret"); secret != "" {
		cfg.Upstream.ClientSecret = secret
	}
	cfg.Upstream.Scopes = splitList(viper.GetString("upstream.scopes"))
	cfg.Upstream.RateLimitPerMin = viper.GetInt("upstream.rate_limit_per_min")
	cfg.Upstream.CacheSize = viper.GetInt("upstream.cache_size")
	cfg.Upstream.CacheTTL = viper.GetDuration("upstream.cache_ttl")

	cfg.Breaker.MaxRequests = viper.GetUint32("breaker.max_requests")
	cfg.Breaker.Interval = viper.GetDuration("breaker.interval")
	cfg.Breaker.Timeout = viper.GetDuration("breaker.timeout")
	cfg.Breaker.FailureRatio = viper.GetFloat64("breaker.failure_ratio")
	cfg.Breaker.MinRequests = viper.GetUint32("breaker.min_requests")

	// Lookup
	cfg.Lookup.DefaultLimit = viper.GetInt("lookup.default_limit")
	cfg.Lookup.MaxLimit = viper.GetInt("lookup.max_limit")
	cfg.Lookup.MaxItems = viper.GetInt("lookup.max_items")
	cfg.Lookup.RetryAttempts = viper.GetInt("lookup.retry_attempts")
	cfg.Lookup.RetryDelay = viper.GetDuration("lookup.retry_delay")

	if viper.IsSet("lookup.entities") {
		if entityList, ok := viper.Get("lookup.entities").([]interface{}); ok {
			for _, e := range entityList {
				if entityMap, ok := e.(map[string]interface{}); ok {
					cfg.Lookup.Entities = append(cfg.Lookup.Entities, EntityConfig{
						Name:         getStringFromMap(entityMap, "name"),
						Collection:   getStringFromMap(entityMap, "collection"),
						DefaultLimit: getIntFromMap(entityMap, "default_limit"),
						MaxLimit:     getIntFromMap(entityMap, "max_limit"),
						MaxItems:     getIntFromMap(entityMap, "max_items"),
						Permission:   getStringFromMap(entityMap, "permission"),
						Filters:      parseFilters(getStringFromMap(entityMap, "filters")),
					})
				}
			}
		}
	}

	cfg.Metrics.Namespace = viper.GetString("metrics.namespace")
	cfg.Boundary.CacheSize = viper.GetInt("boundary.cache_size")
	cfg.Boundary.TTL = viper.GetDuration("boundary.ttl")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("upstream.base_url", "http://localhost:9090")
	viper.SetDefault("upstream.timeout", "10s")
	viper.SetDefault("upstream.rate_limit_per_min", 600)
	viper.SetDefault("upstream.cache_size", 1024)
	viper.SetDefault("upstream.cache_ttl", "30s")

	viper.SetDefault("breaker.max_requests", 3)
	viper.SetDefault("breaker.interval", "60s")
	viper.SetDefault("breaker.timeout", "30s")
	viper.SetDefault("breaker.failure_ratio", 0.5)
	viper.SetDefault("breaker.min_requests", 5)

	viper.SetDefault("lookup.default_limit", 20)
	viper.SetDefault("lookup.max_limit", 200)
	viper.SetDefault("lookup.max_items", 500)
	viper.SetDefault("lookup.retry_attempts", 3)
	viper.SetDefault("lookup.retry_delay", "500ms")

	viper.SetDefault("metrics.namespace", "erp_lookup")
	viper.SetDefault("boundary.cache_size", 10000)
	viper.SetDefault("boundary.ttl", "30m")
}

func validate(cfg *Config) error {
	if cfg.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	if cfg.Upstream.TokenURL != "" && cfg.Upstream.ClientID == "" {
		return fmt.Errorf("upstream.client_id is required when upstream.token_url is set")
	}
	if cfg.Lookup.DefaultLimit <= 0 {
		return fmt.Errorf("lookup.default_limit must be positive")
	}
	if cfg.Lookup.MaxLimit > 0 && cfg.Lookup.DefaultLimit > cfg.Lookup.MaxLimit {
		return fmt.Errorf("lookup.default_limit %d exceeds lookup.max_limit %d", cfg.Lookup.DefaultLimit, cfg.Lookup.MaxLimit)
	}

	seen := make(map[string]bool, len(cfg.Lookup.Entities))
	for i, e := range cfg.Lookup.Entities {
		if e.Name == "" {
			return fmt.Errorf("lookup entity %d: name is required", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("lookup entity %s: duplicate name", e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		return os.Getenv(value[2 : len(value)-1])
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
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

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

// parseFilters reads "key=value,key=value". Keys keep their case, which
// nested YAML maps would lose.
func parseFilters(raw string) map[string]any {
	var out map[string]any
	for _, pair := range splitList(raw) {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			continue
		}
		if out == nil {
			out = make(map[string]any)
		}
		out[k] = strings.TrimSpace(v)
	}
	return out
}
