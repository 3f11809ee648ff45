package config

import (
	"fmt"
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
	CORS       CORSConfig

	// Campus assistant specifics
	Supabase SupabaseConfig
	Gemini   GeminiConfig
	Auth     AuthConfig
	Chat     ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type SupabaseConfig struct {
	URL     string
	AnonKey string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type AuthConfig struct {
	AllowedEmailDomain string
	TokenCacheSize     int
	TokenCacheTTL      time.Duration
}

type ChatConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

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
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Campus assistant specifics
	cfg.Supabase.URL = viper.GetString("supabase.url")
	cfg.Supabase.AnonKey = viper.GetString("supabase.anon_key")
	if supabaseURL := viper.GetString("supabase_url"); supabaseURL != "" {
		cfg.Supabase.URL = supabaseURL
	}
	if anonKey := viper.GetString("supabase_anon_key"); anonKey != "" {
		cfg.Supabase.AnonKey = anonKey
	}

	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	cfg.Auth.AllowedEmailDomain = viper.GetString("auth.allowed_email_domain")
	cfg.Auth.TokenCacheSize = viper.GetInt("auth.token_cache_size")
	cfg.Auth.TokenCacheTTL = viper.GetDuration("auth.token_cache_ttl")

	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	// Split allowed origins since viper might not parse array seamlessly from env
	var origins []string
	if rawOrigins := viper.GetString("cors.allowed_origins"); rawOrigins != "" {
		for _, origin := range strings.Split(rawOrigins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	cfg.CORS.AllowedOrigins = origins

	if cfg.Supabase.URL == "" {
		return nil, fmt.Errorf("supabase.url is required - set it in config.yaml or SUPABASE_URL")
	}
	if cfg.Supabase.AnonKey == "" {
		return nil, fmt.Errorf("supabase.anon_key is required - set it in config.yaml or SUPABASE_ANON_KEY")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("auth.allowed_email_domain", "dsu.edu")
	viper.SetDefault("auth.token_cache_size", 1024)
	viper.SetDefault("auth.token_cache_ttl", "5m")
	viper.SetDefault("chat.rate_limit_per_min", 30)
	viper.SetDefault("cors.allowed_origins", "http://localhost:3000,http://localhost:5173")
}
