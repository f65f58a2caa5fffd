package config

import (
	"os"
	"strings"
)

// Config holds all application configuration in a structured way.
type Config struct {
	App       AppConfig
	Knowledge KnowledgeConfig
	AI        AIConfig
	Session   SessionConfig
	APIKeys   APIKeysConfig
}

type AppConfig struct {
	Version            string
	Port               string
	Debug              bool
	Environment        string
	BasePath           string
	CorsAllowedOrigins []string
	TrustedProxies     []string
}

type KnowledgeConfig struct {
	// Dir is the flat directory of json/md/txt documents that ground the twin.
	Dir string
}

type AIConfig struct {
	Provider    string
	Model       string
	MaxTokens   int
	Temperature float64
}

type SessionConfig struct {
	// Backend selects the session store: "memory" (default) or "valkey".
	Backend         string
	ValkeyAddress   string
	ValkeyPassword  string
	ValkeyDB        int
	ValkeyKeyPrefix string
}

type APIKeysConfig struct {
	OpenAI    string
	Gemini    string
	Anthropic string
}

// Global provides access to the loaded configuration globally.
var Global *Config

// LoadConfig loads configuration from Environment Variables or defaults.
func LoadConfig() (*Config, error) {
	debug := getEnvBool("APP_DEBUG", getEnvBool("DEBUG", false))

	corsOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if v := os.Getenv("APP_CORS_ALLOWED_ORIGINS"); v != "" {
		corsOrigins = strings.Split(v, ",")
	}

	appCfg := AppConfig{
		Version:            "v1.2.0",
		Port:               getEnv("APP_PORT", "3000"),
		Debug:              debug,
		Environment:        getEnv("APP_ENV", "development"),
		BasePath:           getEnv("APP_BASE_PATH", ""),
		CorsAllowedOrigins: corsOrigins,
	}
	if v := os.Getenv("APP_TRUSTED_PROXIES"); v != "" {
		appCfg.TrustedProxies = strings.Split(v, ",")
	}

	cfg := &Config{
		App: appCfg,
		Knowledge: KnowledgeConfig{
			Dir: getEnv("KNOWLEDGE_DIR", "data"),
		},
		AI: AIConfig{
			Provider:    getEnv("AI_PROVIDER", "openai"),
			Model:       getEnv("AI_MODEL", ""),
			MaxTokens:   getEnvInt("AI_MAX_TOKENS", 2000),
			Temperature: getEnvFloat("AI_TEMPERATURE", 0.5),
		},
		Session: SessionConfig{
			Backend:         getEnv("SESSION_BACKEND", "memory"),
			ValkeyAddress:   getEnv("VALKEY_ADDRESS", "localhost:6379"),
			ValkeyPassword:  getEnv("VALKEY_PASSWORD", ""),
			ValkeyDB:        getEnvInt("VALKEY_DB", 0),
			ValkeyKeyPrefix: getEnv("VALKEY_KEY_PREFIX", "twin:"),
		},
		APIKeys: APIKeysConfig{
			OpenAI:    getEnv("OPENAI_API_KEY", ""),
			Gemini:    getEnv("GEMINI_API_KEY", ""),
			Anthropic: getEnv("ANTHROPIC_API_KEY", ""),
		},
	}

	Global = cfg
	return cfg, nil
}
