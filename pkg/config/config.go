package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a file).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Session SessionConfig
	Log     LogConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig local view-surface listener.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig remote EcoSaathi REST service.
type BackendConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// SessionConfig client-local session persistence.
type SessionConfig struct {
	StatePath  string // file holding the single sealed session record
	SealSecret string // HMAC key for the at-rest seal
}

// LogConfig logging level.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// Load reads configuration from environment variables (and optionally from a
// .env / config.env file). Env vars win. Expected names: APP_ENV, HTTP_PORT,
// BACKEND_BASE_URL, SESSION_STATE_PATH, SESSION_SEAL_SECRET, LOG_LEVEL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env or config.env); missing files are fine.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "ecosaathi"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL:        getString(v, "BACKEND_BASE_URL", "https://ecosaathi-backend.onrender.com"),
			TimeoutSeconds: getInt(v, "BACKEND_TIMEOUT_SECONDS", 15),
		},
		Session: SessionConfig{
			StatePath:  getString(v, "SESSION_STATE_PATH", defaultStatePath()),
			SealSecret: getString(v, "SESSION_SEAL_SECRET", "ecosaathi-local-seal"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// defaultStatePath places the session record under the user's state dir,
// falling back to the working directory when no home is resolvable.
func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ecosaathi/session"
	}
	return filepath.Join(home, ".ecosaathi", "session")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
