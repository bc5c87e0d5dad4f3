// internal/config/config.go
//
// Process configuration read from the environment (and an optional .env file).
// Game rules live in a separate settings file; see settings.go.

package config

import (
	"github.com/joho/godotenv"
)

const (
	envPort          = "PORT"
	envAppEnv        = "APP_ENV"
	envLogLevel      = "LOG_LEVEL"
	envSettingsFile  = "SETTINGS_FILE"
	envWatchSettings = "WATCH_SETTINGS"
	envStoreDriver   = "STORE_DRIVER"
	envDataDir       = "DATA_DIR"
	envDataCompress  = "DATA_COMPRESS"
	envDatabaseURL   = "DATABASE_URL"
	envRedisAddr     = "REDIS_ADDR"
	envRedisPassword = "REDIS_PASSWORD"
	envRedisDB       = "REDIS_DB"
	envJWTSecret     = "JWT_SECRET"
	envJWTDays       = "JWT_EXPIRES_DAYS"
	envAuthRequired  = "AUTH_REQUIRED"
	envCookieName    = "COOKIE_NAME"
	envClientOrigin  = "CLIENT_ORIGIN"
	envDailySalt     = "DAILY_SALT"

	defaultPort         = "5175"
	defaultAppEnv       = "production"
	defaultLogLevel     = "info"
	defaultSettingsFile = "setting.json"
	defaultStoreDriver  = "file"
	defaultDataDir      = "./data"
	defaultDatabaseURL  = "./data/wordle.db"
	defaultJWTSecret    = "dev_secret_change_me"
	defaultJWTDays      = 14
	defaultCookieName   = "wordle_token"
	defaultClientOrigin = "http://localhost:5173"
	defaultDailySalt    = "local_dev_salt"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	SettingsFile  string
	WatchSettings bool
	ClientOrigin  string
	DailySalt     string
	Store         StoreConfig
	Redis         RedisConfig
	Auth          AuthConfig
}

// StoreConfig selects and configures the player store.
// Driver is one of "file", "memory", "sqlite3", "postgres".
type StoreConfig struct {
	Driver   string
	DataDir  string
	Compress bool
	DSN      string
}

// RedisConfig configures the leaderboard backend. An empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig configures player tokens.
type AuthConfig struct {
	Secret      string
	ExpiresDays int
	Required    bool
	CookieName  string
}

// Load reads configuration from the environment, loading .env first if present.
// Variables already set in the environment win over .env entries.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:          getEnv(envPort, defaultPort),
		Env:           getEnv(envAppEnv, defaultAppEnv),
		LogLevel:      getEnv(envLogLevel, defaultLogLevel),
		SettingsFile:  getEnv(envSettingsFile, defaultSettingsFile),
		WatchSettings: boolEnv(envWatchSettings, false),
		ClientOrigin:  getEnv(envClientOrigin, defaultClientOrigin),
		DailySalt:     getEnv(envDailySalt, defaultDailySalt),
		Store: StoreConfig{
			Driver:   getEnv(envStoreDriver, defaultStoreDriver),
			DataDir:  getEnv(envDataDir, defaultDataDir),
			Compress: boolEnv(envDataCompress, false),
			DSN:      getEnv(envDatabaseURL, defaultDatabaseURL),
		},
		Redis: RedisConfig{
			Addr:     getEnv(envRedisAddr, ""),
			Password: getEnv(envRedisPassword, ""),
			DB:       intEnv(envRedisDB, 0),
		},
		Auth: AuthConfig{
			Secret:      getEnv(envJWTSecret, defaultJWTSecret),
			ExpiresDays: intEnv(envJWTDays, defaultJWTDays),
			Required:    boolEnv(envAuthRequired, false),
			CookieName:  getEnv(envCookieName, defaultCookieName),
		},
	}
}

// IsDevelopment reports whether internal error details may be exposed.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}
