package cliparse

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

const (
	defaultPort        = 5000
	defaultDatabaseURL = "PointsPlus.db"
	defaultEnvFile     = ".env"
)

// viper keys
const (
	keyPort         = "port"
	keyDatabaseURL  = "database_url"
	keyDatabaseType = "database_type"
	keyLogLevel     = "log_level"
	keyLogFormat    = "log_format"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	LogLevel     string
	LogFormat    string
}

// Level returns the configured slog level, defaulting to info.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Flags returns the flag set shared by ParseFlags and the cobra commands.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("pointsplus", pflag.ContinueOnError)

	fs.IntP("port", "p", 0, "Server port")
	fs.StringP("database-url", "d", "", "Database URL or SQLite file path")
	fs.StringP("database-type", "t", "", "Database type (sqlite or postgres)")
	fs.String("log-level", "", "Log level (debug, info, warn, error)")
	fs.String("log-format", "", "Log format (text or json)")
	fs.String("env-file", defaultEnvFile, "Optional .env file with environment overrides")

	return fs
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	fs := Flags()
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return Load(fs)
}

// Load resolves the configuration from an already parsed flag set.
// Precedence: flags, environment, .env file, defaults.
func Load(fs *pflag.FlagSet) (Config, error) {
	envFile := defaultEnvFile
	if f := fs.Lookup("env-file"); f != nil {
		envFile = f.Value.String()
	}
	// godotenv.Load never overrides variables that are already set
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetDefault(keyPort, defaultPort)
	v.SetDefault(keyDatabaseURL, defaultDatabaseURL)
	v.SetDefault(keyDatabaseType, DatabaseSQLite)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, LogFormatText)

	bindings := []struct {
		key  string
		flag string
		env  string
	}{
		{keyPort, "port", "PORT"},
		{keyDatabaseURL, "database-url", "DATABASE_URL"},
		{keyDatabaseType, "database-type", "DATABASE_TYPE"},
		{keyLogLevel, "log-level", "LOG_LEVEL"},
		{keyLogFormat, "log-format", "LOG_FORMAT"},
	}
	for _, b := range bindings {
		if f := fs.Lookup(b.flag); f != nil {
			if err := v.BindPFlag(b.key, f); err != nil {
				return Config{}, err
			}
		}
		if err := v.BindEnv(b.key, b.env); err != nil {
			return Config{}, err
		}
	}

	port, err := strconv.Atoi(v.GetString(keyPort))
	if err != nil {
		return Config{}, errors.New("invalid PORT env variable")
	}

	cfg := Config{
		Port:         port,
		DatabaseURL:  v.GetString(keyDatabaseURL),
		DatabaseType: strings.ToLower(v.GetString(keyDatabaseType)),
		LogLevel:     strings.ToLower(v.GetString(keyLogLevel)),
		LogFormat:    strings.ToLower(v.GetString(keyLogFormat)),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	switch c.DatabaseType {
	case DatabaseSQLite, DatabasePostgres:
	default:
		return fmt.Errorf("unsupported database type %q (want sqlite or postgres)", c.DatabaseType)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", c.LogFormat)
	}
	return nil
}
