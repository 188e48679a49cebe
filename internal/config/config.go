// Package config собирает настройки приложения.
//
// Приоритет (от низшего к высшему): значения по умолчанию, файл .env,
// переменные окружения CARCOST_*, флаги командной строки.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"

	"github.com/iudanet/carcost/internal/logging"
	"github.com/iudanet/carcost/internal/rates"
)

// Хранилища истории
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Переменные окружения
const (
	EnvDB       = "CARCOST_DB"
	EnvBackend  = "CARCOST_BACKEND"
	EnvLang     = "CARCOST_LANG"
	EnvStyle    = "CARCOST_STYLE"
	EnvLogLevel = "CARCOST_LOG_LEVEL"
	EnvCurrency = "CARCOST_CURRENCY"
	EnvEnvFile  = "CARCOST_ENV_FILE"
)

const defaultEnvFile = ".env"

var (
	ErrUnknownBackend  = errors.New("unknown storage backend")
	ErrUnknownCurrency = errors.New("unknown currency")
)

// Config holds the resolved settings.
type Config struct {
	DBPath      string
	Backend     string
	Lang        string
	Style       string
	Currency    string
	EnvFile     string
	LogLevel    slog.Level
	ShowVersion bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DBPath:   "carcost.db",
		Backend:  BackendBolt,
		Lang:     "fr",
		Style:    "auto",
		Currency: rates.DefaultCode,
		EnvFile:  defaultEnvFile,
		LogLevel: slog.LevelWarn,
	}
}

// LookupFunc returns an environment variable, os.LookupEnv in production.
type LookupFunc func(key string) (string, bool)

// Load registers the global flags on fset, parses args and layers the
// result over the defaults, the env file and CARCOST_* variables.
// A missing env file is not an error.
func Load(fset *flag.FlagSet, args []string, lookupEnv LookupFunc) (*Config, error) {
	cfg := Default()

	var (
		flagVals Config
		logLevel string
	)
	fset.BoolVar(&flagVals.ShowVersion, "version", false, "Show version information")
	fset.StringVar(&flagVals.DBPath, "db", cfg.DBPath, "Path to local history database")
	fset.StringVar(&flagVals.Backend, "backend", cfg.Backend, "History storage: bolt, sqlite or memory")
	fset.StringVar(&flagVals.Lang, "lang", cfg.Lang, "Display language: fr, en, es or ar")
	fset.StringVar(&flagVals.Style, "style", cfg.Style, "Output style: auto, dark, light, notty, ascii or plain")
	fset.StringVar(&logLevel, "log-level", cfg.LogLevel.String(), "Log level: debug, info, warn or error")
	fset.StringVar(&flagVals.Currency, "currency", cfg.Currency, "Foreign currency for prices and rates")
	fset.StringVar(&flagVals.EnvFile, "env-file", cfg.EnvFile, "Path to .env file")

	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	setFlags := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	// Путь к .env нужен раньше остальных значений
	if v, ok := lookupEnv(EnvEnvFile); ok && v != "" {
		cfg.EnvFile = v
	}
	if setFlags["env-file"] {
		cfg.EnvFile = flagVals.EnvFile
	}

	dotenv, err := readEnvFile(cfg.EnvFile)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel.String()
	values := map[string]*string{
		EnvDB:       &cfg.DBPath,
		EnvBackend:  &cfg.Backend,
		EnvLang:     &cfg.Lang,
		EnvStyle:    &cfg.Style,
		EnvLogLevel: &level,
		EnvCurrency: &cfg.Currency,
	}
	for key, dst := range values {
		if v, ok := dotenv[key]; ok && v != "" {
			*dst = v
		}
		if v, ok := lookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	cfg.ShowVersion = flagVals.ShowVersion
	if setFlags["db"] {
		cfg.DBPath = flagVals.DBPath
	}
	if setFlags["backend"] {
		cfg.Backend = flagVals.Backend
	}
	if setFlags["lang"] {
		cfg.Lang = flagVals.Lang
	}
	if setFlags["style"] {
		cfg.Style = flagVals.Style
	}
	if setFlags["log-level"] {
		level = logLevel
	}
	if setFlags["currency"] {
		cfg.Currency = flagVals.Currency
	}

	if cfg.LogLevel, err = logging.ParseLevel(level); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case BackendBolt, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}

	cur, ok := rates.Lookup(c.Currency)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, c.Currency)
	}
	c.Currency = cur.Code

	return nil
}

// readEnvFile читает .env; отсутствие файла не ошибка
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return values, nil
}
