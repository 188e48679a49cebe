package config

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carcost/internal/logging"
)

func newFlagSet() *flag.FlagSet {
	fset := flag.NewFlagSet("carcost", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	return fset
}

func envMap(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	cfg, err := Load(newFlagSet(), []string{"-env-file", missing}, envMap(nil))
	require.NoError(t, err)

	want := Default()
	want.EnvFile = missing
	assert.Equal(t, &want, cfg)
}

func TestLoad_Precedence(t *testing.T) {
	envFile := writeEnvFile(t, `
CARCOST_DB=from-file.db
CARCOST_BACKEND=sqlite
CARCOST_LANG=es
CARCOST_STYLE=light
`)

	tests := []struct {
		env         map[string]string
		name        string
		wantDB      string
		wantBackend string
		wantLang    string
		wantStyle   string
		args        []string
	}{
		{
			name:        "env file over defaults",
			args:        []string{"-env-file", envFile},
			env:         nil,
			wantDB:      "from-file.db",
			wantBackend: BackendSQLite,
			wantLang:    "es",
			wantStyle:   "light",
		},
		{
			name:        "environment over env file",
			args:        []string{"-env-file", envFile},
			env:         map[string]string{EnvDB: "from-env.db", EnvLang: "ar"},
			wantDB:      "from-env.db",
			wantBackend: BackendSQLite,
			wantLang:    "ar",
			wantStyle:   "light",
		},
		{
			name:        "flags over environment",
			args:        []string{"-env-file", envFile, "-db", "from-flag.db", "-backend", "memory", "-style", "plain"},
			env:         map[string]string{EnvDB: "from-env.db", EnvBackend: "bolt"},
			wantDB:      "from-flag.db",
			wantBackend: BackendMemory,
			wantLang:    "es",
			wantStyle:   "plain",
		},
		{
			name:        "empty environment value ignored",
			args:        []string{"-env-file", envFile},
			env:         map[string]string{EnvDB: ""},
			wantDB:      "from-file.db",
			wantBackend: BackendSQLite,
			wantLang:    "es",
			wantStyle:   "light",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(newFlagSet(), tt.args, envMap(tt.env))
			require.NoError(t, err)

			assert.Equal(t, tt.wantDB, cfg.DBPath)
			assert.Equal(t, tt.wantBackend, cfg.Backend)
			assert.Equal(t, tt.wantLang, cfg.Lang)
			assert.Equal(t, tt.wantStyle, cfg.Style)
		})
	}
}

func TestLoad_EnvFileFromEnvironment(t *testing.T) {
	envFile := writeEnvFile(t, "CARCOST_CURRENCY=usd\nCARCOST_LOG_LEVEL=debug\n")

	cfg, err := Load(newFlagSet(), nil, envMap(map[string]string{EnvEnvFile: envFile}))
	require.NoError(t, err)

	assert.Equal(t, envFile, cfg.EnvFile)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_RemainingArgs(t *testing.T) {
	fset := newFlagSet()
	missing := filepath.Join(t.TempDir(), "missing.env")

	cfg, err := Load(fset, []string{"-env-file", missing, "-version", "calc", "-price", "10000"}, envMap(nil))
	require.NoError(t, err)

	assert.True(t, cfg.ShowVersion)
	assert.Equal(t, []string{"calc", "-price", "10000"}, fset.Args())
}

func TestLoad_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	tests := []struct {
		wantErr error
		name    string
		args    []string
	}{
		{name: "backend", args: []string{"-backend", "redis"}, wantErr: ErrUnknownBackend},
		{name: "currency", args: []string{"-currency", "XYZ"}, wantErr: ErrUnknownCurrency},
		{name: "log level", args: []string{"-log-level", "verbose"}, wantErr: logging.ErrUnknownLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-env-file", missing}, tt.args...)
			_, err := Load(newFlagSet(), args, envMap(nil))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_UnknownFlag(t *testing.T) {
	_, err := Load(newFlagSet(), []string{"-master-password", "x"}, envMap(nil))
	assert.Error(t, err)
}

func TestLoad_UnreadableEnvFile(t *testing.T) {
	// Директория вместо файла
	_, err := Load(newFlagSet(), []string{"-env-file", t.TempDir()}, envMap(nil))
	assert.ErrorContains(t, err, "failed to read env file")
}
