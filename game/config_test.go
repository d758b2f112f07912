package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want Params
	}{
		{
			name: "defaults",
			want: DefaultParams(),
		},
		{
			name: "single dimension sets both",
			args: []string{"10"},
			want: Params{Rows: 10, Cols: 10, MinePercent: 15, LogLevel: "info"},
		},
		{
			name: "rows cols and percent",
			args: []string{"10", "20", "30"},
			want: Params{Rows: 10, Cols: 20, MinePercent: 30, LogLevel: "info"},
		},
		{
			name: "flags before positionals",
			args: []string{"-seed", "42", "-log-level", "debug", "-log-file", "ms.log", "12"},
			want: Params{Rows: 12, Cols: 12, MinePercent: 15, Seed: 42, LogFile: "ms.log", LogLevel: "debug"},
		},
		{
			name: "environment",
			env: map[string]string{
				envRows:        "8",
				envMinePercent: "20",
				envSeed:        "7",
				envLogLevel:    "warn",
			},
			want: Params{Rows: 8, Cols: 8, MinePercent: 20, Seed: 7, LogLevel: "warn"},
		},
		{
			name: "environment cols only",
			env:  map[string]string{envCols: "9"},
			want: Params{Rows: 9, Cols: 9, MinePercent: 15, LogLevel: "info"},
		},
		{
			name: "arguments override environment",
			args: []string{"5", "6"},
			env:  map[string]string{envRows: "30", envCols: "40", envMinePercent: "50"},
			want: Params{Rows: 5, Cols: 6, MinePercent: 50, LogLevel: "info"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseParams(tt.args, envLookup(tt.env))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseParams_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "non-numeric rows", args: []string{"abc"}},
		{name: "zero rows", args: []string{"0"}},
		{name: "negative cols", args: []string{"5", "-3"}},
		{name: "percent too high", args: []string{"5", "5", "96"}},
		{name: "percent too low", args: []string{"5", "5", "0"}},
		{name: "too many arguments", args: []string{"5", "5", "5", "5"}},
		{name: "unknown flag", args: []string{"-bogus"}},
		{name: "bad env seed", env: map[string]string{envSeed: "x"}},
		{name: "bad env rows", env: map[string]string{envRows: "ten"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseParams(tt.args, envLookup(tt.env))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParams_MineCount(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		want int
	}{
		{name: "default board", p: Params{Rows: 24, Cols: 24, MinePercent: 15}, want: 86},
		{name: "rectangular", p: Params{Rows: 10, Cols: 20, MinePercent: 30}, want: 60},
		{name: "falls back to a sixth", p: Params{Rows: 3, Cols: 3, MinePercent: 5}, want: 1},
		{name: "stays below the cell count", p: Params{Rows: 2, Cols: 1, MinePercent: 95}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.MineCount())
		})
	}
}

func TestSetupLogging(t *testing.T) {
	_, err := SetupLogging("", "loud")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	path := t.TempDir() + "/minesweeper.log"
	closeLog, err := SetupLogging(path, "debug")
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = SetupLogging("", "info")
	})

	Logger().Info("hello")
	require.NoError(t, closeLog())
	assert.FileExists(t, path)
}
