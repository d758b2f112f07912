package game

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/dimaq12/minesweeper-term/models"
)

const (
	DefaultRows        = 24
	DefaultCols        = 24
	DefaultMinePercent = 15
	MinMinePercent     = 1
	MaxMinePercent     = 95
)

const (
	envRows        = "MINESWEEPER_ROWS"
	envCols        = "MINESWEEPER_COLS"
	envMinePercent = "MINESWEEPER_MINE_PERCENT"
	envSeed        = "MINESWEEPER_SEED"
	envLogFile     = "MINESWEEPER_LOG_FILE"
	envLogLevel    = "MINESWEEPER_LOG_LEVEL"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Params holds everything needed to start a session and its terminal UI.
type Params struct {
	Rows        int
	Cols        int
	MinePercent int
	Seed        int64 // 0 seeds from the clock
	LogFile     string
	LogLevel    string
}

func DefaultParams() Params {
	return Params{
		Rows:        DefaultRows,
		Cols:        DefaultCols,
		MinePercent: DefaultMinePercent,
		LogLevel:    "info",
	}
}

// LoadParams reads an optional .env file, then the environment, then args.
func LoadParams(args []string) (Params, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Params{}, fmt.Errorf("load .env: %w", err)
	}
	return ParseParams(args, os.LookupEnv)
}

// ParseParams builds Params from defaults, lookup and command-line args of
// the form [flags] [rows [cols [mine_percent]]]. A single dimension sets
// both rows and cols.
func ParseParams(args []string, lookup func(string) (string, bool)) (Params, error) {
	p := DefaultParams()

	rowsSet := false
	if v, ok := lookup(envRows); ok && v != "" {
		n, err := parseInt(envRows, v)
		if err != nil {
			return Params{}, err
		}
		p.Rows, p.Cols, rowsSet = n, n, true
	}
	if v, ok := lookup(envCols); ok && v != "" {
		n, err := parseInt(envCols, v)
		if err != nil {
			return Params{}, err
		}
		p.Cols = n
		if !rowsSet {
			p.Rows = n
		}
	}
	if v, ok := lookup(envMinePercent); ok && v != "" {
		n, err := parseInt(envMinePercent, v)
		if err != nil {
			return Params{}, err
		}
		p.MinePercent = n
	}
	if v, ok := lookup(envSeed); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Params{}, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, envSeed, v)
		}
		p.Seed = n
	}
	if v, ok := lookup(envLogFile); ok {
		p.LogFile = v
	}
	if v, ok := lookup(envLogLevel); ok && v != "" {
		p.LogLevel = v
	}

	fset := flag.NewFlagSet("minesweeper", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.Int64Var(&p.Seed, "seed", p.Seed, "mine placement seed (0 = random)")
	fset.StringVar(&p.LogFile, "log-file", p.LogFile, "append logs to this file")
	fset.StringVar(&p.LogLevel, "log-level", p.LogLevel, "log level")
	if err := fset.Parse(args); err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	positional := fset.Args()
	if len(positional) > 3 {
		return Params{}, fmt.Errorf("%w: too many arguments", ErrInvalidConfig)
	}
	if len(positional) >= 1 {
		n, err := parseInt("rows", positional[0])
		if err != nil {
			return Params{}, err
		}
		p.Rows, p.Cols = n, n
	}
	if len(positional) >= 2 {
		n, err := parseInt("cols", positional[1])
		if err != nil {
			return Params{}, err
		}
		p.Cols = n
	}
	if len(positional) == 3 {
		n, err := parseInt("mine_percent", positional[2])
		if err != nil {
			return Params{}, err
		}
		p.MinePercent = n
	}

	return p, p.Validate()
}

func parseInt(name, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, name, v)
	}
	return n, nil
}

func (p Params) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, p.Rows, p.Cols)
	}
	if p.MinePercent < MinMinePercent || p.MinePercent > MaxMinePercent {
		return fmt.Errorf("%w: mine percent %d outside %d-%d", ErrInvalidConfig, p.MinePercent, MinMinePercent, MaxMinePercent)
	}
	return nil
}

// MineCount converts MinePercent into a mine count for the configured board.
func (p Params) MineCount() int {
	cells := p.Rows * p.Cols
	n := p.MinePercent * cells / 100
	if n <= 0 {
		n = models.DefaultMineCount(p.Rows, p.Cols)
	}
	if n >= cells {
		n = cells - 1
	}
	return n
}

func Usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: minesweeper [flags] [rows [cols [mine_percent]]]")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  rows          board rows (default %d)\n", DefaultRows)
	fmt.Fprintln(w, "  cols          board columns (default: rows)")
	fmt.Fprintf(w, "  mine_percent  %d-%d (default %d)\n", MinMinePercent, MaxMinePercent, DefaultMinePercent)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -seed int         mine placement seed (0 = random)")
	fmt.Fprintln(w, "  -log-file path    append logs to this file")
	fmt.Fprintln(w, "  -log-level level  panic|fatal|error|warn|info|debug|trace (default info)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  "+envRows+", "+envCols+", "+envMinePercent)
	fmt.Fprintln(w, "  "+envSeed+", "+envLogFile+", "+envLogLevel)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keys: arrows/wasd move, f/j flag, space/k reveal, r restart, q quit")
}
