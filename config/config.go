package config

import (
	"flag"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/alexanderi96/snake/game/types"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

const envPrefix = "SNAKE_"

// Upper bounds keep the window side well inside int32.
const (
	MaxCellCount  = 1000
	MaxCellSize   = 200
	MaxOffset     = 1000
	MaxWindowSize = 8192
)

type Config struct {
	CellSize    int           // pixels per cell
	CellCount   int           // cells per side
	Offset      int           // margin between the window edge and the board
	Tick        time.Duration // time between game updates
	FPS         int
	Title       string
	FoodTexture string
	Seed        uint64 // 0 picks a time based seed
	Autopilot   bool
	Debug       bool
	EnvFile     string
}

func Default() Config {
	return Config{
		CellSize:    30,
		CellCount:   25,
		Offset:      75,
		Tick:        150 * time.Millisecond,
		FPS:         60,
		Title:       "Snake",
		FoodTexture: "Graphics/food.png",
		EnvFile:     ".env",
	}
}

// Load builds the configuration from defaults, then the env file, then the
// process environment, then command line flags. lookup is normally
// os.LookupEnv.
func Load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	// First pass only to learn where the env file lives.
	first := Default()
	if v, ok := lookup(envPrefix + "ENV_FILE"); ok {
		first.EnvFile = v
	}
	if err := newFlagSet(&first).Parse(args); err != nil {
		return nil, errors.Wrap(err, "parsing flags")
	}
	cfg.EnvFile = first.EnvFile

	fileVars, err := readEnvFile(cfg.EnvFile)
	if err != nil {
		return nil, err
	}
	env := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}
	if err := cfg.applyEnv(env); err != nil {
		return nil, err
	}

	if err := newFlagSet(&cfg).Parse(args); err != nil {
		return nil, errors.Wrap(err, "parsing flags")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newFlagSet(cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.CellSize, "cell-size", cfg.CellSize, "Cell size in pixels")
	fs.IntVar(&cfg.CellCount, "cells", cfg.CellCount, "Number of cells per side")
	fs.IntVar(&cfg.Offset, "offset", cfg.Offset, "Margin around the board in pixels")
	fs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "Time between snake moves (lower = faster)")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Target frames per second")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "Window title")
	fs.StringVar(&cfg.FoodTexture, "texture", cfg.FoodTexture, "Food image")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for time based")
	fs.BoolVar(&cfg.Autopilot, "autopilot", cfg.Autopilot, "Let the computer steer")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Verbose logging")
	fs.StringVar(&cfg.EnvFile, "env", cfg.EnvFile, "Env file with SNAKE_* settings")
	return fs
}

// Usage prints the flag help to w.
func Usage(w io.Writer) {
	cfg := Default()
	fs := newFlagSet(&cfg)
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// readEnvFile returns no variables when path does not exist; the env file is
// optional.
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading env file %s", path)
	}
	return vars, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"CELL_SIZE": &c.CellSize,
		"CELLS":     &c.CellCount,
		"OFFSET":    &c.Offset,
		"FPS":       &c.FPS,
	}
	for key, dst := range ints {
		v, ok := lookup(envPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s%s", envPrefix, key)
		}
		*dst = n
	}

	bools := map[string]*bool{
		"AUTOPILOT": &c.Autopilot,
		"DEBUG":     &c.Debug,
	}
	for key, dst := range bools {
		v, ok := lookup(envPrefix + key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%s%s", envPrefix, key)
		}
		*dst = b
	}

	if v, ok := lookup(envPrefix + "TICK"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "%sTICK", envPrefix)
		}
		c.Tick = d
	}
	if v, ok := lookup(envPrefix + "SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%sSEED", envPrefix)
		}
		c.Seed = n
	}
	if v, ok := lookup(envPrefix + "TITLE"); ok {
		c.Title = v
	}
	if v, ok := lookup(envPrefix + "TEXTURE"); ok {
		c.FoodTexture = v
	}
	return nil
}

func (c *Config) Validate() error {
	switch {
	case c.CellCount < types.MinCellCount:
		return errors.Wrapf(ErrInvalid, "cells must be at least %d, got %d", types.MinCellCount, c.CellCount)
	case c.CellCount > MaxCellCount:
		return errors.Wrapf(ErrInvalid, "cells must be at most %d, got %d", MaxCellCount, c.CellCount)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalid, "cell size must be positive, got %d", c.CellSize)
	case c.CellSize > MaxCellSize:
		return errors.Wrapf(ErrInvalid, "cell size must be at most %d, got %d", MaxCellSize, c.CellSize)
	case c.Offset < 0:
		return errors.Wrapf(ErrInvalid, "offset must not be negative, got %d", c.Offset)
	case c.Offset > MaxOffset:
		return errors.Wrapf(ErrInvalid, "offset must be at most %d, got %d", MaxOffset, c.Offset)
	case c.WindowSize() > MaxWindowSize:
		return errors.Wrapf(ErrInvalid, "window side %d exceeds %d, lower cells, cell size or offset", c.WindowSize(), MaxWindowSize)
	case c.Tick <= 0:
		return errors.Wrapf(ErrInvalid, "tick must be positive, got %s", c.Tick)
	case c.FPS <= 0:
		return errors.Wrapf(ErrInvalid, "fps must be positive, got %d", c.FPS)
	}
	return nil
}

// WindowSize is the side of the square window in pixels.
func (c *Config) WindowSize() int {
	return 2*c.Offset + c.CellCount*c.CellSize
}

// RandomSeed returns Seed, or a time based seed when Seed is 0.
func (c *Config) RandomSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
