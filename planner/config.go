package planner

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/render"
	"github.com/katalvlaran/gridastar/scenario"
)

// ErrInvalidConfig is returned by Validate and LoadConfig.
var ErrInvalidConfig = errors.New("planner: invalid config")

// Config is the application configuration, loaded from YAML with
// environment overrides.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after creation.
type Config struct {
	// Map describes the generated demonstration map.
	Map MapConfig `yaml:"map"`

	// Search tunes the A* engine.
	Search SearchConfig `yaml:"search"`

	// Batch controls RunBatch.
	Batch BatchConfig `yaml:"batch"`

	// Output controls logging, colour and metrics.
	Output OutputConfig `yaml:"output"`
}

// MapConfig describes the generated '+' map and its endpoints.
type MapConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Connectivity int `yaml:"connectivity"`
	// Layout pins one of the canonical layouts; -1 draws one at random.
	Layout int `yaml:"layout"`
	// Seed drives every random draw; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
}

// SearchConfig tunes each search.
type SearchConfig struct {
	Heuristic     string `yaml:"heuristic"`
	MaxExpansions int    `yaml:"max_expansions"`
}

// BatchConfig controls concurrent batches.
type BatchConfig struct {
	// Concurrency bounds the number of searches in flight.
	Concurrency int `yaml:"concurrency"`
	// RandomPairs adds that many random reachable endpoint pairs to a batch.
	RandomPairs int `yaml:"random_pairs"`
}

// OutputConfig controls presentation and observability.
type OutputConfig struct {
	LogLevel string `yaml:"log_level"`
	Color    string `yaml:"color"`
	Metrics  bool   `yaml:"metrics"`
	ShowMap  bool   `yaml:"show_map"`
}

// DefaultConfig returns the configuration of the classic demonstration:
// a 60×60 '+' map, 8-directional moves, the truncated Euclidean heuristic
// and a randomly drawn layout.
func DefaultConfig() Config {
	return Config{
		Map: MapConfig{
			Width:        scenario.DefaultWidth,
			Height:       scenario.DefaultHeight,
			Connectivity: 8,
			Layout:       -1,
		},
		Search: SearchConfig{
			Heuristic: "euclidean",
		},
		Batch: BatchConfig{
			Concurrency: 4,
		},
		Output: OutputConfig{
			LogLevel: "info",
			Color:    string(render.ColorAuto),
			ShowMap:  true,
		},
	}
}

// LoadConfig loads configuration with priority: env > file > defaults.
// An empty path or a missing file keeps the defaults. Malformed GRIDASTAR_*
// values are reported as ErrInvalidConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("load config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
			}
		}
	}

	if err := loadConfigFromEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadConfigFromEnv(cfg *Config) error {
	var errs []error
	envInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v))
				return
			}
			*dst = i
		}
	}

	envInt("GRIDASTAR_WIDTH", &cfg.Map.Width)
	envInt("GRIDASTAR_HEIGHT", &cfg.Map.Height)
	envInt("GRIDASTAR_CONNECTIVITY", &cfg.Map.Connectivity)
	envInt("GRIDASTAR_LAYOUT", &cfg.Map.Layout)
	if v := os.Getenv("GRIDASTAR_SEED"); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: GRIDASTAR_SEED=%q is not an integer", ErrInvalidConfig, v))
		} else {
			cfg.Map.Seed = i
		}
	}
	if v := os.Getenv("GRIDASTAR_HEURISTIC"); v != "" {
		cfg.Search.Heuristic = v
	}
	envInt("GRIDASTAR_MAX_EXPANSIONS", &cfg.Search.MaxExpansions)
	envInt("GRIDASTAR_CONCURRENCY", &cfg.Batch.Concurrency)
	if v := os.Getenv("GRIDASTAR_LOG_LEVEL"); v != "" {
		cfg.Output.LogLevel = v
	}
	if v := os.Getenv("GRIDASTAR_COLOR"); v != "" {
		cfg.Output.Color = v
	}
	if v := os.Getenv("GRIDASTAR_METRICS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: GRIDASTAR_METRICS=%q is not a boolean", ErrInvalidConfig, v))
		} else {
			cfg.Output.Metrics = b
		}
	}

	return errors.Join(errs...)
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Map.Width < scenario.MinSize || c.Map.Height < scenario.MinSize {
		return fmt.Errorf("%w: map must be at least %dx%d, got %dx%d",
			ErrInvalidConfig, scenario.MinSize, scenario.MinSize, c.Map.Width, c.Map.Height)
	}
	if _, err := grid.ParseConnectivity(c.Map.Connectivity); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Map.Layout < -1 || c.Map.Layout >= scenario.LayoutCount {
		return fmt.Errorf("%w: layout must be -1..%d, got %d", ErrInvalidConfig, scenario.LayoutCount-1, c.Map.Layout)
	}
	if _, err := astar.ParseHeuristic(c.Search.Heuristic); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions must be >= 0", ErrInvalidConfig)
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be >= 1", ErrInvalidConfig)
	}
	if c.Batch.RandomPairs < 0 {
		return fmt.Errorf("%w: random_pairs must be >= 0", ErrInvalidConfig)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := render.ParseColorMode(c.Output.Color); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LogLevel parses Output.LogLevel ("debug", "info", "warn", "error").
func (c Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Output.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}
	return lvl, nil
}

// Connectivity returns the configured grid connectivity.
func (c Config) Connectivity() grid.Connectivity {
	conn, err := grid.ParseConnectivity(c.Map.Connectivity)
	if err != nil {
		return grid.Conn8
	}
	return conn
}

// SearchOptions translates Search into astar options.
func (c Config) SearchOptions() ([]astar.Option, error) {
	h, err := astar.ParseHeuristic(c.Search.Heuristic)
	if err != nil {
		return nil, err
	}
	return []astar.Option{
		astar.WithHeuristic(h),
		astar.WithMaxExpansions(c.Search.MaxExpansions),
	}, nil
}

// ScenarioOptions translates Map into scenario options. A zero seed is
// replaced by the current time.
func (c Config) ScenarioOptions() []scenario.Option {
	seed := c.Map.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []scenario.Option{
		scenario.WithSeed(seed),
		scenario.WithConnectivity(c.Connectivity()),
	}
	if c.Map.Layout >= 0 {
		opts = append(opts, scenario.WithLayout(c.Map.Layout))
	}
	return opts
}
