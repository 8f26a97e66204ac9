package app

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"lifelike/internal/core"
)

// RuleConfig is the serializable form of a rule. Survival and Birth use
// the count-list syntax understood by core.ParseCounts ("3", "2,3",
// "2-4" or "" for the empty set).
type RuleConfig struct {
	Survival string `yaml:"survival"`
	Birth    string `yaml:"birth"`
	MaxState int    `yaml:"max_state"`
	Neighbor string `yaml:"neighbor"`
}

// Config carries the command-line and config-file parameters shared by
// the front-end binaries.
type Config struct {
	Engine  string  `yaml:"engine"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Scale   int     `yaml:"scale"`
	TPS     int     `yaml:"tps"`
	Seed    int64   `yaml:"seed"`
	Density float64 `yaml:"density"`

	Rule RuleConfig `yaml:"rule"`
}

// NewConfig returns a Config populated with sensible defaults: the
// spatial-convolution engine running Conway's B3/S23 at density 0.2.
func NewConfig() *Config {
	return &Config{
		Engine:  "conv",
		Width:   256,
		Height:  256,
		Scale:   3,
		TPS:     10,
		Seed:    42,
		Density: 0.2,
		Rule: RuleConfig{
			Survival: "2,3",
			Birth:    "3",
			MaxState: 1,
			Neighbor: "moore",
		},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Engine, "engine", c.Engine, "stepping engine: "+strings.Join(core.EngineNames(), ", "))
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial field")
	fs.Float64Var(&c.Density, "density", c.Density, "probability that an initial cell is alive")
	fs.StringVar(&c.Rule.Survival, "survival", c.Rule.Survival, "neighbor counts that keep a cell alive")
	fs.StringVar(&c.Rule.Birth, "birth", c.Rule.Birth, "neighbor counts that revive a dead cell")
	fs.IntVar(&c.Rule.MaxState, "maxstate", c.Rule.MaxState, "alive state value; higher values add decay steps")
	fs.StringVar(&c.Rule.Neighbor, "neighbor", c.Rule.Neighbor, "neighbor mode: moore or vonneumann")
}

// LoadFile overlays values from a YAML config file onto the receiver.
func (c *Config) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// ParseFlags binds the config to fs along with a -config option, parses
// args, and resolves precedence: defaults, then the YAML file, then
// explicitly set flags.
func ParseFlags(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	cfg.Bind(fs)
	confPath := fs.String("config", "", "YAML config file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *confPath == "" {
		return cfg, nil
	}

	merged := NewConfig()
	if err := merged.LoadFile(*confPath); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "engine":
			merged.Engine = cfg.Engine
		case "width":
			merged.Width = cfg.Width
		case "height":
			merged.Height = cfg.Height
		case "scale":
			merged.Scale = cfg.Scale
		case "tps":
			merged.TPS = cfg.TPS
		case "seed":
			merged.Seed = cfg.Seed
		case "density":
			merged.Density = cfg.Density
		case "survival":
			merged.Rule.Survival = cfg.Rule.Survival
		case "birth":
			merged.Rule.Birth = cfg.Rule.Birth
		case "maxstate":
			merged.Rule.MaxState = cfg.Rule.MaxState
		case "neighbor":
			merged.Rule.Neighbor = cfg.Rule.Neighbor
		}
	})
	return merged, nil
}

// BuildRule validates the rule section and returns the core rule.
func (c *Config) BuildRule() (core.Rule, error) {
	survival, err := core.ParseCounts(c.Rule.Survival)
	if err != nil {
		return core.Rule{}, fmt.Errorf("survival: %w", err)
	}
	birth, err := core.ParseCounts(c.Rule.Birth)
	if err != nil {
		return core.Rule{}, fmt.Errorf("birth: %w", err)
	}
	mode, err := core.ParseNeighborMode(c.Rule.Neighbor)
	if err != nil {
		return core.Rule{}, err
	}
	if c.Rule.MaxState < 1 || c.Rule.MaxState > 255 {
		return core.Rule{}, fmt.Errorf("%w: max_state %d outside [1,255]", core.ErrInvalidRule, c.Rule.MaxState)
	}
	return core.NewRule(survival, birth, uint8(c.Rule.MaxState), mode)
}

// NewEngine builds the configured engine seeded with the configured
// Bernoulli field.
func (c *Config) NewEngine() (core.Engine, error) {
	rule, err := c.BuildRule()
	if err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(c.Width, c.Height)
	if err != nil {
		return nil, err
	}
	factory, ok := core.Engines()[c.Engine]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q, have: %s", c.Engine, strings.Join(core.EngineNames(), ", "))
	}
	engine, err := factory(grid, rule, c.Density)
	if err != nil {
		return nil, err
	}
	engine.Reset(c.Seed)
	return engine, nil
}
