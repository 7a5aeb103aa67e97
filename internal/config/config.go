// Package config layers flags, environment variables and an optional YAML
// file into one Config, the way niceyeti-tabular's reinforcement package
// drives viper off a yaml file and the teacher's robot_cli drives cobra off
// pflag-bound flags. A single viper instance binds the same flag set the
// root cobra command defines, so --addr, BLOCKSWORLD_ADDR and a config.yaml
// "addr" key all resolve to the same value.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the fully resolved set of knobs the simulation loop and the HTTP
// server need at startup. ScreenWidth and ScreenMargin are resolved here but
// not passed to the world builder, which lays stacks out with its own
// builder.ScreenWidth and builder.ScreenMargin constants.
type Config struct {
	Addr                 string
	TickRate             time.Duration
	ScenarioDir          string
	DefaultConstraintSet string
	ScreenWidth          int
	ScreenMargin         int
	ConfigFile           string
}

const (
	defaultAddr     = "127.0.0.1:5001"
	defaultTickHz   = 60
	defaultScenDir  = "scenarios"
	defaultSet      = "base"
	defaultWidth    = 800
	defaultMargin   = 40
	envPrefix       = "blocksworld"
)

// RegisterFlags adds the layered config's flags to a flag set (the root
// cobra command's persistent flags, typically), so cobra's own --help
// output documents them.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("addr", defaultAddr, "HTTP listen address")
	flags.Int("tick-hz", defaultTickHz, "simulation ticks per second")
	flags.String("scenario-dir", defaultScenDir, "directory of scenario YAML files")
	flags.String("constraint-set", defaultSet, "default active constraint set")
	flags.Int("screen-width", defaultWidth, "layout width (recorded in Config; not read by the stack layout)")
	flags.Int("screen-margin", defaultMargin, "layout margin (recorded in Config; not read by the stack layout)")
	flags.String("config", "", "optional config.yaml path")
}

// Load binds flags into viper, layers in BLOCKSWORLD_* environment
// variables and an optional YAML file, and returns the resolved Config.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("config: bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	return &Config{
		Addr:                 v.GetString("addr"),
		TickRate:             time.Second / time.Duration(v.GetInt("tick-hz")),
		ScenarioDir:          v.GetString("scenario-dir"),
		DefaultConstraintSet: v.GetString("constraint-set"),
		ScreenWidth:          v.GetInt("screen-width"),
		ScreenMargin:         v.GetInt("screen-margin"),
		ConfigFile:           v.GetString("config"),
	}, nil
}
