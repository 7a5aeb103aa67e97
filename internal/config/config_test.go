package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	return flags
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newFlags())
	require.NoError(t, err)

	assert.Equal(t, defaultAddr, cfg.Addr)
	assert.Equal(t, time.Second/defaultTickHz, cfg.TickRate)
	assert.Equal(t, defaultScenDir, cfg.ScenarioDir)
	assert.Equal(t, defaultSet, cfg.DefaultConstraintSet)
}

func TestLoadFlagOverridesDefault(t *testing.T) {
	flags := newFlags()
	require.NoError(t, flags.Set("addr", "0.0.0.0:9001"))
	require.NoError(t, flags.Set("tick-hz", "10"))

	cfg, err := Load(flags)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9001", cfg.Addr)
	assert.Equal(t, 100*time.Millisecond, cfg.TickRate)
}

func TestLoadEnvOverridesFlagDefault(t *testing.T) {
	t.Setenv("BLOCKSWORLD_CONSTRAINT_SET", "hanoi_towers")

	cfg, err := Load(newFlags())
	require.NoError(t, err)

	assert.Equal(t, "hanoi_towers", cfg.DefaultConstraintSet)
}
