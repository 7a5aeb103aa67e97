package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScenarioYAML = `
id: three_on_ground
name: three-on-ground
description: Three blocks, each alone on its own stack.
constraint_set: base
initial_state:
  - ["A"]
  - ["B"]
  - ["C"]
goal:
  - ["A", "B", "C"]
  - []
  - []
`

func TestLoadDirDecodesScenarioYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "three.yaml"), []byte(sampleScenarioYAML), 0o644))

	scenarios, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)

	s := scenarios[0]
	assert.Equal(t, "three_on_ground", s.ID)
	assert.Equal(t, "base", s.ConstraintSetName)
	require.NotNil(t, s.InitialState)
	require.Len(t, *s.InitialState, 3)
	assert.Equal(t, 'A', (*s.InitialState)[0][0].Name)
}

func TestLoadDirRejectsMissingID(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: no-id\n"), 0o644))

	_, err := LoadDir(dir)
	assert.Error(t, err)
}
