package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blocksworld/internal/world"
)

func TestBuildRandomDefaultCounts(t *testing.T) {
	stacks := Build(nil)
	assert.Len(t, stacks, DefaultNStacks)

	names := make(map[rune]bool)
	total := 0
	for _, s := range stacks {
		for _, b := range s.Blocks() {
			names[b.Name] = true
			total++
		}
	}
	assert.Equal(t, DefaultNBlocks, total)
	assert.Len(t, names, DefaultNBlocks)
}

func TestBuildFromConfig(t *testing.T) {
	cfg := world.StackConfig{
		{{Name: 'A', XSize: 1, YSize: 1}, {Name: 'B', XSize: 1, YSize: 1}},
		{},
		{{Name: 'C', XSize: 2, YSize: 1}},
	}
	stacks := Build(&cfg)
	require.Len(t, stacks, 3)

	assert.Equal(t, 2, stacks[0].Len())
	assert.Equal(t, 'A', stacks[0].Blocks()[0].Name)
	assert.Equal(t, 'B', stacks[0].Blocks()[1].Name)
	assert.Equal(t, 0, stacks[1].Len())
	assert.Equal(t, 1, stacks[2].Len())

	// Blocks must be positioned by stack X and cumulative height.
	assert.Equal(t, stacks[0].X, stacks[0].Blocks()[0].X)
	assert.Equal(t, 1, stacks[0].Blocks()[1].Y)
}

func TestStackXCoordsEvenlySpaced(t *testing.T) {
	xs := stackXCoords(4)
	require.Len(t, xs, 4)
	for i := 1; i < len(xs); i++ {
		assert.Greater(t, xs[i], xs[i-1])
	}
	assert.Equal(t, ScreenMargin, xs[0])
}
