package world

// BlockSpec describes one block entry in a stack configuration: either a
// bare letter (defaults for everything else) or a fully specified record.
type BlockSpec struct {
	Name   rune
	XSize  int
	YSize  int
	Weight *float64
	Type   string
}

// StackConfig is bottom-to-top per stack, one outer entry per stack.
type StackConfig [][]BlockSpec

// Palette is the 26-entry colour palette blocks are assigned from (the world
// builder shuffles a copy first), without repetition where the block count
// allows it.
var Palette = []string{
	"red", "blue", "green", "yellow", "orange", "purple", "cyan", "magenta",
	"lime", "pink", "teal", "lavender", "brown", "beige", "maroon", "mint",
	"olive", "coral", "navy", "grey", "white", "black", "gold", "silver",
	"indigo", "violet",
}
