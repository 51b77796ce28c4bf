package world

var (
	// Overworld is the Dimension implementation of a normal overworld. It has
	// a building range of [0, 256] and a sea level at Y=62.
	Overworld overworld
	// Nether is a Dimension implementation with a lava ocean at its floor and
	// a building range of [0, 128].
	Nether nether
	// End is a Dimension implementation with floating islands and no liquid
	// ocean. It has a building range of [0, 128].
	End end
)

// Range represents the height range of a Dimension in blocks. The first value
// of the Range holds the minimum Y value, the second value holds the maximum Y
// value.
type Range [2]int

// Min returns the minimum Y value of a Range. It is equivalent to Range[0].
func (r Range) Min() int {
	return r[0]
}

// Max returns the maximum Y value of a Range. It is equivalent to Range[1].
func (r Range) Max() int {
	return r[1]
}

// Height returns the total height of the Range, the difference between Max
// and Min.
func (r Range) Height() int {
	return r[1] - r[0]
}

type (
	// Dimension is a dimension of a World. It influences the building range,
	// the sea level and which biomes are eligible for selection during
	// terrain synthesis.
	Dimension interface {
		// Range returns the lowest and highest valid Y coordinates of the
		// dimension.
		Range() Range
		// EncodeDimension encodes the dimension to a stable integer tag.
		EncodeDimension() int
		// WaterLevel returns the Y coordinate up to which empty terrain is
		// flooded. Dimensions without an ocean return their minimum Y.
		WaterLevel() int
	}
	overworld struct{}
	nether    struct{}
	end       struct{}
)

func (overworld) Range() Range         { return Range{0, 256} }
func (overworld) EncodeDimension() int { return 0 }
func (overworld) WaterLevel() int      { return 62 }
func (overworld) String() string       { return "Overworld" }

func (nether) Range() Range         { return Range{0, 128} }
func (nether) EncodeDimension() int { return 1 }
func (nether) WaterLevel() int      { return 32 }
func (nether) String() string       { return "Nether" }

func (end) Range() Range         { return Range{0, 128} }
func (end) EncodeDimension() int { return 2 }
func (end) WaterLevel() int      { return 0 }
func (end) String() string       { return "End" }
