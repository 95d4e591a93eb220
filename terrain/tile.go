package terrain

import (
	"math"

	reMath "hexisland/math"
)

// MaterialClass is the terrain bucket a tile is assigned to by height.
type MaterialClass int

const (
	Stone MaterialClass = iota
	Dirt
	Grass
	Sand
	Water
)

// Classes lists every material class from highest to lowest.
var Classes = []MaterialClass{Stone, Dirt, Grass, Sand, Water}

func (c MaterialClass) String() string {
	switch c {
	case Stone:
		return "stone"
	case Dirt:
		return "dirt"
	case Grass:
		return "grass"
	case Sand:
		return "sand"
	case Water:
		return "water"
	}
	return "unknown"
}

// Height thresholds as fractions of the maximum height, checked high to low.
const (
	StoneThreshold = 0.9
	DirtThreshold  = 0.7
	GrassThreshold = 0.4
	SandThreshold  = 0.2
)

// Classify returns the class for a tile of the given height. A height equal
// to a threshold falls into the class below it.
func Classify(height, maxHeight float64) MaterialClass {
	switch {
	case height > maxHeight*StoneThreshold:
		return Stone
	case height > maxHeight*DirtThreshold:
		return Dirt
	case height > maxHeight*GrassThreshold:
		return Grass
	case height > maxHeight*SandThreshold:
		return Sand
	default:
		return Water
	}
}

// Decoration is the optional prop attached to a tile.
type Decoration int

const (
	DecorationNone Decoration = iota
	DecorationRock
	DecorationTree
)

func (d Decoration) String() string {
	switch d {
	case DecorationRock:
		return "rock"
	case DecorationTree:
		return "tree"
	}
	return "none"
}

// Tile is one generated hex cell.
type Tile struct {
	I, J       int
	Position   reMath.Vec2 // world X, Z of the column centre
	Height     float64
	Class      MaterialClass
	Decoration Decoration
}

// Hex layout spacing. Odd rows shift half a column, giving a brick layout.
const (
	ColumnSpacing = 1.77
	RowSpacing    = 1.535
)

// tilePosition is TileToPosition in float64. The row parity keeps the sign
// of j, so odd negative rows shift left.
func tilePosition(i, j int) (x, y float64) {
	x = (float64(i) + float64(j%2)*0.5) * ColumnSpacing
	y = float64(j) * RowSpacing
	return x, y
}

// TileToPosition projects grid coordinates to the world XZ plane.
func TileToPosition(i, j int) reMath.Vec2 {
	x, y := tilePosition(i, j)
	return reMath.Vec2{X: float32(x), Y: float32(y)}
}

// InWorld reports whether cell (i, j) lies within worldRadius of the origin.
func InWorld(i, j int, worldRadius float64) bool {
	x, y := tilePosition(i, j)
	return math.Sqrt(x*x+y*y) <= worldRadius
}
