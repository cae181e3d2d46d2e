package mcfs

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// separator matches a single comma or whitespace character. Values are split
// on the first two matches only, so "1, 2, 3" is rejected (the middle field
// is empty) while "1,2,3" and "1 2 3" parse.
var separator = regexp.MustCompile(`\s|,`)

func splitTriple(s string) ([]string, bool) {
	parts := separator.Split(strings.TrimSpace(s), 3)
	if len(parts) != 3 {
		return nil, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, true
}

// Position is an entity's location in a world.
type Position struct {
	X, Y, Z float64
}

// ParsePosition parses the "x,y,z" encoding used by position files.
func ParsePosition(s string) (Position, error) {
	parts, ok := splitTriple(s)
	if !ok {
		return Position{}, &ParseError{Kind: "position", Raw: s}
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Position{}, &ParseError{Kind: "position", Raw: s, Err: err}
		}
		v[i] = f
	}
	return Position{X: v[0], Y: v[1], Z: v[2]}, nil
}

// String returns the canonical comma separated form written to the tree.
func (p Position) String() string {
	return formatFloat(p.X) + "," + formatFloat(p.Y) + "," + formatFloat(p.Z)
}

// BlockPos truncates each axis toward zero.
func (p Position) BlockPos() BlockPos {
	return BlockPos{X: int(p.X), Y: int(p.Y), Z: int(p.Z)}
}

func (p Position) Vec() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// DistanceTo returns the euclidean distance between two positions.
func (p Position) DistanceTo(other Position) float64 {
	return other.Vec().Sub(p.Vec()).Len()
}

// BlockPos addresses a single block in a world.
type BlockPos struct {
	X, Y, Z int
}

// ParseBlockPos parses the "x,y,z" encoding used in block directory names.
func ParseBlockPos(s string) (BlockPos, error) {
	parts, ok := splitTriple(s)
	if !ok {
		return BlockPos{}, &ParseError{Kind: "blockpos", Raw: s}
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return BlockPos{}, &ParseError{Kind: "blockpos", Raw: s, Err: err}
		}
		v[i] = n
	}
	return BlockPos{X: v[0], Y: v[1], Z: v[2]}, nil
}

func (b BlockPos) String() string {
	return strconv.Itoa(b.X) + "," + strconv.Itoa(b.Y) + "," + strconv.Itoa(b.Z)
}

func (b BlockPos) Add(dx, dy, dz int) BlockPos {
	return BlockPos{X: b.X + dx, Y: b.Y + dy, Z: b.Z + dz}
}

// Position returns the block's minimum corner.
func (b BlockPos) Position() Position {
	return Position{X: float64(b.X), Y: float64(b.Y), Z: float64(b.Z)}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
