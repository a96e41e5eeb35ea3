package core

// Axis selects a coordinate of a point or vector.
type Axis uint8

const (
	X Axis = iota
	Y
	Z
)

// Axes lists every axis in index order.
var Axes = [3]Axis{X, Y, Z}

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return "invalid"
}
