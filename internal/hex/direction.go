package hex

// Direction is one of the six unit steps on the hex grid.
type Direction uint8

// The order matters: rings walk the directions in this sequence and
// neighbor enumeration follows it.
const (
	Right Direction = iota
	UpRight
	UpLeft
	Left
	DownLeft
	DownRight
)

// Directions lists all six directions in rotational order.
var Directions = [6]Direction{Right, UpRight, UpLeft, Left, DownLeft, DownRight}

// directionOffsets defines the six neighbor offsets in axial coordinates.
var directionOffsets = [6][2]int8{
	{1, 0},
	{1, -1},
	{0, -1},
	{-1, 0},
	{-1, 1},
	{0, 1},
}

// Vector returns the unit offset of d.
func Vector[T Number](d Direction) Position[T] {
	o := directionOffsets[d%6]
	return Position[T]{Q: T(o[0]), R: T(o[1])}
}

// Next returns the direction that follows d in rotational order.
// DownRight wraps around to Right.
func (d Direction) Next() Direction {
	return (d + 1) % 6
}

// String returns a human-readable name for a direction.
func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case UpRight:
		return "UpRight"
	case UpLeft:
		return "UpLeft"
	case Left:
		return "Left"
	case DownLeft:
		return "DownLeft"
	case DownRight:
		return "DownRight"
	default:
		return "Unknown"
	}
}

// Neighbors returns the six positions adjacent to p, one per direction,
// in the order of Directions. Layer membership plays no part.
func Neighbors[T Number](p Position[T]) [6]Position[T] {
	var result [6]Position[T]
	for i, d := range Directions {
		result[i] = p.Add(Vector[T](d))
	}
	return result
}

// Step returns the position one step from p in direction d.
func (p Position[T]) Step(d Direction) Position[T] {
	return p.Add(Vector[T](d))
}
