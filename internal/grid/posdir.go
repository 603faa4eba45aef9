package grid

// Position represents a cell on the unbounded grid.
type Position struct {
	X, Y int
}

// Origin is the cell every agent starts from.
var Origin = Position{}

// Add returns the neighbouring position one step away in direction d.
// Coordinates are plain ints, overflow is not guarded.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction represents movement direction.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists all valid directions.
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

// Delta returns the unit displacement for d. North grows Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

// Symbol returns the instruction character for d.
func (d Direction) Symbol() rune {
	switch d {
	case North:
		return '^'
	case South:
		return 'v'
	case East:
		return '>'
	case West:
		return '<'
	}
	return '?'
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return "Unknown"
}
