package hex

// Direction indexes one of the six neighbor offsets.
type Direction int

// The six directions, laid out so that d and (d+3)%6 are opposite and
// Rotation(1) maps d onto d+1. Names assume R grows downwards.
const (
	East Direction = iota
	SouthEast
	SouthWest
	West
	NorthWest
	NorthEast
	DirectionCount // sentinel
)

var offsets = [DirectionCount]Coord{
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
	{Q: -1, R: 0},
	{Q: 0, R: -1},
	{Q: 1, R: -1},
}

var directionNames = [DirectionCount]string{"E", "SE", "SW", "W", "NW", "NE"}

// Directions returns all six directions in canonical order.
func Directions() [DirectionCount]Direction {
	return [DirectionCount]Direction{East, SouthEast, SouthWest, West, NorthWest, NorthEast}
}

// Offset returns the unit axial vector of d.
func (d Direction) Offset() Coord {
	return offsets[d]
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 3) % DirectionCount
}

// Rotate returns d turned by k sixth-turns.
func (d Direction) Rotate(k int) Direction {
	return Direction(((int(d)+k)%int(DirectionCount) + int(DirectionCount)) % int(DirectionCount))
}

// DirectionOf reports which direction the unit vector v points to.
func DirectionOf(v Coord) (Direction, bool) {
	for d, o := range offsets {
		if o == v {
			return Direction(d), true
		}
	}
	return 0, false
}

func (d Direction) String() string {
	if d < 0 || d >= DirectionCount {
		return "Direction(?)"
	}
	return directionNames[d]
}
