package melee

// Vector is a 2D position or velocity in stage units.
type Vector struct {
	X float32
	Y float32
}

// Direction is the way a character faces.
type Direction int8

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	if d == Left {
		return "Left"
	}
	return "Right"
}

// Port selects one of the two competitors in a singles match.
type Port uint8

const (
	PortLow Port = iota
	PortHigh
)

func (p Port) String() string {
	if p == PortLow {
		return "low"
	}
	return "high"
}

// Frame is one simulation-tick snapshot of a single competitor, decoded from
// a replay's post-frame updates. Frames are produced once per match and are
// read-only to everything downstream.
type Frame struct {
	Character   Character
	PortIdx     uint8
	Direction   Direction
	Velocity    Vector
	HitVelocity Vector
	Position    Vector
	State       ActionState
	AnimFrame   float32
}
