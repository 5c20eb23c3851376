// Package dial models the vault's combination dial: a circular counter
// with 100 discrete positions (0-99) turned one click at a time.
package dial

import "fmt"

const (
	// Size is the number of positions on the dial.
	Size = 100

	// Start is the position the pointer rests at before any rotation.
	Start = 50

	// Target is the position whose crossings make up the password.
	Target = 0
)

// Direction indicates which way the dial is turned.
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns the single-letter input form of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Rotation is a single parsed command: turn the dial Magnitude unit clicks
// in Direction. A magnitude <= 0 turns the dial zero clicks.
type Rotation struct {
	Direction Direction
	Magnitude int
}

// String renders the rotation back in its input form, e.g. "R50".
func (r Rotation) String() string {
	return fmt.Sprintf("%s%d", r.Direction, r.Magnitude)
}

// Step applies r to pos one click at a time and returns the final position
// together with the number of clicks that landed exactly on Target.
// pos must be in [0, Size); the returned position always is, kept there by
// modular arithmetic alone.
func Step(pos int, r Rotation) (newPos, zeroHits int) {
	for i := 0; i < r.Magnitude; i++ {
		switch r.Direction {
		case Right:
			pos = (pos + 1) % Size
		case Left:
			pos = (pos - 1 + Size) % Size
		default:
			return pos, zeroHits
		}

		if pos == Target {
			zeroHits++
		}
	}

	return pos, zeroHits
}
