// Package parse turns raw input lines into dial rotations.
package parse

import (
	"strconv"

	"github.com/DmarshalTU/safecracker/pkg/dial"
	"github.com/DmarshalTU/safecracker/pkg/errors"
)

// Rotation parses one input line of the form <D><N>, where D is 'L' or 'R'
// (case-sensitive) and N is a base-10 integer, e.g. "R3" or "L120".
//
// The caller is expected to trim whitespace and filter blank lines before
// calling; Rotation validates only the command itself. Failures are coded
// errors (TOO_SHORT, INVALID_DIRECTION, INVALID_MAGNITUDE) carrying the
// offending line in their details.
func Rotation(line string) (dial.Rotation, error) {
	if len(line) < 2 {
		return dial.Rotation{}, errors.Newf(errors.ErrTooShort,
			"line too short: %q", line).WithDetail("line", line)
	}

	var dir dial.Direction
	switch line[0] {
	case 'L':
		dir = dial.Left
	case 'R':
		dir = dial.Right
	default:
		return dial.Rotation{}, errors.Newf(errors.ErrInvalidDirection,
			"invalid direction in %q", line).WithDetail("line", line)
	}

	// The magnitude keeps whatever sign the text encodes; the dial turns
	// zero clicks for anything <= 0.
	magnitude, err := strconv.Atoi(line[1:])
	if err != nil {
		return dial.Rotation{}, errors.Wrapf(err, errors.ErrInvalidMagnitude,
			"invalid number in %q", line).WithDetail("line", line)
	}

	return dial.Rotation{Direction: dir, Magnitude: magnitude}, nil
}
