// Package solve runs the full simulation over a puzzle input: every
// non-blank line is parsed into a rotation and applied to the dial, with
// the pointer position threaded across rotations.
package solve

import (
	"strings"

	"github.com/DmarshalTU/safecracker/pkg/dial"
	"github.com/DmarshalTU/safecracker/pkg/logging"
	"github.com/DmarshalTU/safecracker/pkg/parse"
)

// Result summarizes one run over an input blob.
type Result struct {
	// Password is the total number of clicks that landed on position 0.
	Password int

	// Rotations is the number of lines that parsed and were applied.
	Rotations int

	// Skipped is the number of malformed lines that were warned about.
	Skipped int

	// FinalPosition is where the pointer ended up.
	FinalPosition int
}

// Run simulates input from the dial's starting position and accumulates
// zero-crossings. Malformed lines are logged at warn level and skipped;
// they never abort the run or disturb the accumulated state. An input with
// no valid lines is a successful run with password 0.
func Run(input string) Result {
	logger := logging.GetLogger("solve")

	pos := dial.Start
	var res Result

	for _, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		rot, err := parse.Rotation(line)
		if err != nil {
			logger.Warn().Str("line", line).Err(err).Msg("Skipping invalid rotation")
			res.Skipped++
			continue
		}

		var hits int
		pos, hits = dial.Step(pos, rot)
		res.Rotations++
		res.Password += hits

		logger.Debug().
			Stringer("rotation", rot).
			Int("position", pos).
			Int("zeroHits", hits).
			Msg("Rotation applied")
	}

	res.FinalPosition = pos
	return res
}
