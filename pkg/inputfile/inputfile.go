// Package inputfile is the boundary collaborator that loads the puzzle
// input. The solver itself never touches the filesystem; it consumes the
// blob returned from here.
package inputfile

import (
	"os"

	"github.com/DmarshalTU/safecracker/pkg/errors"
	"github.com/DmarshalTU/safecracker/pkg/logging"
)

// DefaultName is the input file the solver looks for when no path is given,
// resolved relative to the working directory.
const DefaultName = "input.txt"

// Read loads path in a single blocking read and classifies failures into
// FILE_NOT_FOUND, FILE_PERMISSION or FILE_READ coded errors. The first two
// carry a "hint" detail for the user-facing diagnostic.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return "", errors.Wrapf(err, errors.ErrFileNotFound,
				"file %q not found", path).
				WithDetail("hint", "Make sure you're running from the correct directory")
		case os.IsPermission(err):
			return "", errors.Wrapf(err, errors.ErrFilePermission,
				"permission denied reading %q", path).
				WithDetail("hint", "Check file permissions")
		default:
			return "", errors.Wrapf(err, errors.ErrFileRead, "reading %q", path)
		}
	}

	logger := logging.GetLogger("inputfile")
	logger.Debug().
		Str("path", path).
		Int("bytes", len(data)).
		Msg("Input loaded")

	return string(data), nil
}
