// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates that a size parameter (n, rows, cols, number of
// polyline points) is below the minimum of the requested constructor.
// Usage: if errors.Is(err, ErrTooFewPoints) { /* report invalid size */ }.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that Build could not run a constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a sentinel with the constructor name and detail,
// keeping the sentinel reachable through errors.Is.
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
