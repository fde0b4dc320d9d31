// Package wrap decides which item orientations are geometrically legal
// under the edge-banding machine's size limits. Banding a top or bottom
// edge (perpendicular to the board length) needs a piece of at least
// 150x150 mm; banding only left/right edges needs at least 300x65 mm.
package wrap

import (
	"fmt"
	"strings"

	"github.com/piwi3910/cutplan/internal/model"
)

// Minimum oriented dimensions accepted by the banding machine, in mm.
const (
	PerpendicularMinLength = 150.0
	PerpendicularMinWidth  = 150.0
	ParallelMinLength      = 300.0
	ParallelMinWidth       = 65.0
)

// OrientationAllowed evaluates one oriented layout (length vertical,
// width horizontal) against the banding rules. The returned reason is
// empty when the orientation is allowed. Perpendicular banding takes
// precedence when both kinds are present.
func OrientationAllowed(length, width float64, edges model.WrapEdges) (bool, string) {
	parallel := edges.ParallelCount() > 0
	perpendicular := edges.PerpendicularCount() > 0

	if !parallel && !perpendicular {
		return true, ""
	}

	if perpendicular {
		if length >= PerpendicularMinLength && width >= PerpendicularMinWidth {
			return true, ""
		}
		return false, fmt.Sprintf("needs >=%.0fx%.0f mm for perpendicular wrap, has %.0fx%.0f mm",
			PerpendicularMinLength, PerpendicularMinWidth, length, width)
	}

	if length >= ParallelMinLength && width >= ParallelMinWidth {
		return true, ""
	}
	return false, fmt.Sprintf("needs >=%.0fx%.0f mm for parallel wrap, has %.0fx%.0f mm",
		ParallelMinLength, ParallelMinWidth, length, width)
}

// Candidates returns the legal orientations of an item in evaluation
// order: the nominal orientation first, the rotated one second when
// rotation is allowed. With enforce false every attempted orientation is
// legal regardless of banding. When no orientation passes, the returned
// reason names the failing rule; the nominal orientation's reason wins
// when both fail.
func Candidates(item model.ItemSpec, enforce bool) ([]model.Orientation, string) {
	var candidates []model.Orientation
	var failureReason string

	evaluate := func(length, width float64) (bool, string) {
		if !enforce {
			return true, ""
		}
		return OrientationAllowed(length, width, item.Wrap)
	}

	// Orientation A: nominal length vertical.
	if ok, reason := evaluate(item.Length, item.Width); ok {
		candidates = append(candidates, model.Orientation{Width: item.Width, Height: item.Length})
	} else {
		failureReason = reason
	}

	// Orientation B: dimensions swapped.
	if item.RotationAllowed {
		if ok, reason := evaluate(item.Width, item.Length); ok {
			candidates = append(candidates, model.Orientation{Width: item.Length, Height: item.Width, Rotated: true})
		} else if failureReason == "" {
			failureReason = reason
		}
	}

	if len(candidates) == 0 {
		if failureReason == "" {
			failureReason = "orientation invalid under wrap rules"
		}
		return nil, failureReason
	}
	return candidates, ""
}

// Validate checks that every item has at least one legal orientation
// under full enforcement. All offending items are reported in one error
// so the caller sees the complete list at once.
func Validate(items []model.ItemSpec) error {
	var problems []string
	for _, it := range items {
		if candidates, reason := Candidates(it, true); len(candidates) == 0 {
			problems = append(problems, fmt.Sprintf("- %s: %s", it.Name, reason))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("wrapping constraints violated for the following items:\n%s",
		strings.Join(problems, "\n"))
}
