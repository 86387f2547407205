// Package testing provides test utilities for the dvec library.
//
// This package offers small, fully wired oracle fixtures (segmentations,
// zonings and their translations) so vector tests do not have to assemble
// dimension tables by hand. It follows Go's convention of providing testing
// utilities in a dedicated package (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: Logger that writes through testing.T
//   - ZoningThree / ZoningTwo: Tiny zonings with a registered translation
//   - SegP, SegM, SegPM, SegPMTP and friends: Tiny segmentations
//
// Example usage:
//
//	import (
//	    "testing"
//	    dvectest "github.com/tdmkit/dvec/testing"
//	)
//
//	func TestMyOperator(t *testing.T) {
//	    seg := dvectest.SegPM(t)
//	    z := dvectest.ZoningThree(t)
//	    // Build vectors on seg and z
//	}
package testing
