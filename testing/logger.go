package testing

import (
	"testing"

	"github.com/tdmkit/dvec/internal/logger"
	"github.com/tdmkit/dvec/types"
)

// NewTestLogger returns a logger that writes through t, so engine output
// from a vector under test lands in the test log.
//
// Example:
//
//	v, err := dvec.New(zones, seg, data,
//	    dvec.WithLogger(dvectest.NewTestLogger(t)))
func NewTestLogger(t *testing.T) types.Logger {
	return logger.NewTest(t)
}
