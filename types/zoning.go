package types

import "fmt"

// Zoning is the zone system oracle consumed by the vector engine.
//
// A zoning system is an enumerable, ordered set of geographic zones with a
// stable identifier space. Zoned vectors hold one value per zone, indexed by
// the order of ZoneIDs.
//
// Implementations must be safe for concurrent use.
type Zoning interface {
	// Name returns the unique name of this zoning system.
	Name() string

	// ZoneCount returns the number of zones.
	ZoneCount() int

	// ZoneIDs returns the zone identifiers in their stable index order.
	ZoneIDs() []string

	// Translate produces the weighted correspondence for re-expressing values
	// on the target zoning under the named weighting scheme.
	//
	// Parameters:
	//   - target: The zoning to translate into
	//   - weighting: Weighting scheme name (implementation-defined, e.g.
	//     "population", "spatial")
	//
	// Returns:
	//   - *TranslationMatrix: FromZones == this ZoneCount, ToZones == target ZoneCount
	//   - error: ErrBadTranslation if no correspondence is known
	Translate(target Zoning, weighting string) (*TranslationMatrix, error)
}

// TranslationMatrix is a weighted zone-to-zone correspondence.
//
// Weights[i][j] is the fraction of source zone i's value attributable to
// target zone j. Rows need not sum to 1; weighting schemes vary and the
// engine never assumes row-stochastic input.
type TranslationMatrix struct {
	// FromZones is the source zone count (number of rows).
	FromZones int

	// ToZones is the target zone count (row length).
	ToZones int

	// Weights holds the correspondence fractions, FromZones rows of ToZones
	// columns each.
	Weights [][]float64
}

// Validate checks the matrix dimensions against the declared shape.
//
// Returns:
//   - error: ErrBadTranslation describing the shape mismatch, or nil
func (m *TranslationMatrix) Validate() error {
	if m.FromZones <= 0 || m.ToZones <= 0 {
		return fmt.Errorf("%w: non-positive shape (%d, %d)", ErrBadTranslation, m.FromZones, m.ToZones)
	}
	if len(m.Weights) != m.FromZones {
		return fmt.Errorf("%w: %d rows, want %d", ErrBadTranslation, len(m.Weights), m.FromZones)
	}
	for i, row := range m.Weights {
		if len(row) != m.ToZones {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadTranslation, i, len(row), m.ToZones)
		}
	}

	return nil
}
