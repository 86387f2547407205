package zoning

import (
	"fmt"
	"slices"
	"sync"

	"github.com/tdmkit/dvec/types"
)

// Static implements types.Zoning with a fixed zone list and registered
// translations.
type Static struct {
	name string
	ids  []string
	idx  map[string]int

	mu           sync.RWMutex
	translations map[translationKey]types.TranslationMatrix
}

type translationKey struct {
	target    string
	weighting string
}

var _ types.Zoning = (*Static)(nil)

// NewStatic creates a zoning from an ordered list of zone IDs.
//
// Parameters:
//   - name: Unique zoning name
//   - zoneIDs: Ordered zone IDs, unique and non-empty
//
// Returns:
//   - *Static: Initialized zoning
//   - error: Description of the first definition problem found
//
// Example:
//
//	z, err := zoning.NewStatic("msoa", []string{"E02000001", "E02000002"})
//	if err != nil { /* handle */ }
func NewStatic(name string, zoneIDs []string) (*Static, error) {
	if name == "" {
		return nil, fmt.Errorf("zoning name is required")
	}
	if len(zoneIDs) == 0 {
		return nil, fmt.Errorf("zoning %q has no zones", name)
	}

	idx := make(map[string]int, len(zoneIDs))
	for i, id := range zoneIDs {
		if id == "" {
			return nil, fmt.Errorf("zoning %q: zone %d has an empty ID", name, i)
		}
		if _, dup := idx[id]; dup {
			return nil, fmt.Errorf("zoning %q: zone ID %q repeated", name, id)
		}
		idx[id] = i
	}

	return &Static{
		name:         name,
		ids:          slices.Clone(zoneIDs),
		idx:          idx,
		translations: make(map[translationKey]types.TranslationMatrix),
	}, nil
}

// Name returns the zoning's unique name.
func (z *Static) Name() string {
	return z.name
}

// ZoneCount returns the number of zones.
func (z *Static) ZoneCount() int {
	return len(z.ids)
}

// ZoneIDs returns the ordered zone IDs.
func (z *Static) ZoneIDs() []string {
	return slices.Clone(z.ids)
}

// ZoneIndex returns the position of a zone ID in ZoneIDs order.
//
// Returns:
//   - int: The zone's index
//   - error: ErrUnknownZones if the ID is not part of this zoning
func (z *Static) ZoneIndex(id string) (int, error) {
	i, ok := z.idx[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q not in zoning %q", types.ErrUnknownZones, id, z.name)
	}

	return i, nil
}

// AddTranslation registers a prebuilt translation matrix into target under
// the given weighting name.
//
// Parameters:
//   - target: Name of the zoning the matrix translates into
//   - weighting: Correspondence weighting the matrix was built from
//   - matrix: Row-per-source-zone weight matrix
//
// Returns:
//   - error: ErrBadTranslation if the matrix shape does not fit this zoning
func (z *Static) AddTranslation(target, weighting string, matrix types.TranslationMatrix) error {
	if err := matrix.Validate(); err != nil {
		return err
	}
	if matrix.FromZones != len(z.ids) {
		return fmt.Errorf("%w: matrix has %d source zones, zoning %q has %d",
			types.ErrBadTranslation, matrix.FromZones, z.name, len(z.ids))
	}

	z.mu.Lock()
	defer z.mu.Unlock()
	z.translations[translationKey{target: target, weighting: weighting}] = matrix

	return nil
}

// AddCorrespondence builds a translation matrix from long-format
// correspondence rows and registers it, so callers do not have to assemble
// dense matrices by hand.
//
// Parameters:
//   - target: The zoning the correspondence translates into
//   - weighting: Correspondence weighting name
//   - rows: One weighted source-to-target link per row
//
// Returns:
//   - error: ErrUnknownZones for rows naming zones outside either zoning
func (z *Static) AddCorrespondence(target *Static, weighting string, rows []Correspondence) error {
	matrix, err := BuildTranslation(z, target, rows)
	if err != nil {
		return err
	}

	return z.AddTranslation(target.Name(), weighting, matrix)
}

// Translate returns the registered translation matrix into target.
//
// Parameters:
//   - target: The zoning to translate into
//   - weighting: Correspondence weighting to select
//
// Returns:
//   - *types.TranslationMatrix: The registered matrix
//   - error: ErrBadTranslation when no matching translation is registered
func (z *Static) Translate(target types.Zoning, weighting string) (*types.TranslationMatrix, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: translation target is nil", types.ErrBadTranslation)
	}

	z.mu.RLock()
	defer z.mu.RUnlock()

	matrix, ok := z.translations[translationKey{target: target.Name(), weighting: weighting}]
	if !ok {
		return nil, fmt.Errorf(
			"%w: no %q translation registered from %q to %q",
			types.ErrBadTranslation, weighting, z.name, target.Name())
	}

	return &matrix, nil
}

// Correspondence is one weighted link of a zone correspondence table.
type Correspondence struct {
	// From is the source zone ID.
	From string

	// To is the target zone ID.
	To string

	// Weight is the share of the source zone's value the target receives.
	Weight float64
}

// BuildTranslation assembles a dense translation matrix from long-format
// correspondence rows.
//
// Parameters:
//   - from: Source zoning
//   - to: Target zoning
//   - rows: Weighted source-to-target links
//
// Returns:
//   - types.TranslationMatrix: Dense matrix in both zonings' ID order
//   - error: ErrUnknownZones for rows naming zones outside either zoning
func BuildTranslation(from, to *Static, rows []Correspondence) (types.TranslationMatrix, error) {
	weights := make([][]float64, from.ZoneCount())
	for i := range weights {
		weights[i] = make([]float64, to.ZoneCount())
	}

	for _, row := range rows {
		i, err := from.ZoneIndex(row.From)
		if err != nil {
			return types.TranslationMatrix{}, err
		}
		j, err := to.ZoneIndex(row.To)
		if err != nil {
			return types.TranslationMatrix{}, err
		}
		weights[i][j] += row.Weight
	}

	return types.TranslationMatrix{
		FromZones: from.ZoneCount(),
		ToZones:   to.ZoneCount(),
		Weights:   weights,
	}, nil
}
