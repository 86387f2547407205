package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslationMatrixValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a well-formed matrix", func(t *testing.T) {
		m := &TranslationMatrix{
			FromZones: 3,
			ToZones:   2,
			Weights: [][]float64{
				{1, 0},
				{0.5, 0.5},
				{0, 1},
			},
		}
		require.NoError(t, m.Validate())
	})

	t.Run("rejects non-positive shapes", func(t *testing.T) {
		m := &TranslationMatrix{FromZones: 0, ToZones: 2}
		require.ErrorIs(t, m.Validate(), ErrBadTranslation)

		m = &TranslationMatrix{FromZones: 2, ToZones: -1}
		require.ErrorIs(t, m.Validate(), ErrBadTranslation)
	})

	t.Run("rejects a row count mismatch", func(t *testing.T) {
		m := &TranslationMatrix{
			FromZones: 3,
			ToZones:   2,
			Weights:   [][]float64{{1, 0}, {0, 1}},
		}
		require.ErrorIs(t, m.Validate(), ErrBadTranslation)
	})

	t.Run("rejects a ragged row", func(t *testing.T) {
		m := &TranslationMatrix{
			FromZones: 2,
			ToZones:   2,
			Weights:   [][]float64{{1, 0}, {1}},
		}
		err := m.Validate()
		require.ErrorIs(t, err, ErrBadTranslation)
		require.Contains(t, err.Error(), "row 1")
	})
}
