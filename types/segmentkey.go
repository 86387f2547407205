package types

import "strings"

// SegmentKeySeparator joins per-dimension values into a composite segment key.
//
// A segmentation over dimensions (purpose, mode, tp) identifies the segment
// purpose=1, mode=3, tp=2 by the key "1_3_2".
const SegmentKeySeparator = "_"

// JoinSegmentKey builds the canonical composite segment key from one value
// per dimension, in the segmentation's dimension order.
//
// Returns:
//   - string: Separator-joined value sequence ("" if no values)
func JoinSegmentKey(values []string) string {
	if len(values) == 0 {
		return ""
	}

	return strings.Join(values, SegmentKeySeparator)
}

// SplitSegmentKey splits a composite segment key back into its per-dimension
// values. It is the inverse of JoinSegmentKey only when no dimension value
// itself contains the separator; segmentation implementations must reject
// such values at definition time.
//
// Returns:
//   - []string: The per-dimension values (nil if key is empty)
func SplitSegmentKey(key string) []string {
	if key == "" {
		return nil
	}

	return strings.Split(key, SegmentKeySeparator)
}
