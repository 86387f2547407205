// Package segment provides a table-driven implementation of the
// segmentation oracle.
//
// A Static segmentation is defined by an ordered list of named dimensions,
// each with a fixed value set; its segment keys are the cross product of
// those values. Combination rules (multiply, aggregate, split, expand,
// subset) are derived structurally from the dimension sets, so two Static
// segmentations can always answer how they combine without any external
// definition table.
//
// Static segmentations are immutable after construction and safe for
// concurrent use.
package segment
