// Package codec implements the binary file format demand vectors persist in.
//
// A file is a fixed magic and format version followed by a zstd frame
// containing the vector's identity (zoning name, segmentation name, time
// format, zone IDs) and its segment data. Segment keys are written in sorted
// order, so encoding the same vector twice produces identical bytes. The
// zstd frame carries its own content checksum; corruption surfaces as a
// decode error rather than silently wrong values.
//
// The codec stores oracle names, not oracle definitions. Loading a file
// needs a resolver that can supply the named zoning and segmentation, and
// the stored zone IDs let the loader verify the resolved zoning still
// matches the one the file was written with.
package codec
