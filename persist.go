package dvec

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/tdmkit/dvec/codec"
	"github.com/tdmkit/dvec/types"
)

// payload assembles the vector's serialized form.
func (v *Vector) payload() *codec.Payload {
	p := &codec.Payload{
		ZoningName:       zoningName(v.zoning),
		SegmentationName: v.segmentation.Name(),
		Data:             v.data,
	}
	if v.zoning != nil {
		p.ZoneIDs = v.zoning.ZoneIDs()
	}
	if v.timeFormat.Valid() {
		p.TimeFormat = v.timeFormat.String()
	}

	return p
}

// Encode writes the vector to w in the dvec binary format.
//
// Parameters:
//   - w: Destination writer
//
// Returns:
//   - error: The encoder's or writer's error
func (v *Vector) Encode(w io.Writer) error {
	const operator = "encode"
	defer v.observeOperator(operator, time.Now())

	if err := codec.Encode(w, v.payload()); err != nil {
		return v.fail(operator, err)
	}

	return nil
}

// Save writes the vector to path in the dvec binary format, appending the
// canonical file suffix when absent.
//
// Parameters:
//   - path: Destination path, with or without the file suffix
//
// Returns:
//   - string: The path actually written
//   - error: The encoder's or filesystem's error
func (v *Vector) Save(path string) (string, error) {
	const operator = "save"
	defer v.observeOperator(operator, time.Now())

	path = codec.EnsureSuffix(path)
	if err := codec.EncodeFile(path, v.payload()); err != nil {
		return "", v.fail(operator, err)
	}

	v.logger.Info("saved vector",
		"path", path,
		"segmentation", v.segmentation.Name(),
		"zoning", zoningName(v.zoning),
		"segments", len(v.data),
	)

	return path, nil
}

// fromPayload resolves a decoded payload's oracle names and rebuilds the
// vector through the usual construction validation.
func fromPayload(payload *codec.Payload, resolver types.Resolver, opts []Option) (*Vector, error) {
	segmentation, err := resolver.ResolveSegmentation(payload.SegmentationName)
	if err != nil {
		return nil, err
	}

	var zoning types.Zoning
	if payload.ZoningName != "" {
		if zoning, err = resolver.ResolveZoning(payload.ZoningName); err != nil {
			return nil, err
		}
		if !slices.Equal(zoning.ZoneIDs(), payload.ZoneIDs) {
			return nil, fmt.Errorf(
				"%w: %q was saved with a different zone set than it resolves to now",
				types.ErrZoningMismatch, payload.ZoningName)
		}
	}

	if payload.TimeFormat != "" {
		format, err := types.ParseTimeFormat(payload.TimeFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithTimeFormat(format))
	}

	return New(zoning, segmentation, payload.Data, opts...)
}

// Decode reads a vector in the dvec binary format from r, resolving its
// zoning and segmentation by name through resolver.
//
// Parameters:
//   - r: Source reader positioned at the format header
//   - resolver: Supplies the named zoning and segmentation oracles
//   - opts: Optional configuration applied to the decoded vector
//
// Returns:
//   - *Vector: The decoded vector
//   - error: Codec errors, resolver errors, ErrZoningMismatch or any New
//     validation error
func Decode(r io.Reader, resolver types.Resolver, opts ...Option) (*Vector, error) {
	if resolver == nil {
		return nil, ErrNilResolver
	}

	payload, err := codec.Decode(r)
	if err != nil {
		return nil, err
	}

	return fromPayload(payload, resolver, opts)
}

// Load reads a vector written by Save, resolving its zoning and
// segmentation by name through resolver.
//
// The stored zone IDs must match the resolved zoning exactly; a drifted
// zone set fails with ErrZoningMismatch instead of silently misaligning
// values. The loaded data passes the same validation as New, so a corrupted
// or hand-edited file cannot produce an invariant-breaking vector.
//
// Parameters:
//   - path: The file to read
//   - resolver: Supplies the named zoning and segmentation oracles
//   - opts: Optional configuration applied to the loaded vector
//
// Returns:
//   - *Vector: The loaded vector
//   - error: Codec errors, resolver errors, ErrZoningMismatch or any New
//     validation error
func Load(path string, resolver types.Resolver, opts ...Option) (*Vector, error) {
	if resolver == nil {
		return nil, ErrNilResolver
	}

	payload, err := codec.DecodeFile(path)
	if err != nil {
		return nil, err
	}

	return fromPayload(payload, resolver, opts)
}
