package types

// Resolver maps persisted zoning and segmentation names back to live oracle
// instances.
//
// Serialized vectors store oracle references by name only; deserialization
// needs a Resolver to reattach them. Implementations typically wrap whatever
// registry the host application keeps its definitions in.
type Resolver interface {
	// ResolveSegmentation returns the segmentation registered under name.
	//
	// Returns:
	//   - Segmentation: The live instance
	//   - error: ErrUnknownSegmentation if name is not registered
	ResolveSegmentation(name string) (Segmentation, error)

	// ResolveZoning returns the zoning system registered under name.
	// The empty name resolves to nil (a zoneless vector) with no error.
	//
	// Returns:
	//   - Zoning: The live instance, or nil for the empty name
	//   - error: ErrUnknownZoning if name is not registered
	ResolveZoning(name string) (Zoning, error)
}
