package dvec

import (
	"fmt"
	"sync"

	"github.com/tdmkit/dvec/types"
)

// Registry is a name-keyed collection of zoning and segmentation oracles.
// It implements types.Resolver for Load and is safe for concurrent use.
type Registry struct {
	mu            sync.RWMutex
	segmentations map[string]types.Segmentation
	zonings       map[string]types.Zoning
}

var _ types.Resolver = (*Registry)(nil)

// NewRegistry creates an empty oracle registry.
func NewRegistry() *Registry {
	return &Registry{
		segmentations: make(map[string]types.Segmentation),
		zonings:       make(map[string]types.Zoning),
	}
}

// RegisterSegmentation adds or replaces a segmentation under its own name.
func (r *Registry) RegisterSegmentation(seg types.Segmentation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.segmentations[seg.Name()] = seg
}

// RegisterZoning adds or replaces a zoning under its own name.
func (r *Registry) RegisterZoning(zoning types.Zoning) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.zonings[zoning.Name()] = zoning
}

// ResolveSegmentation returns the segmentation registered under name.
//
// Returns:
//   - types.Segmentation: The registered segmentation
//   - error: ErrUnknownSegmentation if nothing is registered under name
func (r *Registry) ResolveSegmentation(name string) (types.Segmentation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seg, ok := r.segmentations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownSegmentation, name)
	}

	return seg, nil
}

// ResolveZoning returns the zoning registered under name. The empty name
// resolves to nil, the zoneless marker.
//
// Returns:
//   - types.Zoning: The registered zoning, or nil for the empty name
//   - error: ErrUnknownZoning if nothing is registered under name
func (r *Registry) ResolveZoning(name string) (types.Zoning, error) {
	if name == "" {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	zoning, ok := r.zonings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownZoning, name)
	}

	return zoning, nil
}
