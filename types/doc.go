// Package types provides core type definitions and interfaces for the dvec library.
//
// This package contains shared types that are used across multiple packages in
// the dvec library. By keeping these types in a separate package, we avoid
// import cycles between the main dvec package and its internal implementations.
//
// Key types:
//   - Segmentation: segment algebra oracle interface
//   - Zoning: zone system oracle interface
//   - TranslationMatrix: weighted zone-to-zone correspondence
//   - TimeFormat: temporal normalization of vector values
//   - Logger: structured logging interface
//   - MetricsCollector: metrics recording interface
package types
