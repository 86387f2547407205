// Package zoning provides a table-driven implementation of the zoning
// oracle.
//
// A Static zoning is a named, ordered list of zone IDs plus a registry of
// weighted translations into other zonings. Translations are registered per
// (target, weighting) pair, either as prebuilt matrices or from long-format
// correspondence rows.
//
// The zone list is immutable after construction; translation registration is
// guarded, so a Static zoning is safe for concurrent use.
package zoning
