// Package registry is the catalogue of station kinds a factory program may
// reference.
//
// Modules register their kinds once at startup, in a fixed order. After that
// the registry is read-only and shared by every program run: the scanner
// resolves identifiers to kind indices, and the engine calls procedures
// through those indices. Validate checks that the control kinds the
// interpreter relies on are present and well formed.
package registry
