// Package grid models factory source text as a ragged grid of runes and holds
// the static tables that classify conveyor belt glyphs.
//
// Positions are zero-based internally. Anything rendered for a human (span
// strings, diagnostics) is one-based.
package grid
