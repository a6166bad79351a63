// Package builder turns scanned stations into a wired program by following
// the conveyor belts drawn between them.
//
// # Why Builder Exists
//
// A factory program has no explicit edges. Which station feeds which is
// only visible in the drawing: a belt leaves one station, winds through the
// grid and ends next to another. The builder recovers those edges once, up
// front, so the engine can run on plain indices.
//
// # How It Works
//
//  1. **Scan:** the scanner finds every station and literal token.
//  2. **Resolve:** for each station in discovery order, Neighbors lists the
//     adjacent cells in the order set by the station's modifiers.
//  3. **Trace:** each neighbour is followed. A single-line glyph pointing at the
//     station starts a trace that is followed back, cell by cell, until a
//     double-line glyph marks the feeding station.
//  4. **Wire:** the feeding station gets an output target, the receiving
//     station a new input bay. Bay numbers follow neighbour order.
//  5. **Validate:** input and output counts are checked against the registry,
//     then every belt glyph in the grid must have been crossed by a trace.
//
// Every failure is a *diag.Error pointing at the offending cell or station.
package builder
