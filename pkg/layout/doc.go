// Package layout partitions a matte canvas into the named boxes of a template.
//
// # Overview
//
// A [Template] is an ordered list of [Cut] instructions. Partitioning starts
// with a single rectangle covering the working area of the canvas and applies
// each cut in order: the rectangle at the cut's box index is removed from the
// working list, split into a primary piece anchored at the cut's edge and a
// remainder piece on the opposite side, and both are appended (primary first).
// Siblings are always separated by [GutterWidth] pixels.
//
//	+---------+----------+
//	|         |          |
//	|         |    1     |
//	|         +-----+----+
//	|    0    |  3  |    |
//	|         +--+--+    |
//	|         |  |5 | 2  |
//	|         | 4|6 |    |
//	+---------+--+--+----+
//
// Box indices are positional, so templates are authored against the append
// order: after a cut the two new pieces always occupy the last two slots.
//
// # Ratios
//
// A cut's [Ratio] is either a fraction of the rectangle's own extent along the
// cut axis ([Pct]) or an aspect ratio of the primary piece ([Aspect]), in
// which case the thickness is derived from the perpendicular extent.
//
// # Catalog
//
// [Builtin] returns the seven reference templates. They are validated when the
// package is initialized; an invalid built-in template is an authoring bug and
// panics. Extra templates can be loaded from TOML or YAML files with
// [LoadFile], using the compact cut syntax understood by [ParseCut]:
//
//	[[template]]
//	name  = "Stripes"
//	buffer = "top"
//	cuts  = ["0 left 50%", "1 top aspect 1.5"]
package layout
