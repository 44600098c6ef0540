// Package preview draws low-resolution previews of a matte without running
// ImageMagick.
//
// [Diagram] draws a template's boxes as an SVG, PDF or PNG diagram using
// tdewolff/canvas, optionally shading the boxes that already hold an image.
// [Composite] pastes the cropped source images into their boxes with
// disintegration/imaging; it skips contrast normalization and captions, so it
// is a layout check rather than a faithful export.
package preview
