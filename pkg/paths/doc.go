// Package paths converts image paths between the absolute form used for
// rendering and the config-relative form stored in saved documents.
//
// Relative paths keep a saved document portable: moving the document
// together with its images keeps every reference valid. A relative path is
// only produced when the document's directory and the image live on the same
// filesystem device (the same volume on Windows); crossing a device boundary,
// such as an image on an external drive, keeps the absolute path.
//
// [ToRelative] and [RewriteAll] stat both ends, so a missing file is an error
// rather than a silently absolute path.
package paths
