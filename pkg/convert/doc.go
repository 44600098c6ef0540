// Package convert builds and runs the ImageMagick convert invocation that
// composites a matte.
//
// [BuildArgs] is a code generator for a fixed argument grammar: flag names and
// their order must match what convert expects byte for byte, so the output of
// a given [Request] is always identical. [Escape] and [CommandLine] turn the
// argument list into a shell command a user can paste into a terminal.
// [Renderer] runs the command through a [ProcessRunner] and refuses to start a
// second render of the same document while one is in flight.
package convert
