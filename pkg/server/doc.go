// Package server exposes the working document over a read-only HTTP API.
//
// The server never mutates the document: it reads the latest auto-save
// snapshot on every request, so changes made through the CLI show up on the
// next refresh. Routes:
//
//	GET /api/health
//	GET /api/templates
//	GET /api/templates/{index}
//	GET /api/templates/{index}/preview.{format}   svg, pdf or png
//	GET /api/document
//	GET /api/document/command                     the convert command line
//	GET /api/document/diagram.{format}            current template, filled boxes shaded
//	GET /api/document/preview.png                 low-resolution composite
package server
