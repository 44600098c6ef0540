// Package pkg provides the libraries behind matte, a tool that composites up
// to seven photos into one 4200x3250 print using fixed box templates.
//
// # Overview
//
// A matte is a document: a template choice, a caption font, and for each
// filled box the source image, its crop and an optional caption. The editor
// applies operations to the document, auto-saves it after every change, and
// hands it to ImageMagick's convert for the final composite.
//
//	template catalog ([layout])
//	         ↓
//	    [editor] (place, crop, caption, save)
//	         ↓  auto-save ([session]), config files ([settings], [paths])
//	    [convert] (argument list, shell escaping, process run)
//	         ↓
//	    out.png
//
// # Quick Start
//
//	ctl := editor.New(editor.Options{})
//	_ = ctl.SelectTemplate(ctx, 3)
//	_ = ctl.Place(ctx, 1, "beach.jpg")
//	_ = ctl.SetCaption(ctx, 1, "Summer 2024")
//	res, err := ctl.Export(ctx, "matte.png")
//
// # Main Packages
//
// ## Core Domain Logic
//
// [layout] - Canvas geometry, the cut grammar ("0 right 48.18%", "2 top
// aspect 1.5"), recursive partitioning into boxes and the template catalog,
// including custom templates from TOML or YAML files.
//
// [settings] - The document model, its JSON config format and ordered schema
// migrations.
//
// [paths] - Image paths relative to the config file, with device checks.
//
// [convert] - The convert argument list, shell escaping for copyable command
// lines, and a Renderer that serializes runs per document.
//
// [fonts] - Parsing of "convert -list font" into bold caption fonts.
//
// [editor] - The controller that owns the working document.
//
// ## Infrastructure
//
// [session] - Auto-save snapshots (file and memory backends).
//
// [cache] - File cache for the font list and preview diagrams.
//
// [preview] - Template diagrams (SVG, PDF, PNG) and low-resolution composites
// that need no ImageMagick.
//
// [server] - Read-only HTTP API over the auto-saved document.
//
// [watch] - Re-export on config file changes.
//
// [observability] - Hooks for renders, saves, cache and HTTP events.
//
// [errors] - Error codes shared by every package.
//
// # Testing
//
//	go test ./...
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/matte/pkg/layout
// [settings]: https://pkg.go.dev/github.com/matzehuels/matte/pkg/settings
// [paths]: https://pkg.go.dev/github.com/matzehuels/matte/pkg/paths
// [convert]: https://pkg.go.dev/github.com/matzehuels/matte/pkg/convert
// [fonts]: https://pkg.go.dev/github.com/matzehuels/matte/pkg/fonts
// [editor]: https://pkg.go.dev/github.com/matzehuels/matte/pkg/editor
// [session]: https://pkg.go.dev/github.com/matzehuels/matte/pkg/session
// [cache]: https://pkg.go.dev/github.com/matzehuels/matte/pkg/cache
// [preview]: https://pkg.go.dev/github.com/matzehuels/matte/pkg/preview
// [server]: https://pkg.go.dev/github.com/matzehuels/matte/pkg/server
// [watch]: https://pkg.go.dev/github.com/matzehuels/matte/pkg/watch
// [observability]: https://pkg.go.dev/github.com/matzehuels/matte/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/matte/pkg/errors
package pkg
