// Package editor owns the working matte document and applies every user
// operation to it.
//
// A [Controller] holds the selected template, the placed regions, the caption
// font and the save file. Each mutating method validates its input, updates
// the document and writes an auto-save snapshot, so the CLI can run one
// command per process and still resume where the previous one stopped.
//
//	ctl := editor.New(editor.Options{Store: store, Renderer: renderer})
//	if err := ctl.Restore(ctx); err != nil {
//	    return err
//	}
//	if err := ctl.Place(ctx, 1, "beach.jpg"); err != nil {
//	    return err
//	}
//	res, err := ctl.Export(ctx, "matte.png")
//
// Methods are not safe for concurrent use; the controller is the single
// owner of its document.
package editor
