package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/matzehuels/matte/pkg/convert"
	"github.com/matzehuels/matte/pkg/editor"
	"github.com/matzehuels/matte/pkg/errors"
	"github.com/matzehuels/matte/pkg/fonts"
	"github.com/matzehuels/matte/pkg/preview"
	"github.com/matzehuels/matte/pkg/watch"
)

// exportCommand creates the "export" command.
func (c *CLI) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [output]",
		Short: "Composite the document with ImageMagick",
		Long: `Composite the document with ImageMagick's convert.

The output defaults to ` + convert.DefaultOutput + `. If the document's font is not
installed, the first installed bold font is used for this export.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := convert.DefaultOutput
			if len(args) == 1 {
				output = args[0]
			}
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}
			return c.export(cmd.Context(), ctl, output)
		},
	}
}

func (c *CLI) export(ctx context.Context, ctl *editor.Controller, output string) error {
	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Compositing "+output+"...")
	spinner.Start()

	res, err := ctl.Export(ctx, output)
	if err != nil {
		spinner.StopWithError("Export failed")
		return err
	}
	spinner.StopWithSuccess("Exported")
	printFile(res.Output)
	if res.Warnings != "" {
		printWarning("convert reported: %s", strings.TrimSpace(res.Warnings))
	}
	prog.done("Exported " + res.Output)
	return nil
}

// commandCommand creates the "command" command.
func (c *CLI) commandCommand() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "command",
		Short: "Print the convert command for the document",
		Long: `Print the shell-escaped convert command that exports the document to
` + convert.DefaultOutput + `, for running it by hand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}
			line := ctl.CommandLine()
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
				return err
			}
			if copyToClipboard {
				if err := clipboard.WriteAll(line); err != nil {
					return errors.Wrap(errors.ErrCodeUnsupported, err, "copy to clipboard")
				}
				printSuccess("Copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "also copy the command to the clipboard")
	return cmd
}

// previewCommand creates the "preview" command.
func (c *CLI) previewCommand() *cobra.Command {
	var output, diagram string
	var scale float64

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw a quick preview without ImageMagick",
		Long: `Draw a quick preview without ImageMagick.

By default the placed images are pasted into their boxes at a fraction of the
export size (no contrast normalization, no captions). With --diagram the
current template is drawn as boxes instead, shading the filled ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}

			var data []byte
			if diagram != "" {
				format, err := preview.ParseFormat(diagram)
				if err != nil {
					return err
				}
				data, err = c.diagram(cmd.Context(), ctl, format)
				if err != nil {
					return err
				}
				if output == "" {
					output = "preview." + string(format)
				}
			} else {
				img, err := preview.Composite(ctl.Document(), scale)
				if err != nil {
					return err
				}
				if output == "" {
					output = "preview.png"
				}
				var buf bytes.Buffer
				ext := strings.ToLower(filepath.Ext(output))
				if err := preview.WriteComposite(&buf, img, ext == ".jpg" || ext == ".jpeg"); err != nil {
					return err
				}
				data = buf.Bytes()
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.FromOS(err, "write %s", output)
			}
			printSuccess("Preview written")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default preview.png or preview.<format>)")
	cmd.Flags().StringVar(&diagram, "diagram", "", "draw the template as svg, pdf or png instead")
	cmd.Flags().Float64Var(&scale, "scale", preview.DefaultScale, "composite scale relative to the export size, at most 1")
	return cmd
}

// diagram draws the current template, labeling boxes with the caption font
// when its file can be found.
func (c *CLI) diagram(ctx context.Context, ctl *editor.Controller, format preview.Format) ([]byte, error) {
	doc := ctl.Document()
	opts := preview.DiagramOptions{Filled: map[int]bool{}}
	for _, id := range doc.Boxes() {
		opts.Filled[int(id)] = true
	}

	if lister, err := c.fontLister(); err == nil {
		if list, err := lister.ListBold(ctx); err == nil {
			if f, ok := fonts.Find(list, doc.IMFontName); ok {
				opts.LabelFont = f.Glyphs
			}
		} else {
			c.Logger.Debug("no label font", "err", err)
		}
	}

	d, err := c.diagrams()
	if err != nil {
		return nil, err
	}
	data, err := d.Render(ctx, ctl.Template(), format, opts)
	if err != nil && opts.LabelFont != "" {
		c.Logger.Debug("drawing without labels", "font", opts.LabelFont, "err", err)
		opts.LabelFont = ""
		data, err = d.Render(ctx, ctl.Template(), format, opts)
	}
	return data, err
}

// watchCommand creates the "watch" command.
func (c *CLI) watchCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "watch <config.json>",
		Short: "Re-export whenever a config file changes",
		Long: `Open a config file, export it, and export again every time the file is
saved. Stop with Ctrl+C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctl, err := c.editor(ctx)
			if err != nil {
				return err
			}

			reexport := func(ctx context.Context, path string) error {
				if err := ctl.Open(ctx, path); err != nil {
					return err
				}
				return c.export(ctx, ctl, output)
			}
			if err := reexport(ctx, args[0]); err != nil {
				return err
			}

			w, err := watch.New(args[0], func(ctx context.Context, path string) error {
				err := reexport(ctx, path)
				if err != nil {
					printError("%s", errors.UserMessage(err))
				}
				return err
			}, 0, c.Logger)
			if err != nil {
				return err
			}
			printInfo("Watching %s", w.Path())
			if err := w.Run(ctx); err != nil {
				return err
			}
			printDetail("%d re-export(s)", w.Runs())
			return ctx.Err()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", convert.DefaultOutput, "export file")
	return cmd
}
