package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/matte/pkg/editor"
	"github.com/matzehuels/matte/pkg/settings"
)

// newCommand creates the "new" command.
func (c *CLI) newCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start an empty document on the first template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}
			if err := ctl.New(cmd.Context()); err != nil {
				return err
			}
			printSuccess("New document on template %s", StyleHighlight.Render(ctl.Template().Name))
			printNextStep("Place an image", "matte place box1 photo.jpg")
			return nil
		},
	}
}

// openCommand creates the "open" command.
func (c *CLI) openCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "open <config.json>",
		Short: "Open a saved document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}
			if err := ctl.Open(cmd.Context(), args[0]); err != nil {
				return err
			}
			doc := ctl.Document()
			printSuccess("Opened %s", args[0])
			printDetail("%s · %d of %d boxes filled", ctl.Template().Name, len(doc.Regions), len(ctl.Boxes()))
			return nil
		},
	}
}

// saveCommand creates the "save" command.
func (c *CLI) saveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the document to its config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}
			if err := ctl.Save(cmd.Context()); err != nil {
				return err
			}
			printSuccess("Saved")
			printFile(ctl.Document().SaveFile)
			return nil
		},
	}
}

// saveAsCommand creates the "save-as" command.
func (c *CLI) saveAsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save-as <config.json>",
		Short: "Save the document to a new config file",
		Long: `Save the document to a new config file.

Image paths are stored relative to the config file when the image and the
file are on the same device, so the pair can be moved together.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}
			if err := ctl.SaveAs(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Saved")
			printFile(args[0])
			return nil
		},
	}
}

// showCommand creates the "show" command.
func (c *CLI) showCommand() *cobra.Command {
	var asJSON, asYAML bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}
			doc := ctl.Document()
			out := cmd.OutOrStdout()

			switch {
			case asJSON:
				data, err := settings.Encode(doc, true)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			case asYAML:
				data, err := documentYAML(doc)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			showDocument(cmd, ctl)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the auto-save JSON")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the document as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
	return cmd
}

// documentYAML renders doc with the same keys as its JSON form.
func documentYAML(doc *settings.Document) ([]byte, error) {
	data, err := settings.Encode(doc, true)
	if err != nil {
		return nil, err
	}
	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	return yaml.Marshal(generic)
}

func showDocument(cmd *cobra.Command, ctl *editor.Controller) {
	doc := ctl.Document()
	out := cmd.OutOrStdout()

	saveFile := doc.SaveFile
	if saveFile == "" {
		saveFile = "(unsaved)"
	}
	printKeyValue(out, "Template", fmt.Sprintf("%d · %s", doc.Template, ctl.Template().Name))
	printKeyValue(out, "Save file", saveFile)
	printKeyValue(out, "Font", fmt.Sprintf("%s (%s)", doc.CSSFontFamily, doc.IMFontName))
	if !doc.SavedAt.IsZero() {
		printKeyValue(out, "Auto-saved", doc.SavedAt.Local().Format("2006-01-02 15:04:05"))
	}

	rows := make([][]string, 0, len(ctl.Boxes()))
	for _, b := range ctl.Boxes() {
		id := settings.BoxID(b.ID)
		row := []string{b.Name(), b.Rect.String(), "—", "", ""}
		if r, ok := doc.Regions[id]; ok {
			row[2] = r.Path
			row[3] = r.Crop.Geometry()
			row[4] = strconv.Quote(r.Caption)
			if r.Caption == "" {
				row[4] = ""
			}
		}
		rows = append(rows, row)
	}
	fmt.Fprintln(out, renderTable([]string{"Box", "Geometry", "Image", "Crop", "Caption"}, rows))
}
