package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/matte/pkg/editor"
	"github.com/matzehuels/matte/pkg/errors"
	"github.com/matzehuels/matte/pkg/layout"
)

// templateCommand creates the template command group.
func (c *CLI) templateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "List and select layout templates",
		Long: `List and select layout templates.

Switching templates discards every placed image, because box geometry
differs between templates.`,
	}

	cmd.AddCommand(c.templateListCommand())
	cmd.AddCommand(c.templateSetCommand())
	cmd.AddCommand(c.templatePickCommand())

	return cmd
}

func templateRows(cat layout.Catalog, current int) [][]string {
	rows := make([][]string, 0, len(cat))
	for i, t := range cat {
		marker := ""
		if i == current {
			marker = iconCurrent
		}
		buffer := ""
		if t.TopBuffer {
			buffer = "yes"
		}
		rows = append(rows, []string{marker, strconv.Itoa(i), t.Name, strconv.Itoa(t.BoxCount()), buffer})
	}
	return rows
}

// templateListCommand creates the "template list" subcommand.
func (c *CLI) templateListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}
			rows := templateRows(ctl.Catalog(), ctl.Document().Template)
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"", "#", "Name", "Boxes", "Top buffer"}, rows))
			return nil
		},
	}
}

// parseTemplate accepts a catalog index or a template name.
func parseTemplate(cat layout.Catalog, s string) (int, error) {
	if i, err := strconv.Atoi(s); err == nil {
		if _, err := cat.Get(i); err != nil {
			return 0, err
		}
		return i, nil
	}
	if i := cat.Index(s); i >= 0 {
		return i, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidTemplate, "unknown template %q", s)
}

// templateSetCommand creates the "template set" subcommand.
func (c *CLI) templateSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "set <index|name>",
		Short:             "Switch to a template",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeTemplates,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}
			i, err := parseTemplate(ctl.Catalog(), args[0])
			if err != nil {
				return err
			}
			return selectTemplate(cmd.Context(), ctl, i)
		},
	}
}

// templatePickCommand creates the "template pick" subcommand.
func (c *CLI) templatePickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a template interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}
			current := ctl.Document().Template
			rows := templateRows(ctl.Catalog(), current)
			for i := range rows {
				rows[i] = rows[i][1:]
			}
			i, err := runPicker(NewPickerModel("Select Template", []string{"#", "Name", "Boxes", "Top buffer"}, rows, current))
			if err != nil {
				return err
			}
			return selectTemplate(cmd.Context(), ctl, i)
		},
	}
}

func selectTemplate(ctx context.Context, ctl *editor.Controller, i int) error {
	dropped := len(ctl.Document().Regions)
	if err := ctl.SelectTemplate(ctx, i); err != nil {
		return err
	}
	printSuccess("Template %s", StyleHighlight.Render(ctl.Template().Name))
	if dropped > 0 {
		printWarning("Removed %d placed image(s)", dropped)
	}
	return nil
}
