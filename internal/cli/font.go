package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/matte/pkg/errors"
	"github.com/matzehuels/matte/pkg/fonts"
)

// fontCommand creates the font command group.
func (c *CLI) fontCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "font",
		Short: "List and select the caption font",
	}

	cmd.AddCommand(c.fontListCommand())
	cmd.AddCommand(c.fontSetCommand())
	cmd.AddCommand(c.fontPickCommand())

	return cmd
}

func fontRows(list []fonts.Font, current string) [][]string {
	rows := make([][]string, 0, len(list))
	for _, f := range list {
		marker := ""
		if f.IMFontName == current {
			marker = iconCurrent
		}
		rows = append(rows, []string{marker, f.CSSFontFamily, f.IMFontName})
	}
	return rows
}

// fontListCommand creates the "font list" subcommand.
func (c *CLI) fontListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed bold fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}
			lister, err := c.fontLister()
			if err != nil {
				return err
			}
			list, err := lister.ListBold(cmd.Context())
			if err != nil {
				return err
			}
			rows := fontRows(list, ctl.Document().IMFontName)
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"", "Family", "ImageMagick name"}, rows))
			return nil
		},
	}
}

// fontSetCommand creates the "font set" subcommand.
func (c *CLI) fontSetCommand() *cobra.Command {
	var force bool
	var family string

	cmd := &cobra.Command{
		Use:   "set <imagemagick-name>",
		Short: "Set the caption font",
		Long: `Set the caption font by its ImageMagick name (see "matte font list").

With --force the name is accepted without checking the installed fonts; the
family defaults to the name without its "-Bold" suffix.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeFonts,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}

			f := fonts.Font{IMFontName: args[0], CSSFontFamily: family}
			if !force {
				lister, err := c.fontLister()
				if err != nil {
					return err
				}
				list, err := lister.ListBold(cmd.Context())
				if err != nil {
					return err
				}
				found, ok := fonts.Find(list, args[0])
				if !ok {
					return errors.New(errors.ErrCodeFontNotFound, "font %q is not installed (use --force to set it anyway)", args[0])
				}
				f = found
			}

			if err := ctl.SetFont(cmd.Context(), f); err != nil {
				return err
			}
			doc := ctl.Document()
			printSuccess("Caption font %s", StyleHighlight.Render(doc.CSSFontFamily))
			printDetail("%s", doc.IMFontName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the installed-font check")
	cmd.Flags().StringVar(&family, "family", "", "display family name (with --force)")
	return cmd
}

// fontPickCommand creates the "font pick" subcommand.
func (c *CLI) fontPickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose the caption font interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}
			lister, err := c.fontLister()
			if err != nil {
				return err
			}
			list, err := lister.ListBold(cmd.Context())
			if err != nil {
				return err
			}

			current := ctl.Document().IMFontName
			initial := 0
			rows := make([][]string, 0, len(list))
			for i, f := range list {
				if strings.EqualFold(f.IMFontName, current) {
					initial = i
				}
				rows = append(rows, []string{f.CSSFontFamily, f.IMFontName})
			}
			i, err := runPicker(NewPickerModel("Select Caption Font", []string{"Family", "ImageMagick name"}, rows, initial))
			if err != nil {
				return err
			}
			if err := ctl.SetFont(cmd.Context(), list[i]); err != nil {
				return err
			}
			printSuccess("Caption font %s", StyleHighlight.Render(list[i].CSSFontFamily))
			return nil
		},
	}
}
