package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/matte/pkg/settings"
)

// placeCommand creates the "place" command.
func (c *CLI) placeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "place <box> <image>",
		Short: "Put an image into a box",
		Long: `Put an image into a box with the largest centered crop that matches the
box's aspect ratio. Boxes are named box1..box7 (or just 1..7).`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completeBoxes(false, cobra.ShellCompDirectiveDefault),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := settings.ParseBoxID(args[0])
			if err != nil {
				return err
			}
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}
			if err := ctl.Place(cmd.Context(), id, args[1]); err != nil {
				return err
			}
			r := ctl.Region(id)
			printSuccess("Placed %s in %s", args[1], id)
			printDetail("crop %s", r.Crop.Geometry())
			return nil
		},
	}
}

// cropCommand creates the "crop" command.
func (c *CLI) cropCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "crop <box> <WxH+X+Y>",
		Short:             "Set the source rectangle shown in a box",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completeBoxes(true, cobra.ShellCompDirectiveNoFileComp),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := settings.ParseBoxID(args[0])
			if err != nil {
				return err
			}
			crop, err := settings.ParseCrop(args[1])
			if err != nil {
				return err
			}
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}
			if err := ctl.SetCrop(cmd.Context(), id, crop); err != nil {
				return err
			}
			printSuccess("Cropped %s to %s", id, crop.Geometry())
			return nil
		},
	}
}

// captionCommand creates the "caption" command.
func (c *CLI) captionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "caption <box> [text...]",
		Short: "Set or clear the caption of a box",
		Long: `Set the caption drawn along the bottom of a box. Without text the caption
is removed. A literal "\n" in the text starts a new line.`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: c.completeBoxes(false, cobra.ShellCompDirectiveNoFileComp),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := settings.ParseBoxID(args[0])
			if err != nil {
				return err
			}
			text := strings.ReplaceAll(strings.Join(args[1:], " "), `\n`, "\n")
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}
			if err := ctl.SetCaption(cmd.Context(), id, text); err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				printSuccess("Cleared caption of %s", id)
			} else {
				printSuccess("Captioned %s", id)
			}
			return nil
		},
	}
}

// removeCommand creates the "remove" command.
func (c *CLI) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "remove <box>",
		Short:             "Remove the image from a box",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeBoxes(true, cobra.ShellCompDirectiveNoFileComp),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := settings.ParseBoxID(args[0])
			if err != nil {
				return err
			}
			ctl, err := c.editor(cmd.Context())
			if err != nil {
				return err
			}
			if err := ctl.Remove(cmd.Context(), id); err != nil {
				return err
			}
			printSuccess("Cleared %s", id)
			return nil
		},
	}
}
