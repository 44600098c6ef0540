package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/matte/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Matte composites photos into multi-box mattes",
		Long: `Matte lays out up to seven photos on a 4200x3250 canvas using fixed
templates, crops and captions them, and composites the result with ImageMagick.

Every change is auto-saved; the next command picks up where the last one left off.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.loadEnv()
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.binary, "convert", "", "ImageMagick convert binary (env "+envConvert+")")
	flags.StringVar(&c.templates, "templates", "", "extra templates from a .toml or .yaml file")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable the font and preview cache")

	root.AddCommand(c.newCommand())
	root.AddCommand(c.openCommand())
	root.AddCommand(c.saveCommand())
	root.AddCommand(c.saveAsCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.templateCommand())
	root.AddCommand(c.fontCommand())
	root.AddCommand(c.placeCommand())
	root.AddCommand(c.cropCommand())
	root.AddCommand(c.captionCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.commandCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadEnv applies .env and the environment to settings not given as flags.
// Shell completions skip PersistentPreRunE, so they call it directly.
func (c *CLI) loadEnv() {
	// Load .env file if present (ignore errors)
	_ = godotenv.Load()
	if c.binary == "" {
		c.binary = os.Getenv(envConvert)
	}
}
