package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/matte/pkg/server"
)

// serveCommand creates the "serve" command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a read-only preview API for the current document",
		Long: `Serve a read-only HTTP API with the templates, the auto-saved document, its
convert command and preview images. The API never changes the document;
run matte commands in another terminal and refresh.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.catalog()
			if err != nil {
				return err
			}
			store, err := c.store()
			if err != nil {
				return err
			}
			diagrams, err := c.diagrams()
			if err != nil {
				return err
			}
			s := server.New(server.Options{
				Catalog:  cat,
				Store:    store,
				Diagrams: diagrams,
				Binary:   c.binary,
				Logger:   c.Logger,
			})
			printInfo("Serving on %s", StyleHighlight.Render("http://"+addr+"/api/templates"))
			return s.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	return cmd
}
