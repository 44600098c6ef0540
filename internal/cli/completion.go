package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/matte/pkg/settings"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for matte.

To load completions:

Bash:
  $ source <(matte completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ matte completion bash > /etc/bash_completion.d/matte
  # macOS:
  $ matte completion bash > $(brew --prefix)/etc/bash_completion.d/matte

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ matte completion zsh > "${fpath[1]}/_matte"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ matte completion fish | source

  # To load completions for each session, execute once:
  $ matte completion fish > ~/.config/fish/completions/matte.fish

PowerShell:
  PS> matte completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> matte completion powershell > matte.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// completeBoxes completes the box argument from the boxes of the current
// template. With filled set only boxes holding an image are offered. Later
// arguments get the rest directive.
func (c *CLI) completeBoxes(filled bool, rest cobra.ShellCompDirective) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, rest
		}
		c.loadEnv()
		ctl, err := c.editor(cmd.Context())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var out []cobra.Completion
		for _, b := range ctl.Boxes() {
			id := settings.BoxID(b.ID)
			r := ctl.Region(id)
			if filled && r == nil {
				continue
			}
			if !strings.HasPrefix(id.String(), toComplete) {
				continue
			}
			desc := "empty"
			if r != nil {
				desc = r.Path
			}
			out = append(out, cobra.CompletionWithDesc(id.String(), desc))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeTemplates offers template indices described by their names.
func (c *CLI) completeTemplates(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cat, err := c.catalog()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var out []cobra.Completion
	for i, t := range cat {
		idx := strconv.Itoa(i)
		if strings.HasPrefix(idx, toComplete) {
			out = append(out, cobra.CompletionWithDesc(idx, t.Name))
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeFonts offers the installed bold fonts by ImageMagick name.
func (c *CLI) completeFonts(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	c.loadEnv()
	lister, err := c.fontLister()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	list, err := lister.ListBold(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var out []cobra.Completion
	for _, f := range list {
		if strings.HasPrefix(strings.ToLower(f.IMFontName), strings.ToLower(toComplete)) {
			out = append(out, cobra.CompletionWithDesc(f.IMFontName, f.CSSFontFamily))
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
