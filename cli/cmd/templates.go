package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skelkit/skel/cli/cmdcontext"
	"github.com/skelkit/skel/cli/modules"
	"github.com/skelkit/skel/cli/templates/builtin"
	"github.com/skelkit/skel/cli/util"
)

// NewTemplatesCmd lists the templates available for `skel create`.
func NewTemplatesCmd() *cobra.Command {
	var templatesCmd = &cobra.Command{
		Use:   "templates",
		Short: "List available application templates",
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := modules.RunCmd(&cmdCtx, cmd.Name(), &modulesInfo,
				internalTemplatesModule, args)
			util.HandleCmdErr(cmd, err)
		},
	}

	return templatesCmd
}

// internalTemplatesModule is a default templates module.
func internalTemplatesModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	dirOrigin := color.New(color.FgCyan)
	builtinOrigin := color.New(color.FgGreen)

	if cliOpts == nil || cliOpts.Templates == nil {
		return nil
	}

	for _, templateDir := range cliOpts.Templates.Directories {
		entries, err := os.ReadDir(templateDir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				fmt.Printf("%s (%s)\n", entry.Name(), dirOrigin.Sprint(templateDir))
			}
		}
	}

	for _, name := range builtin.Templates(cliOpts.Templates.Module) {
		fmt.Printf("%s (%s)\n", name, builtinOrigin.Sprint("built-in"))
	}

	return nil
}
