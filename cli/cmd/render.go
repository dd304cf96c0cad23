package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skelkit/skel/cli/cmdcontext"
	"github.com/skelkit/skel/cli/create"
	"github.com/skelkit/skel/cli/modules"
	"github.com/skelkit/skel/cli/templates"
	"github.com/skelkit/skel/cli/util"
)

var (
	renderVars   *[]string
	renderOutput string
)

// NewRenderCmd renders a single template to standard output or a file.
func NewRenderCmd() *cobra.Command {
	var renderCmd = &cobra.Command{
		Use:   "render <TEMPLATE_PATH> [flags]",
		Short: "Render a template from the configured template sources",
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := modules.RunCmd(&cmdCtx, cmd.Name(), &modulesInfo,
				internalRenderModule, args)
			util.HandleCmdErr(cmd, err)
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("requires template path argument")
			}
			return nil
		},
		Example: `
# Render a template from a configured template directory or the
# built-in namespace and print the result.

    $ skel render basic/README.md --var name=app1`,
	}

	renderVars = renderCmd.Flags().StringArray("var", []string{},
		"Variable definition. Usage: --var var_name=value")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "",
		"Write the rendered template to the file instead of stdout")

	return renderCmd
}

// internalRenderModule is a default render module.
func internalRenderModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	loader := templates.Loader{}
	if cliOpts != nil && cliOpts.Templates != nil {
		loader.Dirs = cliOpts.Templates.Directories
		loader.Module = cliOpts.Templates.Module
	}

	template, err := loader.Load(args[0])
	if err != nil {
		return err
	}

	vars, err := create.ParseVarDefinitions(*renderVars)
	if err != nil {
		return err
	}

	rendered, err := templates.NewDefaultEngine().RenderText(string(template.Content), vars)
	if err != nil {
		return fmt.Errorf("failed to render %s: %s", template.Location, err)
	}

	if renderOutput == "" {
		fmt.Print(rendered)
		return nil
	}

	return os.WriteFile(renderOutput, []byte(rendered), 0o644)
}
