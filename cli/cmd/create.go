package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skelkit/skel/cli/cmdcontext"
	"github.com/skelkit/skel/cli/create"
	"github.com/skelkit/skel/cli/modules"
	"github.com/skelkit/skel/cli/templates/builtin"
	"github.com/skelkit/skel/cli/util"
)

var (
	appName         string
	dstPath         string
	forceMode       bool
	varsFromCli     *[]string
	ignorePatterns  *[]string
	excludePatterns *[]string

	// errNoAppName is returned if -n option was not provided.
	errNoAppName = util.NewArgError(`application name is required: ` +
		`specify it with the --name option.`)
)

// NewCreateCmd creates an application from a template.
func NewCreateCmd() *cobra.Command {
	var createCmd = &cobra.Command{
		Use:   "create <TEMPLATE_NAME> [flags]",
		Short: "Create an application from a template",
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := modules.RunCmd(&cmdCtx, cmd.Name(), &modulesInfo,
				internalCreateModule, args)
			util.HandleCmdErr(cmd, err)
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("requires template name argument")
			}
			return nil
		},
		ValidArgsFunction: createValidArgsFunction,
		Long: `Create an application from a template.

Built-in templates:
	basic: an application with a config directory and a main file.
	minimal: an empty application skeleton.`,
		Example: `
# Create an application app1 from the basic built-in template.

    $ skel create basic --name app1

# Create an application in /opt/apps, force replacing of existing files.

    $ skel create basic --name app1 -f --dst /opt/apps

# Create an application passing extra template variables.

    $ skel create basic --name app1 --var author=QA`,
	}

	createCmd.Flags().StringVarP(&appName, "name", "n", "", "Application name")
	createCmd.Flags().BoolVarP(&forceMode, "force", "f", false,
		`Force rewrite application files if already exist`)
	varsFromCli = createCmd.Flags().StringArray("var", []string{},
		"Variable definition. Usage: --var var_name=value")
	ignorePatterns = createCmd.Flags().StringArray("ignore", []string{},
		"Pattern of files that are not copied at all")
	excludePatterns = createCmd.Flags().StringArray("exclude", []string{},
		"Pattern of files that are copied without rendering")
	createCmd.Flags().StringVarP(&dstPath, "dst", "d", "",
		"Path to the directory where an application will be created.")

	return createCmd
}

// createValidArgsFunction returns valid templates for `create` command.
func createValidArgsFunction(
	_ *cobra.Command,
	args []string,
	toComplete string,
) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}

	var templateNames []string

	// Append cfg's templates.
	if cliOpts != nil && cliOpts.Templates != nil {
		for _, templateDir := range cliOpts.Templates.Directories {
			entries, err := os.ReadDir(templateDir)
			if err != nil {
				continue
			}
			for _, entry := range entries {
				if entry.IsDir() {
					templateNames = append(templateNames, entry.Name())
				}
			}
		}
		// Append built-in templates.
		templateNames = append(templateNames,
			builtin.Templates(cliOpts.Templates.Module)...)
	}

	return templateNames, cobra.ShellCompDirectiveNoFileComp
}

// internalCreateModule is a default create module.
func internalCreateModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	if len(appName) == 0 {
		return errNoAppName
	}

	dstDir := dstPath
	if dstDir != "" {
		var err error
		if dstDir, err = filepath.Abs(dstDir); err != nil {
			return err
		}
	}

	createCtx := create.CreateCtx{
		AppName:         appName,
		ForceMode:       forceMode,
		VarsFromCli:     *varsFromCli,
		IgnorePatterns:  *ignorePatterns,
		ExcludePatterns: *excludePatterns,
		DestinationDir:  dstDir,
	}

	if err := create.FillCtx(cliOpts, &createCtx, args); err != nil {
		return err
	}

	return create.Run(&createCtx)
}
