package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"

	"github.com/skelkit/skel/cli/cmdcontext"
	"github.com/skelkit/skel/cli/config"
	"github.com/skelkit/skel/cli/templates/builtin"
	"github.com/skelkit/skel/cli/util"
)

// ConfigName is the name of the Skel CLI configuration file.
const ConfigName = "skel.yaml"

// GetDefaultCliOpts returns `CliOpts` filled with default values.
func GetDefaultCliOpts() *config.CliOpts {
	templates := config.TemplateOpts{
		Module: builtin.DefaultNamespace,
	}
	modules := config.ModulesOpts{
		Directory: "",
	}

	return &config.CliOpts{Templates: &templates, Modules: &modules}
}

// GetCliOpts returns Skel CLI options from the config file
// located at path configurePath.
func GetCliOpts(configurePath string) (*config.CliOpts, error) {
	var cfg config.Config
	// Config could not be processed.
	if _, err := os.Stat(configurePath); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to get access to configuration file: %s", err)
		}

		return GetDefaultCliOpts(), nil
	}

	rawConfigOpts, err := util.ParseYAML(configurePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Skel CLI configuration: %s", err)
	}

	if err := mapstructure.Decode(rawConfigOpts, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse Skel CLI configuration: %s", err)
	}

	if cfg.CliConfig == nil {
		return nil, fmt.Errorf("failed to parse Skel CLI configuration: missing skel section")
	}

	cliOpts := cfg.CliConfig
	if cliOpts.Templates == nil {
		cliOpts.Templates = &config.TemplateOpts{}
	}
	if cliOpts.Templates.Module == "" {
		cliOpts.Templates.Module = builtin.DefaultNamespace
	}
	if cliOpts.Modules == nil {
		cliOpts.Modules = &config.ModulesOpts{}
	}

	// Relative paths in the config are resolved against the config
	// file location.
	configDir := filepath.Dir(configurePath)
	for i, templateDir := range cliOpts.Templates.Directories {
		if !filepath.IsAbs(templateDir) {
			cliOpts.Templates.Directories[i] = filepath.Join(configDir, templateDir)
		}
	}
	if cliOpts.Modules.Directory != "" && !filepath.IsAbs(cliOpts.Modules.Directory) {
		cliOpts.Modules.Directory = filepath.Join(configDir, cliOpts.Modules.Directory)
	}

	return cliOpts, nil
}

// Cli performs initial CLI configuration: enables debug logging if
// requested and locates the configuration file. An explicitly passed
// config path has priority, then the current working directory is
// checked, then the home directory. A missing config is not an error.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if cmdCtx.Cli.ConfigPath != "" {
		if !util.IsRegularFile(cmdCtx.Cli.ConfigPath) {
			return fmt.Errorf("specified path to the configuration file is invalid: %s",
				cmdCtx.Cli.ConfigPath)
		}
		configPath, err := filepath.Abs(cmdCtx.Cli.ConfigPath)
		if err != nil {
			return err
		}
		cmdCtx.Cli.ConfigPath = configPath
		cmdCtx.Cli.ConfigDir = filepath.Dir(configPath)
		return nil
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	cmdCtx.Cli.ConfigDir = workingDir

	configPath := filepath.Join(workingDir, ConfigName)
	if util.IsRegularFile(configPath) {
		cmdCtx.Cli.ConfigPath = configPath
		return nil
	}

	homeDir, err := util.GetHomeDir()
	if err != nil {
		return nil
	}

	configPath = filepath.Join(homeDir, ConfigName)
	if util.IsRegularFile(configPath) {
		cmdCtx.Cli.ConfigPath = configPath
		cmdCtx.Cli.ConfigDir = homeDir
	}

	return nil
}
