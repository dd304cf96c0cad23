package modules

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skelkit/skel/cli/cmdcontext"
	"github.com/skelkit/skel/cli/config"
)

// ModuleInfo stores information about Skel CLI module.
type ModuleInfo struct {
	// Is this module internal (or external).
	IsInternal bool
	// Path to module (used only if module is external).
	ExternalPath string
}

// ModulesInfo stores information about all CLI modules.
type ModulesInfo map[string]*ModuleInfo

// GetModulesInfo collects information about available modules (both external and internal).
func GetModulesInfo(cmdCtx *cmdcontext.CmdCtx, subCommands []*cobra.Command,
	cliOpts *config.CliOpts,
) (ModulesInfo, error) {
	modulesDir, err := getExternalModulesDir(cmdCtx, cliOpts)
	if err != nil {
		return nil, err
	}

	externalModules, err := getExternalModules(modulesDir)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get available external modules information: %s", err)
	}

	// External modules have a higher priority than internal.
	modulesInfo := ModulesInfo{}
	for name, path := range externalModules {
		modulesInfo[name] = &ModuleInfo{
			IsInternal:   false,
			ExternalPath: path,
		}
	}

	for _, cmd := range subCommands {
		if _, found := modulesInfo[cmd.Name()]; !found {
			modulesInfo[cmd.Name()] = &ModuleInfo{
				IsInternal: true,
			}
		}
	}

	return modulesInfo, nil
}

// getExternalModulesDir returns the directory where external modules are located.
func getExternalModulesDir(cmdCtx *cmdcontext.CmdCtx, cliOpts *config.CliOpts) (string, error) {
	// Configuration file not detected - ignore and work on.
	if _, err := os.Stat(cmdCtx.Cli.ConfigPath); err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to get access to configuration file: %s", err)
		}

		return "", nil
	}

	// Unspecified `modules` field is not considered an error.
	if cliOpts.Modules == nil {
		return "", nil
	}

	modulesDir := cliOpts.Modules.Directory
	if info, err := os.Stat(modulesDir); err == nil {
		if !info.IsDir() {
			return "", fmt.Errorf("specified path in configuration file is not a directory")
		}
	}

	return modulesDir, nil
}

// getExternalModules returns map of available modules by
// parsing the contents of the path folder.
func getExternalModules(path string) (map[string]string, error) {
	modules := make(map[string]string)

	// If the directory doesn't exist, it is not an error.
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf(`failed to read "%s" directory: %s`, path, err)
		}

		return nil, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf(`failed to read "%s" directory: %s`, path, err)
	}

	for _, entry := range entries {
		// Ignore non executable files.
		if modulePath, err := exec.LookPath(filepath.Join(path, entry.Name())); err == nil {
			modules[strings.Split(entry.Name(), ".")[0]] = modulePath
		}
	}

	return modules, nil
}
