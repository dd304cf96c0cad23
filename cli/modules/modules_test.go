package modules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skelkit/skel/cli/cmdcontext"
	"github.com/skelkit/skel/cli/config"
	"github.com/skelkit/skel/cli/configure"
)

func getTestSubCommands() []*cobra.Command {
	return []*cobra.Command{
		{
			Use: "create",
			Run: func(cmd *cobra.Command, args []string) {},
		},
		{
			Use: "version",
			Run: func(cmd *cobra.Command, args []string) {},
		},
	}
}

func TestModulesInfoInternalOnly(t *testing.T) {
	var cmdCtx cmdcontext.CmdCtx
	cliOpts := config.CliOpts{Modules: &config.ModulesOpts{}}

	modulesInfo, err := GetModulesInfo(&cmdCtx, getTestSubCommands(), &cliOpts)
	require.NoError(t, err)

	keys := make([]string, 0, len(modulesInfo))
	for key := range modulesInfo {
		keys = append(keys, key)
	}
	require.ElementsMatch(t, []string{"create", "version"}, keys)

	for _, info := range modulesInfo {
		assert.True(t, info.IsInternal)
	}
}

func TestModulesInfoExternalOverride(t *testing.T) {
	workDir := t.TempDir()

	configPath := filepath.Join(workDir, configure.ConfigName)
	require.NoError(t, os.WriteFile(configPath, []byte("skel: {}\n"), 0o644))

	modulesDir := filepath.Join(workDir, "modules")
	require.NoError(t, os.Mkdir(modulesDir, 0o755))
	modulePath := filepath.Join(modulesDir, "create")
	require.NoError(t, os.WriteFile(modulePath, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	var cmdCtx cmdcontext.CmdCtx
	cmdCtx.Cli.ConfigPath = configPath
	cliOpts := config.CliOpts{Modules: &config.ModulesOpts{Directory: modulesDir}}

	modulesInfo, err := GetModulesInfo(&cmdCtx, getTestSubCommands(), &cliOpts)
	require.NoError(t, err)

	// The external executable shadows the internal create command.
	require.Contains(t, modulesInfo, "create")
	assert.False(t, modulesInfo["create"].IsInternal)
	assert.Equal(t, modulePath, modulesInfo["create"].ExternalPath)

	require.Contains(t, modulesInfo, "version")
	assert.True(t, modulesInfo["version"].IsInternal)
}

func TestRunCmdInternal(t *testing.T) {
	var cmdCtx cmdcontext.CmdCtx
	modulesInfo := ModulesInfo{
		"create": &ModuleInfo{IsInternal: true},
	}

	called := false
	internal := func(cmdCtx *cmdcontext.CmdCtx, args []string) error {
		called = true
		assert.Equal(t, []string{"basic"}, args)
		return nil
	}

	require.NoError(t, RunCmd(&cmdCtx, "create", &modulesInfo, internal, []string{"basic"}))
	assert.True(t, called)
}

func TestRunCmdForceInternal(t *testing.T) {
	var cmdCtx cmdcontext.CmdCtx
	cmdCtx.Cli.ForceInternal = true
	modulesInfo := ModulesInfo{
		"create": &ModuleInfo{IsInternal: false, ExternalPath: "/nonexistent"},
	}

	called := false
	internal := func(cmdCtx *cmdcontext.CmdCtx, args []string) error {
		called = true
		return nil
	}

	require.NoError(t, RunCmd(&cmdCtx, "create", &modulesInfo, internal, nil))
	assert.True(t, called)
}

func TestRunExec(t *testing.T) {
	assert.Equal(t, 0, RunExec("/bin/sh", []string{"-c", "exit 0"}))
	assert.Equal(t, 3, RunExec("/bin/sh", []string{"-c", "exit 3"}))
}
