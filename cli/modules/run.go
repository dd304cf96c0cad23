package modules

import (
	"os"
	"os/exec"

	"github.com/apex/log"

	"github.com/skelkit/skel/cli/cmdcontext"
)

// InternalFunc is a type of function that implements
// the internal behavior of the module.
type InternalFunc func(*cmdcontext.CmdCtx, []string) error

// RunCmd launches the required module.
// It looks up the command in the collected modules information and,
// based on flags and the module kind, launches the desired module.
//
// If an external module is defined and the -I flag is not
// specified, the external module will be launched.
// In any other case, internal.
//
// If the external module returns an error code,
// then skel exits with this code.
func RunCmd(cmdCtx *cmdcontext.CmdCtx, cmdName string, modulesInfo *ModulesInfo,
	internal InternalFunc, args []string,
) error {
	info, found := (*modulesInfo)[cmdName]
	if !found || info.IsInternal || cmdCtx.Cli.ForceInternal {
		return internal(cmdCtx, args)
	}

	if rc := RunExec(info.ExternalPath, args); rc != 0 {
		os.Exit(rc)
	}

	return nil
}

// RunExec exec command with the supplied arguments.
// Returns an error code from exec command.
func RunExec(command string, args []string) int {
	cmd := exec.Command(command, args...)

	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			return exitError.ExitCode()
		}

		log.Errorf("failed to exec external module: %s", err)
		return 1
	}

	return 0
}
