package cmdcontext

// CmdCtx is the main structure of the program context.
// Contains within itself other structures of CLI modules.
type CmdCtx struct {
	// Cli - CLI context. Contains flags passed when starting
	// Skel CLI and some other parameters.
	Cli CliCtx
	// CommandName contains name of the command.
	CommandName string
}

// CliCtx - CLI context. Contains flags passed when starting
// Skel CLI and some other parameters.
type CliCtx struct {
	// Use internal command even if an external module is found.
	ForceInternal bool
	// Path to Skel CLI (skel.yaml) config.
	ConfigPath string
	// ConfigDir is skel configuration file directory.
	// And current working directory, if there is no config.
	ConfigDir string
	// Verbose logging flag. Enables debug log output.
	Verbose bool
}
