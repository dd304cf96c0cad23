package args

import (
	"github.com/spf13/pflag"

	"github.com/skelkit/skel/cli/config"
)

// Handler adapts a pflag.FlagSet to the framework's argument-handling
// extension point. Registration and parsing are plain delegation, so
// the flag set's own behavior, including usage printing and process
// exit on a bad argument, is inherited unchanged.
type Handler struct {
	*pflag.FlagSet

	// Opts is the application configuration, stored by Configure.
	// The handler itself does not consume it.
	Opts *config.CliOpts
	// Parsed is the result of the last Parse call.
	Parsed *pflag.FlagSet
}

// NewHandler creates an argument handler named name.
func NewHandler(name string) *Handler {
	return &Handler{FlagSet: pflag.NewFlagSet(name, pflag.ExitOnError)}
}

// Configure stores the application configuration for use by extensions.
func (handler *Handler) Configure(opts *config.CliOpts) {
	handler.Opts = opts
}

// Parse parses the argument list and stores the result. After a
// successful parse, flag values are accessible by name through the
// returned set (GetString, GetBool and friends).
func (handler *Handler) Parse(arguments []string) (*pflag.FlagSet, error) {
	if err := handler.FlagSet.Parse(arguments); err != nil {
		return nil, err
	}
	handler.Parsed = handler.FlagSet

	return handler.Parsed, nil
}

// AddArgument registers a flag definition on the underlying flag set.
func (handler *Handler) AddArgument(flag *pflag.Flag) {
	handler.FlagSet.AddFlag(flag)
}
