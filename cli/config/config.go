package config

// Config used to store all information from the
// skel.yaml configuration file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"skel" yaml:"skel"`
}

// TemplateOpts stores template resolution options.
type TemplateOpts struct {
	// Directories are template directories searched in priority order.
	Directories []string `mapstructure:"directories" yaml:"directories"`
	// Module is the built-in template namespace used as a fallback source.
	Module string `mapstructure:"module" yaml:"module"`
	// Ignore are regular expressions for files that are never copied.
	Ignore []string `mapstructure:"ignore" yaml:"ignore,omitempty"`
	// Exclude are regular expressions for files that are copied
	// verbatim instead of being rendered.
	Exclude []string `mapstructure:"exclude" yaml:"exclude,omitempty"`
}

// ModulesOpts stores external modules options.
type ModulesOpts struct {
	// Directory is where external module executables are located.
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// CliOpts stores information about Skel CLI configuration.
// Filled in when parsing the skel.yaml configuration file.
//
// skel.yaml file format:
// skel:
//   templates:
//     directories: [path, ...]
//     module: namespace
//     ignore: [regexp, ...]
//     exclude: [regexp, ...]
//   modules:
//     directory: path/to
type CliOpts struct {
	Templates *TemplateOpts `mapstructure:"templates" yaml:"templates"`
	Modules   *ModulesOpts  `mapstructure:"modules" yaml:"modules"`
}
