package create

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	"github.com/skelkit/skel/cli/config"
	"github.com/skelkit/skel/cli/templates"
	"github.com/skelkit/skel/cli/templates/builtin"
	"github.com/skelkit/skel/cli/util"
)

// CreateCtx contains information for creating applications from templates.
type CreateCtx struct {
	// AppName is application name to create.
	AppName string
	// TemplateName is a template name to use.
	TemplateName string
	// TemplateSearchPaths is a list of paths to search for a template,
	// in priority order.
	TemplateSearchPaths []string
	// TemplateModule is a built-in template namespace used as a
	// fallback template source.
	TemplateModule string
	// VarsFromCli is a list of variable definitions (name=value)
	// passed on the command line.
	VarsFromCli []string
	// ForceMode allows to overwrite files of an existing application.
	ForceMode bool
	// IgnorePatterns is a list of extra patterns for files that must
	// not be copied.
	IgnorePatterns []string
	// ExcludePatterns is a list of extra patterns for files that must
	// be copied without rendering.
	ExcludePatterns []string
	// DestinationDir is a directory where an application is created.
	DestinationDir string
	// CliOpts is loaded CLI configuration.
	CliOpts *config.CliOpts
}

// FillCtx fills create context from the configuration and arguments.
func FillCtx(cliOpts *config.CliOpts, createCtx *CreateCtx, args []string) error {
	if cliOpts.Templates != nil {
		createCtx.TemplateSearchPaths = append(createCtx.TemplateSearchPaths,
			cliOpts.Templates.Directories...)
		createCtx.TemplateModule = cliOpts.Templates.Module
	}
	createCtx.CliOpts = cliOpts

	if len(args) >= 1 {
		createCtx.TemplateName = args[0]
	} else {
		return fmt.Errorf("missing template name argument. " +
			"Try `skel create --help` for more information")
	}

	if createCtx.DestinationDir == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return err
		}
		createCtx.DestinationDir = workingDir
	}

	return nil
}

// Run creates an application from a template.
func Run(createCtx *CreateCtx) error {
	if err := checkCtx(createCtx); err != nil {
		return err
	}

	vars, err := ParseVarDefinitions(createCtx.VarsFromCli)
	if err != nil {
		return err
	}
	// Predefined variables. A --var definition takes precedence.
	if _, found := vars["name"]; !found {
		vars["name"] = createCtx.AppName
	}

	templateDir, cleanup, err := resolveTemplateDir(createCtx)
	if err != nil {
		return err
	}
	defer cleanup()

	appPath := filepath.Join(createCtx.DestinationDir, createCtx.AppName)

	copier := templates.NewCopier(templates.NewDefaultEngine())
	if createCtx.CliOpts != nil && createCtx.CliOpts.Templates != nil {
		copier.Ignore = append(copier.Ignore, createCtx.CliOpts.Templates.Ignore...)
		copier.Exclude = append(copier.Exclude, createCtx.CliOpts.Templates.Exclude...)
	}

	if err = copier.Copy(templateDir, appPath, vars, templates.CopyOpts{
		Overwrite: createCtx.ForceMode,
		Ignore:    createCtx.IgnorePatterns,
		Exclude:   createCtx.ExcludePatterns,
	}); err != nil {
		return fmt.Errorf("template instantiation failed: %s", err)
	}

	log.Infof("Application '%s' created successfully", createCtx.AppName)

	return nil
}

// checkCtx checks create context for validity.
func checkCtx(createCtx *CreateCtx) error {
	if createCtx.TemplateName == "" {
		return fmt.Errorf("template name is missing")
	}

	if createCtx.AppName == "" {
		return fmt.Errorf("application name is missing")
	}

	return nil
}

// ParseVarDefinitions parses name=value definitions into a data map.
func ParseVarDefinitions(definitions []string) (map[string]string, error) {
	vars := map[string]string{}
	for _, definition := range definitions {
		name, value, found := strings.Cut(definition, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid variable definition %q: expected name=value",
				definition)
		}
		vars[name] = value
	}

	return vars, nil
}

// resolveTemplateDir searches the template directory in configured
// search paths first and in the built-in namespace second. A built-in
// template is materialized into a temporary directory; the returned
// cleanup function removes it.
func resolveTemplateDir(createCtx *CreateCtx) (string, func(), error) {
	noCleanup := func() {}

	for _, templatesLocation := range createCtx.TemplateSearchPaths {
		templatePath := filepath.Join(templatesLocation, createCtx.TemplateName)
		if util.IsDir(templatePath) {
			log.Infof("Using template from %s", templatePath)
			return templatePath, noCleanup, nil
		}
	}

	fsys, found := builtin.Lookup(createCtx.TemplateModule)
	if !found {
		return "", nil, fmt.Errorf("template '%s' is not found", createCtx.TemplateName)
	}
	if stat, err := fs.Stat(fsys, createCtx.TemplateName); err != nil || !stat.IsDir() {
		return "", nil, fmt.Errorf("template '%s' is not found", createCtx.TemplateName)
	}

	tmpDir, err := os.MkdirTemp("", "skel-template-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temporary directory: %s", err)
	}

	sub, err := fs.Sub(fsys, createCtx.TemplateName)
	if err != nil {
		os.RemoveAll(tmpDir)
		return "", nil, err
	}
	if err = os.CopyFS(tmpDir, sub); err != nil {
		os.RemoveAll(tmpDir)
		return "", nil, fmt.Errorf("failed to materialize built-in template: %s", err)
	}

	log.Infof("Using built-in template %s",
		path.Join(createCtx.TemplateModule, createCtx.TemplateName))

	return tmpDir, func() { os.RemoveAll(tmpDir) }, nil
}
