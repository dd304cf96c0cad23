package templates

import (
	"io/fs"
	"path"
	"strings"

	"github.com/apex/log"
	"github.com/skelkit/skel/cli/templates/builtin"
	"github.com/skelkit/skel/cli/util"
)

// Origin identifies the kind of source a template was loaded from.
type Origin string

const (
	// OriginDirectory means the template was loaded from a configured
	// template directory.
	OriginDirectory Origin = "directory"
	// OriginModule means the template was loaded from a built-in
	// template namespace.
	OriginModule Origin = "module"
)

// Template is a loaded template together with its provenance.
type Template struct {
	// Content is the raw template content.
	Content []byte
	// Origin is the kind of source the template came from.
	Origin Origin
	// Location is the resolved physical location: an absolute file path
	// for directory sources, "<namespace>/<path>" for module sources.
	Location string
}

// Loader resolves logical template paths against template directories
// first and a built-in template namespace second. The directories have
// precedence.
type Loader struct {
	// Dirs are template directories, in priority order.
	Dirs []string
	// Module is the built-in template namespace name.
	Module string
}

// Load fetches the template identified by templatePath.
func (loader Loader) Load(templatePath string) (Template, error) {
	if templatePath == "" {
		return Template{}, ErrInvalidPath
	}

	// First attempt to load from a template directory.
	if template, found := loader.loadFromDirs(templatePath); found {
		return template, nil
	}

	// Second attempt to load from the built-in namespace.
	if template, found := loader.loadFromModule(templatePath); found {
		return template, nil
	}

	return Template{}, &NotFoundError{Path: templatePath}
}

func (loader Loader) loadFromDirs(templatePath string) (Template, bool) {
	relPath := strings.TrimLeft(templatePath, "/")
	for _, templateDir := range loader.Dirs {
		fullPath, err := util.JoinAbspath(strings.TrimRight(templateDir, "/"), relPath)
		if err != nil {
			log.Debugf("failed to resolve template path in %s: %s", templateDir, err)
			continue
		}

		log.Debugf("attempting to load template from file %s", fullPath)
		if !util.IsRegularFile(fullPath) {
			log.Debugf("template file %s does not exist", fullPath)
			continue
		}

		content, err := util.GetFileContentBytes(fullPath)
		if err != nil {
			log.Debugf("failed to read template file %s: %s", fullPath, err)
			continue
		}

		log.Debugf("loaded template from file %s", fullPath)
		return Template{Content: content, Origin: OriginDirectory, Location: fullPath}, true
	}

	return Template{}, false
}

func (loader Loader) loadFromModule(templatePath string) (Template, bool) {
	relPath := strings.TrimLeft(templatePath, "/")
	log.Debugf("attempting to load template %q from module %s", relPath, loader.Module)

	fsys, found := builtin.Lookup(loader.Module)
	if !found {
		log.Debugf("built-in template module %q is not registered", loader.Module)
		return Template{}, false
	}

	content, err := fs.ReadFile(fsys, relPath)
	if err != nil {
		log.Debugf("template %q does not exist in module %s", relPath, loader.Module)
		return Template{}, false
	}

	log.Debugf("loaded template %q from module %s", relPath, loader.Module)
	return Template{
		Content:  content,
		Origin:   OriginModule,
		Location: path.Join(loader.Module, relPath),
	}, true
}
