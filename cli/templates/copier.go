package templates

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/otiai10/copy"
	"github.com/skelkit/skel/cli/util"
)

const defaultDirPermissions = os.FileMode(0o755)

// DefaultExcludes lists file patterns that are copied byte-for-byte
// instead of being rendered: images, archives and compiled artifacts
// would be corrupted by text substitution.
var DefaultExcludes = []string{
	`^(.*)\.png$`,
	`^(.*)\.jpg$`,
	`^(.*)\.jpeg$`,
	`^(.*)\.gif$`,
	`^(.*)\.ico$`,
	`^(.*)\.exe$`,
	`^(.*)\.bin$`,
	`^(.*)\.zip$`,
	`^(.*)\.tar$`,
	`^(.*)\.tar\.gz$`,
	`^(.*)\.tgz$`,
	`^(.*)\.gz$`,
	`^(.*)\.so$`,
	`^(.*)\.dylib$`,
	`^(.*)\.dll$`,
	`^(.*)\.o$`,
	`^(.*)\.a$`,
}

// CopyOpts tunes a single Copy call.
type CopyOpts struct {
	// Overwrite allows replacing already existing destination files.
	Overwrite bool
	// Exclude are additional patterns for files copied without rendering.
	// Concatenated with the copier's configured exclude list.
	Exclude []string
	// Ignore are additional patterns for files not copied at all.
	// Concatenated with the copier's configured ignore list.
	Ignore []string
}

// Copier materializes a template directory tree under a destination
// directory, rendering directory names, file names and file contents
// through the engine.
type Copier struct {
	// Engine renders template text.
	Engine TemplateEngine
	// Exclude are configured patterns for files copied without rendering.
	Exclude []string
	// Ignore are configured patterns for files not copied at all.
	Ignore []string
}

// NewCopier creates a copier with the default exclude set.
func NewCopier(engine TemplateEngine) *Copier {
	return &Copier{
		Engine:  engine,
		Exclude: append([]string{}, DefaultExcludes...),
	}
}

// Copy renders the src directory tree to dest using the data map.
// Already written files are left in place if the traversal fails midway.
func (copier *Copier) Copy(src, dest string, data map[string]string, opts CopyOpts) error {
	var err error
	if src, err = filepath.Abs(src); err != nil {
		return fmt.Errorf("failed to get absolute path: %s", err)
	}
	if dest, err = filepath.Abs(dest); err != nil {
		return fmt.Errorf("failed to get absolute path: %s", err)
	}

	if !util.IsDir(src) {
		return &SourceNotFoundError{Path: src}
	}

	if err = util.CreateDirectory(dest, defaultDirPermissions); err != nil {
		return err
	}

	ignoreList, err := CompilePatterns(copier.Ignore, opts.Ignore)
	if err != nil {
		return err
	}
	excludeList, err := CompilePatterns(copier.Exclude, opts.Exclude)
	if err != nil {
		return err
	}

	// The source prefix is stripped from rendered directory paths in its
	// rendered form, so a prefix that happens to contain template
	// expressions still maps to the right destination sub-tree.
	renderedSrc, err := copier.Engine.RenderText(src, data)
	if err != nil {
		return fmt.Errorf("failed to render source path %s: %s", src, err)
	}

	log.Debugf("copying source template %s -> %s", src, dest)

	return filepath.WalkDir(src, func(curPath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			// The source base dir itself maps directly to dest.
			if curPath == src {
				return nil
			}

			dirDest, err := copier.mapDir(src, renderedSrc, dest, curPath, data)
			if err != nil {
				return err
			}
			if !util.IsDir(dirDest) {
				log.Debugf("creating sub-directory %s", dirDest)
				if err = util.CreateDirectory(dirDest, defaultDirPermissions); err != nil {
					return err
				}
			}
			return nil
		}

		dirDest, err := copier.mapDir(src, renderedSrc, dest, filepath.Dir(curPath), data)
		if err != nil {
			return err
		}

		return copier.copyFile(curPath, dirDest, entry, data, opts.Overwrite,
			ignoreList, excludeList)
	})
}

// mapDir maps a source directory to its destination directory: the full
// source path is rendered, the rendered source prefix stripped and the
// remainder joined with dest. Directory names containing template
// expressions expand differently per data map this way.
func (copier *Copier) mapDir(src, renderedSrc, dest, srcDir string,
	data map[string]string,
) (string, error) {
	if srcDir == src {
		return dest, nil
	}

	log.Debugf("rendering template %s", srcDir)
	rendered, err := copier.Engine.RenderText(srcDir, data)
	if err != nil {
		return "", fmt.Errorf("failed to render directory path %s: %s", srcDir, err)
	}

	stub := strings.TrimPrefix(rendered, renderedSrc)
	stub = strings.TrimLeft(stub, "/")
	stub = strings.TrimLeft(stub, "\\")

	return filepath.Join(dest, stub), nil
}

func (copier *Copier) copyFile(srcFile, dirDest string, entry fs.DirEntry,
	data map[string]string, overwrite bool, ignoreList, excludeList PatternList,
) error {
	log.Debugf("rendering template %s", entry.Name())
	newName, err := copier.Engine.RenderText(entry.Name(), data)
	if err != nil {
		return fmt.Errorf("failed to render file name %s: %s", entry.Name(), err)
	}
	fileDest := filepath.Join(dirDest, newName)

	if _, err := os.Stat(fileDest); err == nil {
		if !overwrite {
			return &DestExistsError{Path: fileDest}
		}
		log.Debugf("overwriting existing file: %s", fileDest)
	}

	if ignoreList.Match(srcFile) {
		log.Debugf("not copying ignored file: %s", srcFile)
		return nil
	}

	if excludeList.Match(srcFile) {
		log.Debugf("not rendering excluded file as template: %s", srcFile)
		return copy.Copy(srcFile, fileDest)
	}

	content, err := util.GetFileContent(srcFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %s", srcFile, err)
	}

	rendered, err := copier.Engine.RenderText(content, data)
	if err != nil {
		return fmt.Errorf("failed to render %s: %s", srcFile, err)
	}

	fileInfo, err := entry.Info()
	if err != nil {
		return err
	}

	log.Debugf("writing rendered file %s", fileDest)
	return os.WriteFile(fileDest, []byte(rendered), fileInfo.Mode().Perm())
}
