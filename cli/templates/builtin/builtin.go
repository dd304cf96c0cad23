package builtin

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed templates/*
var templatesFs embed.FS

// DefaultNamespace is the namespace the bundled skel templates are
// registered under.
const DefaultNamespace = "skel"

var registry = map[string]fs.FS{}

func init() {
	sub, err := fs.Sub(templatesFs, "templates")
	if err != nil {
		panic(err)
	}
	Register(DefaultNamespace, sub)
}

// Register makes the namespace resources available for lookup.
// A second registration of the same namespace replaces the first.
func Register(namespace string, fsys fs.FS) {
	registry[namespace] = fsys
}

// Lookup returns the file system registered under namespace.
func Lookup(namespace string) (fs.FS, bool) {
	fsys, found := registry[namespace]
	return fsys, found
}

// Templates returns the top-level template names available in the
// namespace, sorted alphabetically.
func Templates(namespace string) []string {
	fsys, found := registry[namespace]
	if !found {
		return nil
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names
}
