package create

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skelkit/skel/cli/config"
	"github.com/skelkit/skel/cli/templates/builtin"
)

func TestFillCtx(t *testing.T) {
	cliOpts := &config.CliOpts{
		Templates: &config.TemplateOpts{
			Directories: []string{"/opt/skel/templates"},
			Module:      builtin.DefaultNamespace,
		},
	}

	var createCtx CreateCtx
	createCtx.DestinationDir = "/tmp/apps"
	require.NoError(t, FillCtx(cliOpts, &createCtx, []string{"basic"}))
	assert.Equal(t, "basic", createCtx.TemplateName)
	assert.Equal(t, []string{"/opt/skel/templates"}, createCtx.TemplateSearchPaths)
	assert.Equal(t, builtin.DefaultNamespace, createCtx.TemplateModule)
	assert.Equal(t, "/tmp/apps", createCtx.DestinationDir)

	createCtx = CreateCtx{}
	assert.Error(t, FillCtx(cliOpts, &createCtx, []string{}))
}

func TestRunFromSearchPath(t *testing.T) {
	workDir := t.TempDir()
	templatesDir := filepath.Join(workDir, "templates")
	templateDir := filepath.Join(templatesDir, "greeting")
	require.NoError(t, os.MkdirAll(templateDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(templateDir, "README.md"),
		[]byte("# {{ .name }}"), 0o644))

	dstDir := filepath.Join(workDir, "apps")
	createCtx := CreateCtx{
		AppName:             "app1",
		TemplateName:        "greeting",
		TemplateSearchPaths: []string{templatesDir},
		DestinationDir:      dstDir,
	}
	require.NoError(t, Run(&createCtx))

	buf, err := os.ReadFile(filepath.Join(dstDir, "app1", "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# app1", string(buf))
}

func TestRunBuiltinTemplate(t *testing.T) {
	dstDir := t.TempDir()
	createCtx := CreateCtx{
		AppName:        "app1",
		TemplateName:   "basic",
		TemplateModule: builtin.DefaultNamespace,
		DestinationDir: dstDir,
	}
	require.NoError(t, Run(&createCtx))

	appDir := filepath.Join(dstDir, "app1")
	require.FileExists(t, filepath.Join(appDir, "README.md"))
	require.FileExists(t, filepath.Join(appDir, "main.go.tmpl"))
	require.FileExists(t, filepath.Join(appDir, "config", "app.yaml"))

	buf, err := os.ReadFile(filepath.Join(appDir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(buf), "# app1")
}

func TestRunVarDefinitions(t *testing.T) {
	workDir := t.TempDir()
	templatesDir := filepath.Join(workDir, "templates")
	templateDir := filepath.Join(templatesDir, "greeting")
	require.NoError(t, os.MkdirAll(templateDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(templateDir, "hello.txt"),
		[]byte("Hello {{ .name }} from {{ .author }}"), 0o644))

	dstDir := filepath.Join(workDir, "apps")
	createCtx := CreateCtx{
		AppName:             "app1",
		TemplateName:        "greeting",
		TemplateSearchPaths: []string{templatesDir},
		VarsFromCli:         []string{"name=Acme", "author=QA"},
		DestinationDir:      dstDir,
	}
	require.NoError(t, Run(&createCtx))

	buf, err := os.ReadFile(filepath.Join(dstDir, "app1", "hello.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Hello Acme from QA", string(buf))
}

func TestRunUnknownTemplate(t *testing.T) {
	createCtx := CreateCtx{
		AppName:        "app1",
		TemplateName:   "no_such_template",
		TemplateModule: builtin.DefaultNamespace,
		DestinationDir: t.TempDir(),
	}
	err := Run(&createCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_template")
}

func TestRunMissingAppName(t *testing.T) {
	createCtx := CreateCtx{TemplateName: "basic"}
	assert.Error(t, Run(&createCtx))
}

func TestParseVarDefinitions(t *testing.T) {
	vars, err := ParseVarDefinitions([]string{"name=Acme", "empty="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Acme", "empty": ""}, vars)

	_, err = ParseVarDefinitions([]string{"no_value"})
	assert.Error(t, err)

	_, err = ParseVarDefinitions([]string{"=value"})
	assert.Error(t, err)
}
