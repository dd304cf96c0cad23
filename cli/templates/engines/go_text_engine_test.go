package engines

import (
	"os"
	"path/filepath"
	"testing"
)

const templateText = `app_name={{.app_name}}
login={{ .login }}
password={{ .password }}`

const templateFileName = "origin.yaml.template"
const resultFileName = "origin.yaml"
const fileMode = os.FileMode(0o640)

func TestTemplateFileRender(t *testing.T) {
	workDir := t.TempDir()

	srcFileName := filepath.Join(workDir, templateFileName)
	err := os.WriteFile(srcFileName, []byte(templateText), fileMode)
	if err != nil {
		t.Fatalf("Error writing to %s: %s", srcFileName, err)
	}

	dstFileName := filepath.Join(workDir, resultFileName)
	data := map[string]string{
		"app_name": "app1",
		"login":    "admin",
		"password": "pwd",
	}

	engine := GoTextEngine{}
	if err = engine.RenderFile(srcFileName, dstFileName, data); err != nil {
		t.Errorf("Template render error: %s", err)
	}

	// Check generated file permissions equal to origin.
	stat, err := os.Stat(dstFileName)
	if err != nil {
		t.Errorf("Error getting info for %s: %s", dstFileName, err)
	}
	if stat.Mode() != fileMode {
		t.Errorf("%s file permissions are changed. Expected %o, actual %o",
			dstFileName, fileMode, stat.Mode())
	}

	// Check file content.
	var buf []byte
	buf, err = os.ReadFile(dstFileName)
	if err != nil {
		t.Errorf("Error reading %s: %s", dstFileName, err)
	}

	actual := string(buf)
	const expected = `app_name=app1
login=admin
password=pwd`
	if actual != expected {
		t.Errorf("Rendered template does not match the expected text.")
	}
}

func TestTemplateFileRenderMissingValues(t *testing.T) {
	workDir := t.TempDir()

	srcFileName := filepath.Join(workDir, templateFileName)
	err := os.WriteFile(srcFileName, []byte(templateText), 0o666)
	if err != nil {
		t.Fatalf("Error writing to %s: %s", srcFileName, err)
	}

	dstFileName := filepath.Join(workDir, resultFileName)
	data := map[string]string{"app_name": "app1"} // login & password are missing.
	engine := GoTextEngine{}
	if err = engine.RenderFile(srcFileName, dstFileName, data); err == nil {
		t.Errorf("Missing template variable must cause render failure.")
	}
}

func TestTextRendering(t *testing.T) {
	templateText := `{{.hello}} {{.world}}!`
	expectedText := `Hello world!`
	data := map[string]string{
		"hello": "Hello",
		"world": "world",
	}
	engine := GoTextEngine{}
	actualText, err := engine.RenderText(templateText, data)
	if err != nil {
		t.Errorf("Text rendering failed: %s", err)
	}

	if actualText != expectedText {
		t.Error("Actual text does not equal expected")
	}

	// Test missing key.
	delete(data, "hello")
	if _, err = engine.RenderText(templateText, data); err == nil {
		t.Error("Rendering must fail on missing keys.")
	}
}
