package main

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chromeAvailable reports whether a headless-capable browser is installed.
func chromeAvailable() bool {
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser"} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

func TestPDFCommand_RequiresBuiltPages(t *testing.T) {
	contentDir := writeTestContent(t)

	pdfConfigFile = writeTestConfig(t, contentDir)
	pdfOutputDir = t.TempDir() // empty: no build ran
	t.Cleanup(func() {
		pdfConfigFile, pdfOutputDir = "", ""
	})

	err := runPDF(pdfCmd, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "run build first")
}

func TestPDFCommand_RendersBothLanguages(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser tests in short mode")
	}
	if !chromeAvailable() {
		t.Skip("Chrome/Chromium not found, skipping PDF rendering test")
	}

	contentDir := writeTestContent(t)
	outDir := filepath.Join(t.TempDir(), "public")

	buildConfigFile = writeTestConfig(t, contentDir)
	buildContentDir = contentDir
	buildOutputDir = outDir
	require.NoError(t, runBuild(nil, nil))

	pdfConfigFile = buildConfigFile
	pdfOutputDir = outDir
	t.Cleanup(func() {
		buildConfigFile, buildContentDir, buildOutputDir = "", "", ""
		pdfConfigFile, pdfOutputDir = "", ""
	})

	pdfCmd.SetContext(context.Background())
	require.NoError(t, runPDF(pdfCmd, nil))

	for _, name := range []string{"resume.pdf", "resume-ko.pdf"} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}
}
