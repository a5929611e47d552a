package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// writeTestContent writes valid sources for both languages into a fresh
// content directory and returns its path.
func writeTestContent(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	en := "---\nname: Jonathan Park\ntitle: Software Engineer\nemail: jonathan@example.com\nwebsite: \"https://jonathan.example.com\"\nlinkedin: \"\"\ngithub: \"https://github.com/jonathan\"\nlastUpdated: 2026-08-15T09:00:00Z\n---\n\n## Experience\n\n- Built things that stayed up\n\n## References\n\nAvailable upon request.\n"
	ko := "---\nname: 박조나단\ntitle: 소프트웨어 엔지니어\nemail: jonathan@example.com\nwebsite: \"https://jonathan.example.com\"\nlinkedin: \"\"\ngithub: \"https://github.com/jonathan\"\nlastUpdated: 2026-08-15T09:00:00Z\n---\n\n## 경력\n\n- 안정적인 시스템 구축\n\n## 추천인\n\n요청 시 제공 가능합니다.\n"

	if err := os.WriteFile(filepath.Join(dir, "resume.en.md"), []byte(en), 0644); err != nil {
		t.Fatalf("failed to write resume.en.md: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "resume.ko.md"), []byte(ko), 0644); err != nil {
		t.Fatalf("failed to write resume.ko.md: %v", err)
	}
	return dir
}

// writeTestConfig writes a config file pointing every directory at temp
// space and returns its path.
func writeTestConfig(t *testing.T, contentDir string) string {
	t.Helper()

	dir := t.TempDir()
	cfg := map[string]any{
		"content_dir": contentDir,
		"output_dir":  filepath.Join(dir, "public"),
		"data_dir":    filepath.Join(dir, "state"),
		"environment": "development",
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("failed to marshal config: %v", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}
