package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
  "site_name": "Jane Doe",
  "base_url": "https://janedoe.dev",
  "tracking_id": "G-ABC1234DEF",
  "consent_required": true
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", cfg.SiteName)
	assert.Equal(t, "https://janedoe.dev", cfg.BaseURL)
	assert.Equal(t, "G-ABC1234DEF", cfg.TrackingID)
	require.NotNil(t, cfg.ConsentRequired)
	assert.True(t, *cfg.ConsentRequired)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_TrackingID(t *testing.T) {
	tests := []struct {
		name       string
		trackingID string
		wantErr    bool
	}{
		{"empty is allowed", "", false},
		{"well-formed", "G-ABCDEFGH12", false},
		{"lowercase rejected", "g-abcdefgh12", true},
		{"too short", "G-ABC", true},
		{"too long", "G-ABCDEFGH1234", true},
		{"missing prefix", "ABCDEFGH12", true},
		{"UA-style rejected", "UA-12345678-1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{TrackingID: tt.trackingID}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_Environment(t *testing.T) {
	cfg := Config{Environment: "staging"}
	assert.Error(t, cfg.Validate())

	cfg.Environment = "development"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ContentDirMustExist(t *testing.T) {
	cfg := Config{ContentDir: filepath.Join(t.TempDir(), "missing")}
	assert.Error(t, cfg.Validate())
}

func TestAnalyticsConfigured(t *testing.T) {
	tests := []struct {
		trackingID string
		want       bool
	}{
		{"", false},
		{"G-short", false},
		{"G-1234567890", true},
	}
	for _, tt := range tests {
		cfg := Config{TrackingID: tt.trackingID}
		assert.Equal(t, tt.want, cfg.AnalyticsConfigured(), "tracking id %q", tt.trackingID)
	}
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("GA_TRACKING_ID", "G-ZZZZZZZZZZ")
	t.Setenv("SITE_ENV", "development")

	cfg := Config{TrackingID: "G-ABCDEFGH12", Environment: "production"}
	cfg.ApplyEnv()

	assert.Equal(t, "G-ZZZZZZZZZZ", cfg.TrackingID)
	assert.Equal(t, "development", cfg.Environment)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Defaults()
	cfg := Config{SiteName: "Custom"}
	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "Custom", merged.SiteName)
	assert.Equal(t, defaults.ContentDir, merged.ContentDir)
	assert.Equal(t, defaults.OutputDir, merged.OutputDir)
	assert.Equal(t, defaults.Environment, merged.Environment)
}

func TestMergeWithDefaults_UnsetGatesStayOn(t *testing.T) {
	// A minimal config file omitting the consent and DNT gates must not
	// turn them off.
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"site_name": "Minimal"}`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	merged := cfg.MergeWithDefaults(Defaults())

	assert.True(t, merged.ConsentGateEnabled())
	assert.True(t, merged.HonorsDoNotTrack())
}

func TestMergeWithDefaults_ExplicitFalseSurvives(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"consent_required": false, "respect_do_not_track": false}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	merged := cfg.MergeWithDefaults(Defaults())

	assert.False(t, merged.ConsentGateEnabled())
	assert.False(t, merged.HonorsDoNotTrack())
}
