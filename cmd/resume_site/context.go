package main

import (
	"os"

	"github.com/jonathan/resume-site/internal/analytics"
	"github.com/jonathan/resume-site/internal/config"
	"github.com/jonathan/resume-site/internal/consent"
	"github.com/jonathan/resume-site/internal/storage"
)

// loadSiteConfig merges the optional config file, environment overrides and
// defaults, applies CLI flag overrides, then validates. Content-directory
// existence is only enforced for commands that read sources; state-only
// commands (lang, consent) run from anywhere.
func loadSiteConfig(path string, overrides func(*config.Config), checkContent bool) (*config.Config, error) {
	defaults := config.Defaults()
	cfg := &defaults
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	merged := cfg.MergeWithDefaults(config.Defaults())
	if overrides != nil {
		overrides(&merged)
	}

	check := merged
	if !checkContent {
		check.ContentDir = ""
	}
	if err := check.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// newDispatcher wires the consent store and analytics dispatcher over the
// persisted data directory. The consent-mode default-denied posture is
// pushed before returning, so no tracking call can precede it.
func newDispatcher(cfg *config.Config) (*analytics.Dispatcher, *consent.Store, error) {
	kv, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	store := consent.NewStore(kv)

	var tracker analytics.Tracker
	if cfg.AnalyticsConfigured() {
		tracker = analytics.NewGtagClient(cfg.TrackingID, os.Getenv("GA_API_SECRET"))
	}

	d := analytics.NewDispatcher(cfg, store, tracker)
	d.InitConsentMode()
	return d, store, nil
}

// newStateStore opens the persisted key/value store without analytics.
func newStateStore(cfg *config.Config) (*storage.FileStore, error) {
	return storage.NewFileStore(cfg.DataDir)
}
