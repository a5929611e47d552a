package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-site/internal/config"
	"github.com/jonathan/resume-site/internal/frontmatter"
	"github.com/jonathan/resume-site/internal/language"
	"github.com/jonathan/resume-site/internal/resume"
	"github.com/jonathan/resume-site/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the resume sources without building",
	Long:  "Parses both language sources and applies the full schema checks, reporting every violated field instead of stopping at the first.",
	RunE:  runValidate,
}

var (
	validateConfigFile string
	validateContentDir string
)

func init() {
	validateCmd.Flags().StringVarP(&validateConfigFile, "config", "c", "", "Path to site config JSON file")
	validateCmd.Flags().StringVar(&validateContentDir, "content", "", "Content directory (overrides config)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	cfg, err := loadSiteConfig(validateConfigFile, func(c *config.Config) {
		if validateContentDir != "" {
			c.ContentDir = validateContentDir
		}
	}, true)
	if err != nil {
		return err
	}

	failed := false
	for _, lang := range language.Supported {
		path := filepath.Join(cfg.ContentDir, resume.SourceName(lang))
		if err := validateSource(path); err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "%s:\n%v\n", path, err)
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}

	if failed {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func validateSource(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	parsed, err := frontmatter.Parse(string(data))
	if err != nil {
		return err
	}

	return schema.ValidateDocument(&parsed.Matter, parsed.Body)
}
