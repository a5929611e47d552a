package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-site/internal/config"
	"github.com/jonathan/resume-site/internal/language"
	"github.com/jonathan/resume-site/internal/observability"
	"github.com/jonathan/resume-site/internal/render"
	"github.com/jonathan/resume-site/internal/resume"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site from the resume sources",
	Long:  "Parses, validates and renders both language sources, then writes the homepage and the screen and print resume pages to the output directory.",
	RunE:  runBuild,
}

var (
	buildConfigFile string
	buildContentDir string
	buildOutputDir  string
	buildVerbose    bool
)

func init() {
	buildCmd.Flags().StringVarP(&buildConfigFile, "config", "c", "", "Path to site config JSON file")
	buildCmd.Flags().StringVar(&buildContentDir, "content", "", "Content directory (overrides config)")
	buildCmd.Flags().StringVarP(&buildOutputDir, "out", "o", "", "Output directory (overrides config)")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed build information")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(_ *cobra.Command, _ []string) error {
	started := time.Now()

	cfg, err := loadSiteConfig(buildConfigFile, func(c *config.Config) {
		if buildContentDir != "" {
			c.ContentDir = buildContentDir
		}
		if buildOutputDir != "" {
			c.OutputDir = buildOutputDir
		}
	}, true)
	if err != nil {
		return err
	}

	renderer := render.New()

	// Load both language documents concurrently; any source failure aborts
	// the build.
	loaded := make([]*resume.Document, len(language.Supported))
	var g errgroup.Group
	for i, lang := range language.Supported {
		g.Go(func() error {
			doc, err := resume.Load(cfg.ContentDir, lang, renderer)
			if err != nil {
				return err
			}
			loaded[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	docs := make(map[language.Language]*resume.Document, len(loaded))
	for _, doc := range loaded {
		docs[doc.Language] = doc
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var pages []string
	writePage := func(name string, renderFn func(*bytes.Buffer) error) error {
		var buf bytes.Buffer
		if err := renderFn(&buf); err != nil {
			return err
		}
		path := filepath.Join(cfg.OutputDir, name)
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		pages = append(pages, name)
		return nil
	}

	if err := writePage("index.html", func(buf *bytes.Buffer) error {
		return resume.RenderHome(buf, cfg.SiteName, docs[language.Default])
	}); err != nil {
		return err
	}

	for _, lang := range language.Supported {
		doc := docs[lang]
		for _, print := range []bool{false, true} {
			if err := writePage(resume.PageName(lang, print), func(buf *bytes.Buffer) error {
				return resume.RenderPage(buf, cfg.SiteName, doc, print)
			}); err != nil {
				return err
			}
		}
	}

	if buildVerbose {
		printer := observability.NewPrinter(os.Stdout)
		for _, lang := range language.Supported {
			printer.PrintDocument(docs[lang])
		}
		printer.PrintBuildSummary(uuid.NewString(), pages, time.Since(started))
	} else {
		fmt.Printf("Built %d pages to %s\n", len(pages), cfg.OutputDir)
	}

	return nil
}
