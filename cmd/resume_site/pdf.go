package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-site/internal/analytics"
	"github.com/jonathan/resume-site/internal/config"
	"github.com/jonathan/resume-site/internal/language"
	"github.com/jonathan/resume-site/internal/resume"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Render the print pages to PDF with a headless browser",
	Long:  "Renders each language's print-optimized page to a PDF in the output directory, one language at a time. Requires Chrome/Chromium to be installed and a prior build.",
	RunE:  runPDF,
}

var (
	pdfConfigFile string
	pdfOutputDir  string
	pdfTimeout    time.Duration
	pdfVerbose    bool
)

func init() {
	pdfCmd.Flags().StringVarP(&pdfConfigFile, "config", "c", "", "Path to site config JSON file")
	pdfCmd.Flags().StringVarP(&pdfOutputDir, "out", "o", "", "Output directory holding the built pages (overrides config)")
	pdfCmd.Flags().DurationVar(&pdfTimeout, "timeout", 60*time.Second, "Per-language rendering timeout")
	pdfCmd.Flags().BoolVarP(&pdfVerbose, "verbose", "v", false, "Print detailed rendering information")

	rootCmd.AddCommand(pdfCmd)
}

func runPDF(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSiteConfig(pdfConfigFile, func(c *config.Config) {
		if pdfOutputDir != "" {
			c.OutputDir = pdfOutputDir
		}
	}, false)
	if err != nil {
		return err
	}

	dispatcher, _, err := newDispatcher(cfg)
	if err != nil {
		return err
	}

	// One headless browser per language, sequentially.
	for _, lang := range language.Supported {
		pageFile := filepath.Join(cfg.OutputDir, resume.PageName(lang, true))
		if _, err := os.Stat(pageFile); os.IsNotExist(err) {
			return fmt.Errorf("print page not found: %s (run build first)", pageFile)
		}

		pdfPath := filepath.Join(cfg.OutputDir, resume.PDFName(lang))
		size, err := renderPDF(cmd.Context(), pageFile, pdfPath, pdfTimeout, pdfVerbose)
		if err != nil {
			return fmt.Errorf("failed to render %s PDF: %w", lang, err)
		}

		fmt.Printf("Wrote %s (%d bytes)\n", pdfPath, size)

		dispatcher.Track(&analytics.PDFDownloadEvent{
			FileName: resume.PDFName(lang),
			Language: lang,
			Size:     size,
			Method:   "build",
		})
	}

	return nil
}

// renderPDF prints a built page to PDF and returns the output size.
func renderPDF(ctx context.Context, pageFile, pdfPath string, timeout time.Duration, verbose bool) (int64, error) {
	abs, err := filepath.Abs(pageFile)
	if err != nil {
		return 0, err
	}
	url := "file://" + abs

	if verbose {
		log.Printf("[PDF] Starting headless browser for: %s", url)
	}

	// Create browser context with timeout
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// A4 portrait, backgrounds on so the layout matches screen.
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("browser rendering failed: %w", err)
	}

	if err := os.WriteFile(pdfPath, pdf, 0644); err != nil {
		return 0, fmt.Errorf("failed to write PDF: %w", err)
	}

	if verbose {
		log.Printf("[PDF] Rendered PDF: %d bytes", len(pdf))
	}
	return int64(len(pdf)), nil
}
