// Package resume composes validated metadata and rendered HTML into the
// displayed resume pages. One document exists per supported language, built
// once per run and immutable after validation.
package resume

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-site/internal/frontmatter"
	"github.com/jonathan/resume-site/internal/language"
	"github.com/jonathan/resume-site/internal/render"
	"github.com/jonathan/resume-site/internal/schema"
)

// Document owns one validated frontmatter plus both content
// representations: the original markdown body and its rendered HTML. A
// document that reaches the view layer always carries HTML.
type Document struct {
	Language    language.Language
	Frontmatter frontmatter.Matter
	Body        string
	HTML        string
}

// SourceName returns the markdown source file name for a language
// (resume.en.md, resume.ko.md).
func SourceName(lang language.Language) string {
	return fmt.Sprintf("resume.%s.md", lang)
}

// PDFName returns the download file name for a language's PDF. The English
// PDF keeps the unsuffixed name.
func PDFName(lang language.Language) string {
	if lang == language.English {
		return "resume.pdf"
	}
	return fmt.Sprintf("resume-%s.pdf", lang)
}

// PDFHref returns the site-absolute link target for a language's PDF.
func PDFHref(lang language.Language) string {
	return "/" + PDFName(lang)
}

// PageName returns the output HTML file name for a language's resume page.
func PageName(lang language.Language, print bool) string {
	name := "resume"
	if lang != language.English {
		name += "-" + string(lang)
	}
	if print {
		name += "-print"
	}
	return name + ".html"
}

// Load reads, parses, validates and renders one language's resume source
// from contentDir. Any failure is fatal to the caller: a broken resume
// source aborts the build.
func Load(contentDir string, lang language.Language, r *render.Renderer) (*Document, error) {
	path := filepath.Join(contentDir, SourceName(lang))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume source %s: %w", path, err)
	}

	parsed, err := frontmatter.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := schema.ValidateDocument(&parsed.Matter, parsed.Body); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	html, err := r.Render(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Document{
		Language:    lang,
		Frontmatter: parsed.Matter,
		Body:        parsed.Body,
		HTML:        html,
	}, nil
}
