// Package render converts the markdown remainder of a resume source into
// sanitized HTML. Sanitization is the system's only security-relevant
// behavior: everything outside a fixed allow-list of tags and attributes is
// stripped, so script injection from resume content cannot reach the page.
package render

import (
	"bytes"

	mathjax "github.com/litao91/goldmark-mathjax"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdown is the shared converter. WithUnsafe lets the inline icon markers
// (raw spans) through to the sanitizer, which owns the security boundary.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		mathjax.MathJax,
	),
	goldmark.WithExtensions(extension.DefinitionList),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// Renderer turns markdown bodies into sanitized, post-processed HTML.
type Renderer struct{}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render converts body markdown to HTML, sanitizes it against the
// allow-list, and applies the structural post-processing pass.
func (r *Renderer) Render(body string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		return "", &Error{Message: "markdown conversion failed", Cause: err}
	}

	sanitized := Sanitize(buf.String())

	out, err := postProcess(sanitized)
	if err != nil {
		return "", &Error{Message: "post-processing failed", Cause: err}
	}
	return out, nil
}
