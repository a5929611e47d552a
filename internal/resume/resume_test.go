package resume

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-site/internal/language"
	"github.com/jonathan/resume-site/internal/render"
)

const validSource = `---
name: Jane Doe
title: Software Engineer
email: jane@example.com
phone: "+1 555 0100"
website: "https://janedoe.dev"
linkedin: ""
github: "https://github.com/janedoe"
location: Seoul, Korea
summary: Engineer with a focus on web platforms.
lastUpdated: "2026-08-01T00:00:00Z"
---

## Experience

**Acme Corp** — Senior Engineer

## References

Available on request.
`

func writeSource(t *testing.T, lang language.Language, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SourceName(lang)), []byte(content), 0644))
	return dir
}

func TestLoad_ValidSource(t *testing.T) {
	dir := writeSource(t, language.English, validSource)

	doc, err := Load(dir, language.English, render.New())
	require.NoError(t, err)

	assert.Equal(t, language.English, doc.Language)
	assert.Equal(t, "Jane Doe", doc.Frontmatter.Name)
	assert.Contains(t, doc.Body, "## Experience")
	assert.NotEmpty(t, doc.HTML, "a document reaching the view layer always has HTML")
	assert.Contains(t, doc.HTML, "<h2")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir(), language.English, render.New())
	assert.Error(t, err)
}

func TestLoad_MissingFrontmatterFails(t *testing.T) {
	dir := writeSource(t, language.English, "# no metadata\n")
	_, err := Load(dir, language.English, render.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata block")
}

func TestLoad_InvalidSchemaFails(t *testing.T) {
	bad := strings.Replace(validSource, "email: jane@example.com", "email: not-an-email", 1)
	dir := writeSource(t, language.English, bad)
	_, err := Load(dir, language.English, render.New())
	assert.Error(t, err)
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "resume.en.md", SourceName(language.English))
	assert.Equal(t, "resume.ko.md", SourceName(language.Korean))
}

func TestPDFNamesDeriveFromLanguage(t *testing.T) {
	assert.Equal(t, "resume.pdf", PDFName(language.English))
	assert.Equal(t, "resume-ko.pdf", PDFName(language.Korean))
	assert.Equal(t, "/resume.pdf", PDFHref(language.English))
	assert.Equal(t, "/resume-ko.pdf", PDFHref(language.Korean))
}

func TestPageName(t *testing.T) {
	assert.Equal(t, "resume.html", PageName(language.English, false))
	assert.Equal(t, "resume-ko.html", PageName(language.Korean, false))
	assert.Equal(t, "resume-print.html", PageName(language.English, true))
	assert.Equal(t, "resume-ko-print.html", PageName(language.Korean, true))
}

func loadTestDoc(t *testing.T, lang language.Language) *Document {
	t.Helper()
	dir := writeSource(t, lang, validSource)
	doc, err := Load(dir, lang, render.New())
	require.NoError(t, err)
	return doc
}

func TestRenderPage_ScreenVariant(t *testing.T) {
	doc := loadTestDoc(t, language.English)

	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, "Jane Doe", doc, false))
	out := buf.String()

	assert.Contains(t, out, `<html lang="en">`)
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Software Engineer")
	assert.Contains(t, out, `data-icon="mail"`)
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, `data-icon="github"`)

	// Screen-only affordances present.
	assert.Contains(t, out, "Last updated 2026-08-01")
	assert.Contains(t, out, `href="/resume.pdf"`)
	assert.Contains(t, out, `download="resume.pdf"`)
}

func TestRenderPage_PrintVariantOmitsFooter(t *testing.T) {
	doc := loadTestDoc(t, language.English)

	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, "Jane Doe", doc, true))
	out := buf.String()

	assert.NotContains(t, out, "Last updated")
	assert.NotContains(t, out, "pdf-download")
	assert.Contains(t, out, "Jane Doe")
}

func TestRenderPage_KoreanPDFLink(t *testing.T) {
	doc := loadTestDoc(t, language.Korean)

	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, "Jane Doe", doc, false))
	out := buf.String()

	assert.Contains(t, out, `<html lang="ko">`)
	assert.Contains(t, out, `href="/resume-ko.pdf"`)
	assert.Contains(t, out, `download="resume-ko.pdf"`)
	assert.NotContains(t, out, `download="resume.pdf"`)
}

func TestRenderPage_EmptyOptionalFieldsOmitted(t *testing.T) {
	src := strings.Replace(validSource, `phone: "+1 555 0100"`, `phone: ""`, 1)
	dir := writeSource(t, language.English, src)
	doc, err := Load(dir, language.English, render.New())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, "Jane Doe", doc, false))
	out := buf.String()

	assert.NotContains(t, out, `data-icon="phone"`)
	// linkedin is declared empty in the source and stays absent too.
	assert.NotContains(t, out, `data-icon="linkedin"`)
}

func TestRenderPage_ReferencesWrappedForPrint(t *testing.T) {
	doc := loadTestDoc(t, language.English)

	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, "Jane Doe", doc, true))
	assert.Contains(t, buf.String(), `class="print-hidden"`)
}

func TestRenderHome(t *testing.T) {
	doc := loadTestDoc(t, language.English)

	var buf bytes.Buffer
	require.NoError(t, RenderHome(&buf, "janedoe.dev", doc))
	out := buf.String()

	assert.Contains(t, out, "janedoe.dev")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, `href="/resume.html"`)
	assert.Contains(t, out, `href="/resume-ko.html"`)
}
