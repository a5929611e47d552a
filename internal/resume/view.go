package resume

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/jonathan/resume-site/internal/language"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFiles, "templates/*.tmpl"))

// contactLink is one optional entry of the contact block, paired with its
// icon marker.
type contactLink struct {
	Icon  string
	Label string
	Href  string
}

// pageData is the template payload for a resume page.
type pageData struct {
	SiteName    string
	Lang        language.Language
	Name        string
	Title       string
	Summary     string
	Contacts    []contactLink
	Body        template.HTML
	Print       bool
	LastUpdated string
	PDFHref     string
	PDFName     string
	OtherLang   language.Language
	OtherHref   string
}

// homeData is the template payload for the homepage.
type homeData struct {
	SiteName string
	Name     string
	Title    string
	Summary  string
}

// RenderPage writes the resume page for doc. When print is set, the
// last-updated footer and the PDF download affordance are omitted; they
// are screen-only navigation aids. The PDF link target and download name
// derive from the document's language.
func RenderPage(w io.Writer, siteName string, doc *Document, print bool) error {
	fm := doc.Frontmatter

	data := pageData{
		SiteName:    siteName,
		Lang:        doc.Language,
		Name:        fm.Name,
		Title:       fm.Title,
		Summary:     fm.Summary,
		Contacts:    contactLinks(doc),
		Body:        template.HTML(doc.HTML),
		Print:       print,
		PDFHref:     PDFHref(doc.Language),
		PDFName:     PDFName(doc.Language),
		OtherLang:   language.Next(doc.Language),
		OtherHref:   "/" + PageName(language.Next(doc.Language), false),
		LastUpdated: formatLastUpdated(fm.LastUpdated),
	}

	if err := pageTemplates.ExecuteTemplate(w, "resume.html.tmpl", data); err != nil {
		return fmt.Errorf("failed to render resume page: %w", err)
	}
	return nil
}

// RenderHome writes the minimal homepage using the English document's
// identity fields.
func RenderHome(w io.Writer, siteName string, doc *Document) error {
	data := homeData{
		SiteName: siteName,
		Name:     doc.Frontmatter.Name,
		Title:    doc.Frontmatter.Title,
		Summary:  doc.Frontmatter.Summary,
	}
	if err := pageTemplates.ExecuteTemplate(w, "home.html.tmpl", data); err != nil {
		return fmt.Errorf("failed to render homepage: %w", err)
	}
	return nil
}

// contactLinks assembles the optional contact entries, each with its icon
// marker. Empty values are omitted.
func contactLinks(doc *Document) []contactLink {
	fm := doc.Frontmatter
	var links []contactLink

	if fm.Email != "" {
		links = append(links, contactLink{Icon: "mail", Label: fm.Email, Href: "mailto:" + fm.Email})
	}
	if fm.Phone != "" {
		links = append(links, contactLink{Icon: "phone", Label: fm.Phone})
	}
	if fm.Location != "" {
		links = append(links, contactLink{Icon: "pin", Label: fm.Location})
	}
	if fm.Website != nil && *fm.Website != "" {
		links = append(links, contactLink{Icon: "globe", Label: *fm.Website, Href: *fm.Website})
	}
	if fm.LinkedIn != nil && *fm.LinkedIn != "" {
		links = append(links, contactLink{Icon: "linkedin", Label: *fm.LinkedIn, Href: *fm.LinkedIn})
	}
	if fm.GitHub != nil && *fm.GitHub != "" {
		links = append(links, contactLink{Icon: "github", Label: *fm.GitHub, Href: *fm.GitHub})
	}
	return links
}

// formatLastUpdated renders the lastUpdated timestamp as a date for the
// footer. The value was validated upstream; a parse failure here falls
// back to the raw string rather than erroring.
func formatLastUpdated(ts string) string {
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return parsed.Format("2006-01-02")
}
