package render

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// hideableSections are the headings (lower-cased) whose section is wrapped
// in a print-hidden container so the PDF path can exclude it. One entry per
// supported language.
var hideableSections = []string{"references", "추천인"}

// printHiddenClass marks content excluded from the print/PDF layout.
const printHiddenClass = "print-hidden"

// postProcess applies the structural passes that run after sanitization:
// it re-asserts that icon markers survived the sanitizer, and wraps the
// references section in a hideable container. If that section is the last
// one, the container closes at end-of-document rather than at the next
// heading.
func postProcess(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	ensureIconMarkers(doc)
	wrapHideableSections(doc)

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}
	return out, nil
}

// ensureIconMarkers guarantees every span carrying a data-icon attribute
// also carries the icon class the stylesheet keys off. The sanitizer is
// already configured to keep data-icon; this pass catches a policy
// regression dropping the companion class.
func ensureIconMarkers(doc *goquery.Document) {
	doc.Find("span[data-icon]").Each(func(_ int, s *goquery.Selection) {
		if !s.HasClass("icon") {
			s.AddClass("icon")
		}
	})
}

// wrapHideableSections wraps each matching heading plus its content, up to
// the next heading of the same level or end-of-document, in a print-hidden
// div. Heading text matches case-insensitively in either supported
// language.
func wrapHideableSections(doc *goquery.Document) {
	doc.Find("h1, h2, h3").Each(func(_ int, heading *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(heading.Text()))
		if !isHideable(text) {
			return
		}

		tag := goquery.NodeName(heading)
		section := heading.AddSelection(heading.NextUntil(tag))
		section.WrapAllHtml(`<div class="` + printHiddenClass + `"></div>`)
	})
}

func isHideable(headingText string) bool {
	for _, name := range hideableSections {
		if headingText == name {
			return true
		}
	}
	return false
}
