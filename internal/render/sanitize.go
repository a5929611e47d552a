package render

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// policy is the fixed allow-list. Tags and attributes not listed here are
// stripped, including every script/style/event-handler vector.
var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	// Headings and text structure
	p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowElements("p", "br", "hr", "blockquote")
	p.AllowElements("strong", "em", "del", "code", "pre")

	// Lists and definition lists (contact/job entries)
	p.AllowElements("ul", "ol", "li", "dl", "dt", "dd")

	// Tables (GFM)
	p.AllowElements("table", "thead", "tbody", "tr", "th", "td")
	p.AllowAttrs("align").Matching(regexp.MustCompile(`^(left|center|right)$`)).OnElements("th", "td")

	// Links and images
	p.AllowAttrs("href", "title", "rel").OnElements("a")
	p.AllowAttrs("src", "alt", "title").OnElements("img")
	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowRelativeURLs(true)

	// Generic containers, carrying the icon markers and layout classes
	p.AllowElements("span", "div")
	p.AllowAttrs("class", "data-icon").OnElements("span", "div")
	p.AllowAttrs("class").OnElements("ul", "li", "p", "pre", "code")

	// Task-list checkboxes only; no other input renders
	p.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
	p.AllowAttrs("checked", "disabled").Matching(regexp.MustCompile(`^(|checked|disabled)$`)).OnElements("input")

	return p
}

// Sanitize applies the allow-list to rendered HTML.
func Sanitize(html string) string {
	return policy.Sanitize(html)
}
