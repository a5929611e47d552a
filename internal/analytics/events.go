// Package analytics implements the consent-gated event dispatcher targeting
// the GA4 command/event/parameter model. Tracking is best-effort: every path
// that cannot or must not emit is a silent no-op, and failures from the
// underlying tracker are logged, never propagated.
package analytics

import (
	"fmt"

	"github.com/jonathan/resume-site/internal/language"
)

// Event category constants. Event names and categories are fixed strings;
// the dispatcher matches on the concrete event type, not on duck-typed
// property checks.
const (
	EventLanguageToggle = "language_toggle"
	EventFileDownload   = "file_download"
	EventPageView       = "page_view"

	CategoryEngagement = "engagement"
	CategoryNavigation = "navigation"
)

// Base carries the fields common to every event: when it happened, where,
// and on behalf of which session.
type Base struct {
	Timestamp int64  // milliseconds since the Unix epoch
	PageURL   string // current page URL
	SessionID string // optional
}

// Event is the tagged union of trackable events. Each variant supplies its
// fixed name/category pair and its parameter payload; Validate enforces the
// variant's own invariants before dispatch.
type Event interface {
	Name() string
	Category() string
	Params() map[string]any
	Validate() error
}

// LanguageToggleEvent records a switch between resume languages.
// Previous and New must differ.
type LanguageToggleEvent struct {
	Base
	Previous language.Language
	New      language.Language
}

func (e *LanguageToggleEvent) Name() string     { return EventLanguageToggle }
func (e *LanguageToggleEvent) Category() string { return CategoryEngagement }

func (e *LanguageToggleEvent) Validate() error {
	if e.Previous == e.New {
		return fmt.Errorf("language toggle from %q to itself", e.Previous)
	}
	return nil
}

func (e *LanguageToggleEvent) Params() map[string]any {
	return withBase(e.Base, map[string]any{
		"event_category":    e.Category(),
		"previous_language": string(e.Previous),
		"new_language":      string(e.New),
	})
}

// PDFDownloadEvent records a resume PDF being produced or fetched.
type PDFDownloadEvent struct {
	Base
	FileName string
	Language language.Language
	Size     int64  // bytes; 0 when unknown
	Method   string // e.g. "link", "build"
}

func (e *PDFDownloadEvent) Name() string     { return EventFileDownload }
func (e *PDFDownloadEvent) Category() string { return CategoryEngagement }

func (e *PDFDownloadEvent) Validate() error {
	if e.FileName == "" {
		return fmt.Errorf("file download event without a file name")
	}
	return nil
}

func (e *PDFDownloadEvent) Params() map[string]any {
	params := withBase(e.Base, map[string]any{
		"event_category": e.Category(),
		"file_name":      e.FileName,
		"file_type":      "pdf",
		"language":       string(e.Language),
	})
	if e.Size > 0 {
		params["file_size"] = e.Size
	}
	if e.Method != "" {
		params["method"] = e.Method
	}
	return params
}

// PageViewEvent records a page being viewed.
type PageViewEvent struct {
	Base
	Title    string
	Path     string
	Referrer string
	Language language.Language
}

func (e *PageViewEvent) Name() string     { return EventPageView }
func (e *PageViewEvent) Category() string { return CategoryNavigation }

func (e *PageViewEvent) Validate() error {
	if e.Path == "" {
		return fmt.Errorf("page view event without a path")
	}
	return nil
}

func (e *PageViewEvent) Params() map[string]any {
	params := withBase(e.Base, map[string]any{
		"event_category": e.Category(),
		"page_title":     e.Title,
		"page_path":      e.Path,
		"language":       string(e.Language),
	})
	if e.Referrer != "" {
		params["page_referrer"] = e.Referrer
	}
	return params
}

// CustomEvent carries a caller-defined name, category, and payload.
type CustomEvent struct {
	Base
	EventName     string
	EventCategory string
	Payload       map[string]any
}

func (e *CustomEvent) Name() string     { return e.EventName }
func (e *CustomEvent) Category() string { return e.EventCategory }

func (e *CustomEvent) Validate() error {
	if e.EventName == "" {
		return fmt.Errorf("custom event without a name")
	}
	return nil
}

func (e *CustomEvent) Params() map[string]any {
	params := withBase(e.Base, map[string]any{})
	if e.EventCategory != "" {
		params["event_category"] = e.EventCategory
	}
	for k, v := range e.Payload {
		params[k] = v
	}
	return params
}

// fillBase populates unset base fields from defaults. Fields the caller
// already set are kept. Every event type embeds Base, so the dispatcher can
// complete events constructed without session context.
func (b *Base) fillBase(defaults Base) {
	if b.Timestamp == 0 {
		b.Timestamp = defaults.Timestamp
	}
	if b.PageURL == "" {
		b.PageURL = defaults.PageURL
	}
	if b.SessionID == "" {
		b.SessionID = defaults.SessionID
	}
}

func withBase(b Base, params map[string]any) map[string]any {
	if b.Timestamp != 0 {
		params["timestamp"] = b.Timestamp
	}
	if b.PageURL != "" {
		params["page_location"] = b.PageURL
	}
	if b.SessionID != "" {
		params["session_id"] = b.SessionID
	}
	return params
}
