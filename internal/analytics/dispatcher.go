package analytics

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-site/internal/config"
	"github.com/jonathan/resume-site/internal/consent"
	"github.com/jonathan/resume-site/internal/language"
)

// Tracker is the underlying tracking call: a (command, name, params)
// triple, matching the gtag contract. Commands are "config", "event" and
// "consent".
type Tracker interface {
	Track(command, name string, params map[string]any) error
}

// Dispatcher gates and formats every outbound tracking call. All Track*
// methods re-check Enabled and silently do nothing when tracking must not
// fire; there is no queueing for later.
type Dispatcher struct {
	cfg       *config.Config
	consent   *consent.Store
	tracker   Tracker
	dnt       func() bool
	now       func() time.Time
	sessionID string
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithDNTCheck overrides the Do-Not-Track probe.
func WithDNTCheck(fn func() bool) DispatcherOption {
	return func(d *Dispatcher) { d.dnt = fn }
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) DispatcherOption {
	return func(d *Dispatcher) { d.now = now }
}

// WithSessionID fixes the session identifier attached to events.
func WithSessionID(id string) DispatcherOption {
	return func(d *Dispatcher) { d.sessionID = id }
}

// NewDispatcher creates a dispatcher over the given config, consent store
// and tracker. The default Do-Not-Track probe honors the DO_NOT_TRACK
// environment variable.
func NewDispatcher(cfg *config.Config, store *consent.Store, tracker Tracker, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		cfg:       cfg,
		consent:   store,
		tracker:   tracker,
		dnt:       envDoNotTrack,
		now:       time.Now,
		sessionID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// envDoNotTrack reads the DO_NOT_TRACK convention.
func envDoNotTrack() bool {
	v := os.Getenv("DO_NOT_TRACK")
	return v == "1" || v == "true"
}

// Enabled is the single gating predicate. It is true only if all hold:
// analytics configured, not a suppressed development environment, consent
// satisfied (or not required), Do-Not-Track not both respected and set,
// and a tracker available.
func (d *Dispatcher) Enabled() bool {
	if d.tracker == nil {
		return false
	}
	if !d.cfg.AnalyticsConfigured() {
		return false
	}
	if d.cfg.IsDevelopment() && !d.cfg.AnalyticsInDev {
		return false
	}
	if d.cfg.ConsentGateEnabled() && !d.consent.Valid() {
		return false
	}
	if d.cfg.HonorsDoNotTrack() && d.dnt() {
		return false
	}
	return true
}

// InitConsentMode sets the default-denied posture before any consent
// decision is known, then subscribes to the consent store so every change
// updates the tracker's consent flags. The two-step default-then-update
// pattern guarantees no tracking call fires before an explicit decision is
// recorded. Returns a cancel function for the subscription.
func (d *Dispatcher) InitConsentMode() (cancel func()) {
	d.send("consent", "default", map[string]any{
		"analytics_storage":  "denied",
		"ad_storage":         "denied",
		"ad_user_data":       "denied",
		"ad_personalization": "denied",
	})

	return d.consent.Subscribe(func(u consent.Update) {
		d.send("consent", "update", consentModeParams(u))
	})
}

// consentModeParams maps a consent update onto GA4 consent-mode flags.
// Analytics storage follows the grant plus the performance permission; the
// advertising categories follow the demographics permission.
func consentModeParams(u consent.Update) map[string]any {
	flag := func(b bool) string {
		if b {
			return "granted"
		}
		return "denied"
	}
	return map[string]any{
		"analytics_storage":  flag(u.Granted && u.Permissions.Performance),
		"ad_storage":         flag(u.Granted && u.Permissions.Demographics),
		"ad_user_data":       flag(u.Granted && u.Permissions.Demographics),
		"ad_personalization": flag(u.Granted && u.Permissions.Demographics),
	}
}

// Configure emits the GA4 config command for the measurement ID. Gated like
// every other call.
func (d *Dispatcher) Configure() {
	if !d.Enabled() {
		return
	}
	d.send("config", d.cfg.TrackingID, map[string]any{
		"anonymize_ip": true,
	})
}

// baseCarrier is satisfied by every event embedding Base.
type baseCarrier interface {
	fillBase(Base)
}

// Track emits a single event if tracking is enabled and the event passes
// its own validation. Base fields the caller left unset are completed from
// the dispatcher's session context, so a directly constructed event still
// carries a timestamp, page URL and session id. Invalid events and tracker
// failures are logged only.
func (d *Dispatcher) Track(ev Event) {
	if !d.Enabled() {
		return
	}
	if carrier, ok := ev.(baseCarrier); ok {
		carrier.fillBase(d.base("/"))
	}
	if err := ev.Validate(); err != nil {
		log.Printf("[ANALYTICS] dropping invalid event: %v", err)
		return
	}
	d.send("event", ev.Name(), ev.Params())
}

// TrackLanguageToggle reports a switch from previous to next.
func (d *Dispatcher) TrackLanguageToggle(previous, next language.Language) {
	d.Track(&LanguageToggleEvent{
		Base:     d.base("/"),
		Previous: previous,
		New:      next,
	})
}

// TrackPDFDownload reports a resume PDF download for the given language.
func (d *Dispatcher) TrackPDFDownload(fileName string, lang language.Language) {
	d.Track(&PDFDownloadEvent{
		Base:     d.base("/resume"),
		FileName: fileName,
		Language: lang,
		Method:   "link",
	})
}

// TrackPageView reports a page view.
func (d *Dispatcher) TrackPageView(title, path string, lang language.Language) {
	d.Track(&PageViewEvent{
		Base:     d.base(path),
		Title:    title,
		Path:     path,
		Language: lang,
	})
}

// TrackCustom reports a caller-defined event.
func (d *Dispatcher) TrackCustom(name, category string, payload map[string]any) {
	d.Track(&CustomEvent{
		Base:          d.base("/"),
		EventName:     name,
		EventCategory: category,
		Payload:       payload,
	})
}

func (d *Dispatcher) base(path string) Base {
	return Base{
		Timestamp: d.now().UnixMilli(),
		PageURL:   d.cfg.BaseURL + path,
		SessionID: d.sessionID,
	}
}

// send hands a triple to the tracker, logging failures. Consent-mode calls
// go through here unconditionally; they carry no user data and must reach
// the tracker before any decision exists.
func (d *Dispatcher) send(command, name string, params map[string]any) {
	if d.tracker == nil {
		return
	}
	if err := d.tracker.Track(command, name, params); err != nil {
		log.Printf("[ANALYTICS] tracking call failed (%s %s): %v", command, name, err)
	}
}
