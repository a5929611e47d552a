// Package consent persists the user's analytics consent decision. A single
// versioned record is stored; declining is modeled as the absence of a
// record, and any record failing validation deletes itself on read.
package consent

import (
	"encoding/json"
	"time"
)

// PolicyVersion is the current consent policy version. Records carrying
// any other version are invalid.
const PolicyVersion = "1.0.0"

// StorageKey is the versioned key the consent record persists under.
const StorageKey = "resume-consent-v1"

// TTL is how long a consent record stays valid after being granted.
const TTL = 365 * 24 * time.Hour

// Permissions are the four independent data-collection grants carried by a
// consent record.
type Permissions struct {
	IP           bool `json:"ip"`
	UserAgent    bool `json:"userAgent"`
	Demographics bool `json:"demographics"`
	Performance  bool `json:"performance"`
}

// DefaultPermissions returns the grants applied when the user consents
// without customizing categories.
func DefaultPermissions() Permissions {
	return Permissions{
		IP:           true,
		UserAgent:    true,
		Demographics: false,
		Performance:  true,
	}
}

// Record is the persisted consent record. Timestamp is milliseconds since
// the Unix epoch, matching the stored JSON contract.
type Record struct {
	AnalyticsConsent bool        `json:"analyticsConsent"`
	Timestamp        int64       `json:"timestamp"`
	Version          string      `json:"version"`
	Permissions      Permissions `json:"permissions"`
}

// ValidAt reports whether the record is still valid at the given time: not
// expired and carrying the current policy version.
func (r *Record) ValidAt(now time.Time) bool {
	if r.Version != PolicyVersion {
		return false
	}
	granted := time.UnixMilli(r.Timestamp)
	return granted.Add(TTL).After(now)
}

// rawRecord mirrors Record with pointer fields so decoding can tell a
// missing or mistyped field apart from a zero value. A record is well-typed
// only if every field decoded.
type rawRecord struct {
	AnalyticsConsent *bool           `json:"analyticsConsent"`
	Timestamp        *int64          `json:"timestamp"`
	Version          *string         `json:"version"`
	Permissions      *rawPermissions `json:"permissions"`
}

type rawPermissions struct {
	IP           *bool `json:"ip"`
	UserAgent    *bool `json:"userAgent"`
	Demographics *bool `json:"demographics"`
	Performance  *bool `json:"performance"`
}

// decodeRecord parses raw JSON into a Record, returning ok=false when the
// payload is not a fully well-typed record.
func decodeRecord(data string) (*Record, bool) {
	var raw rawRecord
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, false
	}
	if raw.AnalyticsConsent == nil || raw.Timestamp == nil || raw.Version == nil || raw.Permissions == nil {
		return nil, false
	}
	p := raw.Permissions
	if p.IP == nil || p.UserAgent == nil || p.Demographics == nil || p.Performance == nil {
		return nil, false
	}

	return &Record{
		AnalyticsConsent: *raw.AnalyticsConsent,
		Timestamp:        *raw.Timestamp,
		Version:          *raw.Version,
		Permissions: Permissions{
			IP:           *p.IP,
			UserAgent:    *p.UserAgent,
			Demographics: *p.Demographics,
			Performance:  *p.Performance,
		},
	}, true
}
