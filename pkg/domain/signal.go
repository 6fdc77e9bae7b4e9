package domain

import (
	"fmt"
	"time"
)

// Signal represents a single piece of collected intelligence about a
// competitor or keyword. Signals are created exactly once by the ingest
// processor and never mutated afterwards.
type Signal struct {
	ID             string
	Title          string
	RawContent     string // untrusted, possibly HTML
	SourceURL      string
	SourcePlatform string
	SignalType     string
	CompetitorID   string // optional weak reference, empty means unset
	KeywordID      string // optional weak reference, empty means unset
	CreatedAt      time.Time
}

// known source platforms, free-text values are accepted as well
const (
	PlatformWebsite  = "Website"
	PlatformLinkedIn = "LinkedIn"
	PlatformX        = "X"
	PlatformReddit   = "Reddit"
	PlatformBlog     = "Blog"
)

// known signal types, free-text values are accepted as well
const (
	SignalHiring        = "Hiring"
	SignalMarketShift   = "Market Shift"
	SignalCulture       = "Culture"
	SignalCustomerPain  = "Customer Pain"
	SignalProductLaunch = "Product Launch"
)

// SignalEnvelope is the payload of an EventSignalReceived bus event,
// carrying a webhook submission from the receiver to the processor.
type SignalEnvelope struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	URL          string `json:"url"`
	Platform     string `json:"platform"`
	SignalType   string `json:"signalType"`
	CompetitorID string `json:"competitorId,omitempty"`
	KeywordID    string `json:"keywordId,omitempty"`
}

// Validate checks that all five required fields are present. A payload
// failing this check will never become valid, so callers treat the error
// as terminal rather than retryable.
func (e *SignalEnvelope) Validate() error {
	if e.Title == "" || e.Content == "" || e.URL == "" || e.Platform == "" || e.SignalType == "" {
		return fmt.Errorf("missing required fields: title, content, url, platform and signalType must be set")
	}
	return nil
}

// Scope selects which signals a read-side query covers
type Scope string

// read-side scopes
const (
	ScopeAll       Scope = "all"
	ScopeCompanies Scope = "companies"
	ScopeKeywords  Scope = "keywords"
)

// ParseScope converts a query-string value to a Scope, defaulting to all
func ParseScope(s string) (Scope, error) {
	switch s {
	case "", string(ScopeAll):
		return ScopeAll, nil
	case string(ScopeCompanies):
		return ScopeCompanies, nil
	case string(ScopeKeywords):
		return ScopeKeywords, nil
	}
	return "", fmt.Errorf("unknown scope %q", s)
}

// SignalFilter represents filtering criteria for signal queries
type SignalFilter struct {
	Since time.Time // zero means no lower bound
	Scope Scope
	Limit int // zero means no limit
}

// ExportRow is a signal denormalized with its referenced competitor and
// keyword for the read side. Pointer fields are nil when the weak
// reference is unset, matching left-join semantics.
type ExportRow struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	RawContent       string    `json:"rawContent"`
	SourceURL        string    `json:"sourceUrl"`
	SourcePlatform   string    `json:"sourcePlatform"`
	SignalType       string    `json:"signalType"`
	CreatedAt        time.Time `json:"createdAt"`
	CompetitorName   *string   `json:"competitorName"`
	CompetitorDomain *string   `json:"competitorDomain"`
	KeywordTerm      *string   `json:"keywordTerm"`
	KeywordCategory  *string   `json:"keywordCategory"`
}
