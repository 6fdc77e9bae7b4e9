package domain

import "time"

// Competitor is a tracked company. Immutable after creation except via
// explicit delete; deletion is rejected by the store while signals or
// monitored pages reference it.
type Competitor struct {
	ID        string
	Name      string
	Domain    string
	CreatedAt time.Time
}

// Keyword is a tracked market term
type Keyword struct {
	ID        string
	Term      string
	Category  string
	CreatedAt time.Time
}

// MonitoredPage is a page watched by the external page-diffing job. The
// job updates LastContentHash/LastCheckedAt through the API; the ingest
// core does not touch these fields.
type MonitoredPage struct {
	ID              string
	URL             string
	Name            string
	CompetitorID    string // optional weak reference, empty means unset
	SignalType      string
	LastContentHash string // empty until first check
	LastCheckedAt   *time.Time
	Enabled         bool
	CreatedAt       time.Time
}
