package server

import (
	"time"

	"github.com/umputun/intelscope/pkg/domain"
)

type competitorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCompetitorResponse(c domain.Competitor) competitorResponse {
	return competitorResponse{ID: c.ID, Name: c.Name, Domain: c.Domain, CreatedAt: c.CreatedAt}
}

func toCompetitorResponses(competitors []domain.Competitor) []competitorResponse {
	res := make([]competitorResponse, len(competitors))
	for i, c := range competitors {
		res[i] = toCompetitorResponse(c)
	}
	return res
}

type keywordResponse struct {
	ID        string    `json:"id"`
	Term      string    `json:"term"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

func toKeywordResponse(k domain.Keyword) keywordResponse {
	return keywordResponse{ID: k.ID, Term: k.Term, Category: k.Category, CreatedAt: k.CreatedAt}
}

func toKeywordResponses(keywords []domain.Keyword) []keywordResponse {
	res := make([]keywordResponse, len(keywords))
	for i, k := range keywords {
		res[i] = toKeywordResponse(k)
	}
	return res
}

type pageResponse struct {
	ID              string     `json:"id"`
	URL             string     `json:"url"`
	Name            string     `json:"name"`
	CompetitorID    string     `json:"competitorId,omitempty"`
	SignalType      string     `json:"signalType"`
	LastContentHash string     `json:"lastContentHash,omitempty"`
	LastCheckedAt   *time.Time `json:"lastCheckedAt,omitempty"`
	Enabled         bool       `json:"enabled"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func toPageResponse(p domain.MonitoredPage) pageResponse {
	return pageResponse{
		ID:              p.ID,
		URL:             p.URL,
		Name:            p.Name,
		CompetitorID:    p.CompetitorID,
		SignalType:      p.SignalType,
		LastContentHash: p.LastContentHash,
		LastCheckedAt:   p.LastCheckedAt,
		Enabled:         p.Enabled,
		CreatedAt:       p.CreatedAt,
	}
}

func toPageResponses(pages []domain.MonitoredPage) []pageResponse {
	res := make([]pageResponse, len(pages))
	for i, p := range pages {
		res[i] = toPageResponse(p)
	}
	return res
}
