// Package sanitize strips untrusted HTML in signal content down to a
// small formatting allow-list before it reaches a renderer.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans untrusted HTML. Safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New creates a sanitizer allowing basic formatting tags and safe link
// attributes only
func New() *Sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "strong", "em", "u",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "a", "blockquote", "code", "pre", "div", "span")
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowAttrs("class").Globally()
	p.AllowStandardURLs()

	return &Sanitizer{policy: p}
}

// Clean returns html with everything outside the allow-list removed
func (s *Sanitizer) Clean(html string) string {
	return s.policy.Sanitize(html)
}
