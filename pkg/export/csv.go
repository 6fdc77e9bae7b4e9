package export

import (
	"strings"
	"time"

	"github.com/umputun/intelscope/pkg/domain"
)

// column order matches the JSON field order of ExportRow
var csvHeaders = []string{
	"id", "title", "rawContent", "sourceUrl", "sourcePlatform", "signalType",
	"createdAt", "competitorName", "competitorDomain", "keywordTerm", "keywordCategory",
}

// CSV renders rows as comma-delimited text. A value containing a comma,
// a quote or a newline is wrapped in quotes with internal quotes
// doubled; unset references render as empty fields. No rows yields an
// empty string, not a lone header line.
func CSV(rows []domain.ExportRow) string {
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Join(csvHeaders, ","))

	for _, row := range rows {
		fields := []string{
			row.ID, row.Title, row.RawContent, row.SourceURL, row.SourcePlatform, row.SignalType,
			row.CreatedAt.UTC().Format(time.RFC3339),
			deref(row.CompetitorName), deref(row.CompetitorDomain),
			deref(row.KeywordTerm), deref(row.KeywordCategory),
		}
		b.WriteString("\n")
		for i, f := range fields {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(escapeField(f))
		}
	}
	return b.String()
}

// escapeField applies the field-needs-quoting rule
func escapeField(v string) string {
	if !strings.ContainsAny(v, ",\"\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
