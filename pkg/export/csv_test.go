package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/intelscope/pkg/domain"
)

func TestCSV_Empty(t *testing.T) {
	assert.Equal(t, "", CSV(nil), "no rows should produce empty output, not a header line")
	assert.Equal(t, "", CSV([]domain.ExportRow{}))
}

func TestCSV_Rows(t *testing.T) {
	name := "Acme"
	dom := "acme.com"
	created := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

	rows := []domain.ExportRow{
		{
			ID:               "id-1",
			Title:            "plain title",
			RawContent:       "plain content",
			SourceURL:        "https://example.com/1",
			SourcePlatform:   domain.PlatformWebsite,
			SignalType:       domain.SignalHiring,
			CreatedAt:        created,
			CompetitorName:   &name,
			CompetitorDomain: &dom,
		},
		{
			ID:             "id-2",
			Title:          `a,b"c`,
			RawContent:     "line one\nline two",
			SourceURL:      "https://example.com/2",
			SourcePlatform: domain.PlatformReddit,
			SignalType:     domain.SignalCustomerPain,
			CreatedAt:      created,
		},
	}

	out := CSV(rows)
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)

	assert.Equal(t, "id,title,rawContent,sourceUrl,sourcePlatform,signalType,createdAt,competitorName,competitorDomain,keywordTerm,keywordCategory", lines[0])

	assert.Contains(t, lines[1], "id-1,plain title,plain content")
	assert.Contains(t, lines[1], "2025-08-30T12:00:00Z")
	assert.Contains(t, lines[1], "Acme,acme.com")
	assert.True(t, strings.HasSuffix(lines[1], ",,"), "unset keyword reference renders as empty fields")

	// comma and quote force quoting with doubled internal quotes
	assert.Contains(t, out, `"a,b""c"`)
	// embedded newline is quoted, splitting the physical line
	assert.Contains(t, out, `"line one`)
}

func TestEscapeField(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"plain", "plain"},
		{"", ""},
		{"with,comma", `"with,comma"`},
		{`with"quote`, `"with""quote"`},
		{"with\nnewline", "\"with\nnewline\""},
		{`a,b"c`, `"a,b""c"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, escapeField(tt.in), "input %q", tt.in)
	}
}
