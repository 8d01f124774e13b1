// Package normalize cleans raw message content and timestamps from a chat
// export. Both normalizers are pure and never fail: malformed markup passes
// through untouched and unparseable timestamps fall back to the raw string.
package normalize

import (
	"html"
	"regexp"
	"strings"
	"time"
)

var (
	pairedMarkup      = regexp.MustCompile(`<e_m\b[^>]*>(?:.*?)</e_m>`)
	selfClosingMarkup = regexp.MustCompile(`<e_m\b[^>]*/>`)
)

// CleanContent decodes HTML/XML character entities, then removes <e_m>
// edit-marker spans including any text they enclose, plus self-closing
// <e_m .../> tags. Surrounding text is left untouched.
func CleanContent(raw string) string {
	text := html.UnescapeString(raw)
	text = pairedMarkup.ReplaceAllString(text, "")
	text = selfClosingMarkup.ReplaceAllString(text, "")
	return text
}

// displayLayout renders instants on a 12-hour clock, e.g.
// "March 19, 2025 09:15:44 PM".
const displayLayout = "January 02, 2006 03:04:05 PM"

// parseLayouts covers the timestamp shapes seen in exports. Fractional
// seconds are optional in the first layout; offsets and date-only values
// are tolerated.
var parseLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02",
}

// Timestamp is the result of normalizing a raw timestamp string. When
// parsing fails, Display carries the raw input and HasInstant is false.
// Callers sort such records as the earliest possible instant.
type Timestamp struct {
	Display    string
	Instant    time.Time
	HasInstant bool
}

// ParseTimestamp strips one trailing "Z" and parses the remainder as an
// ISO-8601-like date-time. Failure is not an error; the raw string comes
// back as the display value.
func ParseTimestamp(raw string) Timestamp {
	trimmed := strings.TrimSuffix(raw, "Z")
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return Timestamp{
				Display:    t.Format(displayLayout),
				Instant:    t,
				HasInstant: true,
			}
		}
	}
	return Timestamp{Display: raw}
}
