package validators

import (
	"html"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// sqlMetaPattern matches SQL keywords and comment/terminator meta-syntax.
// It is a second line of defense only; backends must use parameterized
// queries regardless.
var sqlMetaPattern = regexp.MustCompile(`(?i)(\b(SELECT|INSERT|DELETE|UPDATE|DROP|UNION|EXEC|ALTER)\b)|('|--|;|/\*|\*/)`)

// markupFilter reports whether text contains markup that a strict HTML
// policy would strip.
type markupFilter struct {
	policy *bluemonday.Policy
}

func newMarkupFilter() *markupFilter {
	return &markupFilter{policy: bluemonday.StrictPolicy()}
}

// containsMarkup sanitizes text with the strict policy and compares the
// unescaped result with the input. Plain text survives the round trip
// unchanged; tags, comments and script bodies do not.
func (f *markupFilter) containsMarkup(text string) bool {
	return html.UnescapeString(f.policy.Sanitize(text)) != text
}

func containsSQLMeta(text string) bool {
	return sqlMetaPattern.MatchString(text)
}
