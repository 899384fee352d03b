package validation

import (
	"regexp"
	"strings"
)

var (
	scriptTagRE    = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	danglingTagRE  = regexp.MustCompile(`(?i)</?script\b[^>]*>`)
	jsURIRE        = regexp.MustCompile(`(?i)javascript\s*:`)
	eventHandlerRE = regexp.MustCompile(`(?i)\bon\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
	quoteSemiRepl  = strings.NewReplacer(`"`, "", `'`, "", ";", "")
)

// SanitizeText strips script tags (with their contents), javascript: URIs,
// inline event-handler attributes, and quote/semicolon characters, then
// trims. Defense in depth for text headed into prompts or storage; it is NOT
// a full HTML sanitizer and does not replace output-context escaping at
// render time.
func SanitizeText(s string) string {
	s = scriptTagRE.ReplaceAllString(s, "")
	s = danglingTagRE.ReplaceAllString(s, "")
	s = jsURIRE.ReplaceAllString(s, "")
	s = eventHandlerRE.ReplaceAllString(s, "")
	s = quoteSemiRepl.Replace(s)
	return strings.TrimSpace(s)
}
