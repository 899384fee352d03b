package validation

import (
	"strings"
	"testing"
)

func TestSanitizeText_StripsScriptTagsWithContents(t *testing.T) {
	got := SanitizeText(`Spring Show <script>alert(1)</script> Finale`)
	if strings.Contains(got, "script") || strings.Contains(got, "alert") {
		t.Fatalf("script content survived: %q", got)
	}
	if !strings.Contains(got, "Spring Show") || !strings.Contains(got, "Finale") {
		t.Fatalf("surrounding text lost: %q", got)
	}
}

func TestSanitizeText_StripsDanglingScriptTag(t *testing.T) {
	got := SanitizeText(`before <script src=evil.js> after`)
	if strings.Contains(strings.ToLower(got), "<script") {
		t.Fatalf("dangling tag survived: %q", got)
	}
}

func TestSanitizeText_StripsJavascriptURI(t *testing.T) {
	got := SanitizeText(`click javascript:doEvil() here`)
	if strings.Contains(strings.ToLower(got), "javascript:") {
		t.Fatalf("javascript uri survived: %q", got)
	}
}

func TestSanitizeText_StripsEventHandlers(t *testing.T) {
	got := SanitizeText(`<img onerror="steal()"> venue`)
	if strings.Contains(strings.ToLower(got), "onerror") {
		t.Fatalf("event handler survived: %q", got)
	}
}

func TestSanitizeText_RemovesQuotesAndSemicolons(t *testing.T) {
	got := SanitizeText(`it's a "big" show; really`)
	for _, bad := range []string{`"`, `'`, ";"} {
		if strings.Contains(got, bad) {
			t.Fatalf("%q survived: %q", bad, got)
		}
	}
}

func TestSanitizeText_TrimsWhitespace(t *testing.T) {
	if got := SanitizeText("  plain text  "); got != "plain text" {
		t.Fatalf("expected trimmed text, got %q", got)
	}
}

func TestSanitizeText_PlainTextUntouched(t *testing.T) {
	in := "Fall 2026 Runway Show at Pier 59"
	if got := SanitizeText(in); got != in {
		t.Fatalf("plain text changed: %q", got)
	}
}
