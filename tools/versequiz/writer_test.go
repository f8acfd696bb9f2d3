package main

import (
	"strings"
	"testing"
	"time"
)

func testResult() PipelineResult {
	return PipelineResult{
		Theme: ThemeFile{ThemeName: defaultThemeName, Description: defaultDescription},
		Warnings: []warning{
			{Kind: warnVerseOutOfRange, Context: "Genesis 1:40"},
			{Kind: warnUnknownBook, Context: "NotABook"},
		},
		Metrics: Metrics{
			RefsAttempted:   10,
			RefsParsed:      9,
			VersesExtracted: 12,
			QuestionCount:   12,
			Warnings:        2,
		},
		Started:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Duration: 42 * time.Millisecond,
	}
}

func TestGenerateAudit(t *testing.T) {
	audit := generateAudit(testResult())

	for _, want := range []string{
		"References attempted: 10",
		"References parsed: 9",
		"Verses extracted: 12",
		"Quiz questions: 12",
		"Warnings: 2",
		"`UnknownBook`: NotABook",
		"`VerseOutOfRange`: Genesis 1:40",
	} {
		if !strings.Contains(audit, want) {
			t.Errorf("audit missing %q:\n%s", want, audit)
		}
	}

	// UnknownBook warnings pull in the book-name appendix.
	if !strings.Contains(audit, "## Known book names") {
		t.Errorf("audit missing book-name appendix:\n%s", audit)
	}
	if !strings.Contains(audit, "- Song of Solomon") {
		t.Errorf("appendix missing book names:\n%s", audit)
	}

	// Warnings section is sorted by kind, so UnknownBook precedes VerseOutOfRange.
	if strings.Index(audit, "UnknownBook") > strings.Index(audit, "VerseOutOfRange") {
		t.Error("warnings not sorted by kind")
	}
}

func TestGenerateAuditNoAppendixWithoutUnknownBook(t *testing.T) {
	result := testResult()
	result.Warnings = result.Warnings[:1]
	audit := generateAudit(result)
	if strings.Contains(audit, "## Known book names") {
		t.Error("appendix present without UnknownBook warnings")
	}
}

func TestFormatSummaryLines(t *testing.T) {
	result := testResult()
	summary := stringifySummary(result)

	if !strings.Contains(summary, "Attempted 10 references") {
		t.Errorf("summary missing attempt count:\n%s", summary)
	}
	if !strings.Contains(summary, "Extracted 12 verses into 12 questions") {
		t.Errorf("summary missing extraction count:\n%s", summary)
	}
	if !strings.Contains(summary, "2 warnings") {
		t.Errorf("summary missing warning count:\n%s", summary)
	}
	if strings.Contains(summary, "strict mode failed") {
		t.Errorf("strict failure reported without strict mode:\n%s", summary)
	}

	result.Strict = true
	if !strings.Contains(stringifySummary(result), "strict mode failed") {
		t.Error("strict failure not reported")
	}

	result.Wrote = true
	if !strings.Contains(stringifySummary(result), "Dataset written") {
		t.Error("write confirmation not reported")
	}
}

func TestWarningString(t *testing.T) {
	w := warning{Kind: warnUnknownBook, Context: "NotABook"}
	if got := w.String(); got != "Warning: UnknownBook: NotABook" {
		t.Errorf("String() = %q", got)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ParseFailure", "parsefailure"},
		{"Unknown Book", "unknown-book"},
		{"  Mixed_Case Name  ", "mixed-case-name"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := slugify(tt.input); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestKnownBookNamesSorted(t *testing.T) {
	names := knownBookNames()
	if len(names) != len(bookAbbrev) {
		t.Fatalf("got %d names, want %d", len(names), len(bookAbbrev))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}
