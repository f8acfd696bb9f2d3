package main

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/segmentio/ksuid"
	"golang.org/x/exp/slices"
)

type warnKind string

const (
	warnParse             warnKind = "ParseFailure"
	warnUnknownBook       warnKind = "UnknownBook"
	warnBookNotInCorpus   warnKind = "BookNotInCorpus"
	warnChapterOutOfRange warnKind = "ChapterOutOfRange"
	warnVerseOutOfRange   warnKind = "VerseOutOfRange"
)

// warning is a recoverable per-reference or per-verse condition. Warnings are
// aggregated in the result rather than raised, so one bad citation never
// stops the run.
type warning struct {
	Kind    warnKind
	Context string
}

func (w warning) String() string {
	return fmt.Sprintf("Warning: %s: %s", w.Kind, w.Context)
}

type Metrics struct {
	RefsAttempted   int
	RefsParsed      int
	VersesExtracted int
	QuestionCount   int
	Warnings        int
	StrictFailed    bool
}

type PipelineResult struct {
	Theme    ThemeFile
	Warnings []warning
	Metrics  Metrics
	Started  time.Time
	Duration time.Duration
	Strict   bool
	Wrote    bool
}

func sortedWarnings(warnings []warning) []warning {
	sorted := append([]warning(nil), warnings...)
	slices.SortFunc(sorted, func(a, b warning) int {
		if a.Kind != b.Kind {
			return strings.Compare(string(a.Kind), string(b.Kind))
		}
		return strings.Compare(a.Context, b.Context)
	})
	return sorted
}

func generateAudit(result PipelineResult) string {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "# VerseQuiz Audit\n\n")
	fmt.Fprintf(buf, "- Run id: %s\n", ksuid.New().String())
	fmt.Fprintf(buf, "- Run started: %s\n", result.Started.Format(time.RFC3339))
	fmt.Fprintf(buf, "- Duration: %s\n", result.Duration.String())
	fmt.Fprintf(buf, "- References attempted: %d\n", result.Metrics.RefsAttempted)
	fmt.Fprintf(buf, "- References parsed: %d\n", result.Metrics.RefsParsed)
	fmt.Fprintf(buf, "- Verses extracted: %d\n", result.Metrics.VersesExtracted)
	fmt.Fprintf(buf, "- Quiz questions: %d\n", result.Metrics.QuestionCount)
	fmt.Fprintf(buf, "- Warnings: %d\n", result.Metrics.Warnings)
	if result.Metrics.StrictFailed {
		fmt.Fprintf(buf, "- Strict mode failures detected\n")
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(buf, "\n## Warnings\n\n")
		for _, w := range sortedWarnings(result.Warnings) {
			fmt.Fprintf(buf, "- `%s`: %s\n", w.Kind, summarizeContext(w.Context))
		}
	}

	unknown := lo.SomeBy(result.Warnings, func(w warning) bool { return w.Kind == warnUnknownBook })
	if unknown {
		fmt.Fprintf(buf, "\n## Known book names\n\n")
		for _, name := range knownBookNames() {
			fmt.Fprintf(buf, "- %s\n", name)
		}
	}

	return buf.String()
}

func summarizeContext(context string) string {
	context = strings.TrimSpace(context)
	if len(context) > 120 {
		return context[:117] + "..."
	}
	return context
}
