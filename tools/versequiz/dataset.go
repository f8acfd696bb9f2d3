package main

import "fmt"

// QuizQuestion is the downstream quiz app's question record. Field names are
// part of the external contract. Options stays empty here; the app populates
// it when assembling a round.
type QuizQuestion struct {
	ID             int      `json:"id"`
	VerseReference string   `json:"verse_reference"`
	VerseText      string   `json:"verse_text"`
	Question       string   `json:"question"`
	CorrectAnswer  string   `json:"correct_answer"`
	Options        []string `json:"options"`
}

// ThemeFile is the output document consumed by the quiz app.
type ThemeFile struct {
	ThemeName   string         `json:"theme_name"`
	Description string         `json:"description"`
	Questions   []QuizQuestion `json:"questions"`
}

// buildDataset parses and resolves every citation in order, skipping failed
// ones, and numbers the surviving verses 1..n across the whole output.
func buildDataset(refs []string, corpus Corpus, metrics *Metrics) (ThemeFile, []warning) {
	extracted := make([]ExtractedVerse, 0, len(refs))
	warnings := make([]warning, 0)

	for _, raw := range refs {
		metrics.RefsAttempted++

		ref, ok := ParseReference(raw)
		if !ok {
			warnings = append(warnings, warning{Kind: warnParse, Context: raw})
			continue
		}
		metrics.RefsParsed++

		verses, resolveWarnings := corpus.Resolve(ref)
		warnings = append(warnings, resolveWarnings...)
		extracted = append(extracted, verses...)
	}

	theme := ThemeFile{
		ThemeName:   defaultThemeName,
		Description: defaultDescription,
		Questions:   make([]QuizQuestion, 0, len(extracted)),
	}
	for i, verse := range extracted {
		theme.Questions = append(theme.Questions, QuizQuestion{
			ID:             i + 1,
			VerseReference: verse.Reference,
			VerseText:      verse.Text,
			Question:       fmt.Sprintf("What does %s say?", verse.Reference),
			CorrectAnswer:  verse.Text,
			Options:        []string{},
		})
	}

	metrics.VersesExtracted = len(extracted)
	metrics.QuestionCount = len(theme.Questions)
	metrics.Warnings = len(warnings)

	return theme, warnings
}
