package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildDataset(t *testing.T) {
	corpus := testCorpus()
	refs := []string{"John 3:16", "NotABook 1:1", "Genesis 1:1-2"}

	metrics := Metrics{}
	theme, warnings := buildDataset(refs, corpus, &metrics)

	if len(theme.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(theme.Questions))
	}
	for i, q := range theme.Questions {
		if q.ID != i+1 {
			t.Errorf("question %d has id %d, want %d", i, q.ID, i+1)
		}
	}

	wantRefs := []string{"John 3:16", "Genesis 1:1", "Genesis 1:2"}
	for i, q := range theme.Questions {
		if q.VerseReference != wantRefs[i] {
			t.Errorf("question %d reference = %q, want %q", i, q.VerseReference, wantRefs[i])
		}
		if q.Question != "What does "+wantRefs[i]+" say?" {
			t.Errorf("question %d text = %q", i, q.Question)
		}
		if q.CorrectAnswer != q.VerseText {
			t.Errorf("question %d correct_answer differs from verse_text", i)
		}
		if q.Options == nil || len(q.Options) != 0 {
			t.Errorf("question %d options = %v, want empty slice", i, q.Options)
		}
	}

	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
	}
	if warnings[0].Kind != warnUnknownBook {
		t.Errorf("warning kind = %s, want %s", warnings[0].Kind, warnUnknownBook)
	}

	if metrics.RefsAttempted != 3 {
		t.Errorf("RefsAttempted = %d, want 3", metrics.RefsAttempted)
	}
	if metrics.RefsParsed != 3 {
		t.Errorf("RefsParsed = %d, want 3", metrics.RefsParsed)
	}
	if metrics.VersesExtracted != 3 {
		t.Errorf("VersesExtracted = %d, want 3", metrics.VersesExtracted)
	}
	if metrics.QuestionCount != len(theme.Questions) {
		t.Errorf("QuestionCount = %d, want %d", metrics.QuestionCount, len(theme.Questions))
	}
}

func TestBuildDatasetParseFailure(t *testing.T) {
	corpus := testCorpus()
	refs := []string{"not a reference", "John 3:16-4:2", "John 3:16"}

	metrics := Metrics{}
	theme, warnings := buildDataset(refs, corpus, &metrics)

	if len(theme.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(theme.Questions))
	}
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warnings), warnings)
	}
	for _, w := range warnings {
		if w.Kind != warnParse {
			t.Errorf("warning kind = %s, want %s", w.Kind, warnParse)
		}
	}
	if metrics.RefsParsed != 1 {
		t.Errorf("RefsParsed = %d, want 1", metrics.RefsParsed)
	}
}

func TestBuildDatasetZeroNumberedCitations(t *testing.T) {
	corpus := testCorpus()
	refs := []string{"Genesis 0:1", "Genesis 1:0", "Genesis 1:1"}

	metrics := Metrics{}
	theme, warnings := buildDataset(refs, corpus, &metrics)

	if len(theme.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(theme.Questions))
	}
	if theme.Questions[0].VerseReference != "Genesis 1:1" {
		t.Errorf("question reference = %q, want %q", theme.Questions[0].VerseReference, "Genesis 1:1")
	}
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warnings), warnings)
	}
	for _, w := range warnings {
		if w.Kind != warnParse {
			t.Errorf("warning kind = %s, want %s", w.Kind, warnParse)
		}
	}
}

func TestBuildDatasetContiguousIDs(t *testing.T) {
	corpus := testCorpus()
	refs := []string{"Genesis 1:1-2", "John 3:16-17", "Genesis 1:1"}

	metrics := Metrics{}
	theme, _ := buildDataset(refs, corpus, &metrics)

	if len(theme.Questions) != 5 {
		t.Fatalf("got %d questions, want 5", len(theme.Questions))
	}
	for i, q := range theme.Questions {
		if q.ID != i+1 {
			t.Fatalf("ids not contiguous: question %d has id %d", i, q.ID)
		}
	}
}

func TestThemeFileJSON(t *testing.T) {
	theme := ThemeFile{
		ThemeName:   "Test Theme",
		Description: "desc",
		Questions: []QuizQuestion{
			{
				ID:             1,
				VerseReference: "John 3:16",
				VerseText:      "For God so loved the world",
				Question:       "What does John 3:16 say?",
				CorrectAnswer:  "For God so loved the world",
				Options:        []string{},
			},
		},
	}

	data, err := json.Marshal(theme)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	for _, field := range []string{
		`"theme_name"`, `"description"`, `"questions"`,
		`"id"`, `"verse_reference"`, `"verse_text"`,
		`"question"`, `"correct_answer"`, `"options"`,
	} {
		if !strings.Contains(out, field) {
			t.Errorf("serialized theme missing field %s: %s", field, out)
		}
	}
	if !strings.Contains(out, `"options":[]`) {
		t.Errorf("options must serialize as [], got: %s", out)
	}
}
