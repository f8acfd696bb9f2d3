package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTestCorpus(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "kjv.json")
	content := `[
		{"abbrev": "gn", "chapters": [[
			"In the beginning God created the heaven and the earth.",
			"And the earth was without form, and void."
		]]},
		{"abbrev": "jn", "chapters": [
			["c1v1"], ["c2v1"],
			["v1","v2","v3","v4","v5","v6","v7","v8","v9","v10","v11","v12","v13","v14","v15",
			 "For God so loved the world {note} that he gave his only begotten Son"]
		]}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunPipelineCheck(t *testing.T) {
	dir := t.TempDir()
	corpusPath := writeTestCorpus(t, dir)

	refsPath := filepath.Join(dir, "refs.txt")
	if err := os.WriteFile(refsPath, []byte("John 3:16\nNotABook 1:1\nGenesis 1:1-2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := RunnerConfig{CorpusPath: corpusPath, RefsPath: refsPath, Check: true}
	result, err := runPipeline(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if result.Wrote {
		t.Error("check mode must not write")
	}
	if got := len(result.Theme.Questions); got != 3 {
		t.Errorf("got %d questions, want 3", got)
	}
	if result.Metrics.RefsAttempted != 3 {
		t.Errorf("RefsAttempted = %d, want 3", result.Metrics.RefsAttempted)
	}
	if result.Metrics.Warnings != 1 {
		t.Errorf("Warnings = %d, want 1", result.Metrics.Warnings)
	}
	if result.Theme.ThemeName != defaultThemeName {
		t.Errorf("theme_name = %q, want default", result.Theme.ThemeName)
	}

	want := "For God so loved the world  that he gave his only begotten Son"
	if result.Theme.Questions[0].VerseText != want {
		t.Errorf("verse_text = %q, want %q", result.Theme.Questions[0].VerseText, want)
	}
}

func TestRunPipelineThemeOverride(t *testing.T) {
	dir := t.TempDir()
	corpusPath := writeTestCorpus(t, dir)
	refsPath := filepath.Join(dir, "refs.txt")
	if err := os.WriteFile(refsPath, []byte("Genesis 1:1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := RunnerConfig{
		CorpusPath:  corpusPath,
		RefsPath:    refsPath,
		ThemeName:   "Creation",
		Description: "Opening verses",
		Check:       true,
	}
	result, err := runPipeline(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if result.Theme.ThemeName != "Creation" || result.Theme.Description != "Opening verses" {
		t.Errorf("overrides not applied: %q / %q", result.Theme.ThemeName, result.Theme.Description)
	}
}

func TestRunPipelineStrict(t *testing.T) {
	dir := t.TempDir()
	corpusPath := writeTestCorpus(t, dir)
	refsPath := filepath.Join(dir, "refs.txt")
	if err := os.WriteFile(refsPath, []byte("NotABook 1:1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := RunnerConfig{CorpusPath: corpusPath, RefsPath: refsPath, Check: true, Strict: true}
	result, err := runPipeline(context.Background(), cfg)
	if err == nil {
		t.Fatal("strict mode with warnings must fail")
	}
	if !result.Metrics.StrictFailed {
		t.Error("StrictFailed not set")
	}
}

func TestRunPipelineFlagConflict(t *testing.T) {
	if _, err := runPipeline(context.Background(), RunnerConfig{Check: true, Write: true}); err == nil {
		t.Error("--check with --write must fail")
	}
}

func TestRunPipelineMissingCorpus(t *testing.T) {
	cfg := RunnerConfig{CorpusPath: filepath.Join(t.TempDir(), "missing.json"), Check: true}
	if _, err := runPipeline(context.Background(), cfg); err == nil {
		t.Error("missing corpus must abort the run")
	}
}
