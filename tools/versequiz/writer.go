package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/itchyny/json2yaml"
	"github.com/tidwall/sjson"
)

func writeOutputs(result PipelineResult, outPath string, doWrite bool) error {
	if !doWrite {
		return nil
	}

	if err := ensureDir(filepath.Dir(outPath)); err != nil {
		return err
	}
	if err := ensureDir("build/reports"); err != nil {
		return err
	}
	if err := ensureDir("build/rejects"); err != nil {
		return err
	}

	if err := writeJSON(outPath, result.Theme); err != nil {
		return err
	}

	auditContent := generateAudit(result)
	if err := os.WriteFile("build/reports/audit.md", []byte(auditContent), 0o644); err != nil {
		return err
	}

	return writeRejects(result.Warnings)
}

func ensureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

func writeRejects(warnings []warning) error {
	for i, w := range warnings {
		name := fmt.Sprintf("%03d_%s.yaml", i+1, slugify(string(w.Kind)))
		payload := map[string]any{
			"condition": string(w.Kind),
			"context":   w.Context,
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		data, err = sjson.SetBytes(data, "meta.generated_at", time.Now().Format(time.RFC3339))
		if err != nil {
			return err
		}
		var yaml bytes.Buffer
		if err := json2yaml.Convert(&yaml, bytes.NewReader(data)); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join("build", "rejects", name), yaml.Bytes(), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func formatSummaryLines(result PipelineResult) []string {
	lines := []string{
		fmt.Sprintf("🔍  Attempted %d references", result.Metrics.RefsAttempted),
		fmt.Sprintf("📘  Extracted %d verses into %d questions", result.Metrics.VersesExtracted, result.Metrics.QuestionCount),
		fmt.Sprintf("⚠️  %d warnings", result.Metrics.Warnings),
	}
	if result.Strict && result.Metrics.Warnings > 0 {
		lines = append(lines, "❌  strict mode failed")
	}
	if result.Wrote {
		lines = append(lines, "✨ Done! Dataset written")
	} else {
		lines = append(lines, "✨ Done! Validation completed (no files written)")
	}
	return lines
}

func stringifySummary(result PipelineResult) string {
	return strings.Join(formatSummaryLines(result), "\n")
}

func slugify(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return ""
	}
	replacer := strings.NewReplacer(" ", "-", "_", "-", "--", "-")
	lower = replacer.Replace(lower)
	buf := make([]rune, 0, len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			buf = append(buf, r)
		}
	}
	collapsed := strings.Trim(strings.ReplaceAll(string(buf), "--", "-"), "-")
	return collapsed
}
