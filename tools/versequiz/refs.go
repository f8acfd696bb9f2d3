package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

var (
	numberedPrefix = regexp.MustCompile(`^\d+\.\s+`)
	trailingText   = regexp.MustCompile(`\s+[—–-]\s+.*$`)
)

// readReferenceFile loads citations from a text file, one per line. Blank
// lines and # comments are skipped. Lines in the curated-list format
// "N. <Reference> — <Text>" are reduced to the bare reference so those files
// feed straight in.
func readReferenceFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference list: %w", err)
	}
	defer f.Close()

	refs := make([]string, 0)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = numberedPrefix.ReplaceAllString(line, "")
		line = trailingText.ReplaceAllString(line, "")
		refs = append(refs, strings.TrimSpace(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan reference list: %w", err)
	}

	refs = lo.Filter(refs, func(item string, _ int) bool { return item != "" })
	if len(refs) == 0 {
		return nil, fmt.Errorf("%s contains no references", path)
	}
	return refs, nil
}
