package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Reference is a parsed citation. EndVerse equals StartVerse for single-verse
// citations; EndVerse >= StartVerse always holds.
type Reference struct {
	Book       string
	Chapter    int
	StartVerse int
	EndVerse   int
}

func (r Reference) String() string {
	if r.EndVerse > r.StartVerse {
		return fmt.Sprintf("%s %d:%d-%d", r.Book, r.Chapter, r.StartVerse, r.EndVerse)
	}
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.StartVerse)
}

// citationPattern accepts "Book C:V" and "Book C:V1-V2". The book part may
// carry a leading numeral ("1 Corinthians") and interior spaces ("Song of
// Solomon"). Cross-chapter ranges like "John 3:16-4:2" do not match; the
// curated lists never carried them and widening the grammar here would change
// what downstream consumers receive.
var citationPattern = regexp.MustCompile(`^((?:\d\s)?[A-Za-z\s]+)\s+(\d+):(\d+)(?:-(\d+))?$`)

var citationCleaner = strings.NewReplacer(
	"\u202F", " ",
	"\u00A0", " ",
	"–", "-",
	"—", "-",
)

// normalizeCitation maps the unicode spaces and dashes that show up in lists
// copied from the web onto their ASCII equivalents.
func normalizeCitation(raw string) string {
	return strings.TrimSpace(citationCleaner.Replace(raw))
}

// ParseReference parses a citation string. The second return value is false
// when the string does not match the citation grammar, names a reversed
// range, or carries a zero chapter or verse; callers record the failure and
// move on.
func ParseReference(raw string) (Reference, bool) {
	m := citationPattern.FindStringSubmatch(normalizeCitation(raw))
	if m == nil {
		return Reference{}, false
	}

	chapter, _ := strconv.Atoi(m[2])
	start, _ := strconv.Atoi(m[3])
	end := start
	if m[4] != "" {
		end, _ = strconv.Atoi(m[4])
	}
	// Chapters and verses are 1-based; a zero here would walk off the front
	// of the corpus slices.
	if chapter < 1 || start < 1 || end < start {
		return Reference{}, false
	}

	return Reference{
		Book:       strings.TrimSpace(m[1]),
		Chapter:    chapter,
		StartVerse: start,
		EndVerse:   end,
	}, true
}
