package main

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// Book is one corpus entry: a short identifier plus chapters, each chapter an
// ordered list of verse strings (verse 1 at index 0).
type Book struct {
	Abbrev   string     `json:"abbrev"`
	Chapters [][]string `json:"chapters"`
}

// Corpus is the full ordered book list, read-only after load.
type Corpus []Book

// ExtractedVerse is one resolved verse with its annotations stripped.
type ExtractedVerse struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

// LoadCorpus reads and decodes the corpus document. Any failure here aborts
// the run before resolution starts.
func LoadCorpus(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("corpus %s is not valid JSON", path)
	}

	var corpus Corpus
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("decode corpus %s: %w", path, err)
	}
	if len(corpus) == 0 {
		return nil, fmt.Errorf("corpus %s contains no books", path)
	}
	return corpus, nil
}

// annotationPattern matches non-nesting {...} translator annotations.
var annotationPattern = regexp.MustCompile(`\{[^}]*\}`)

func stripAnnotations(text string) string {
	return strings.TrimSpace(annotationPattern.ReplaceAllString(text, ""))
}

// Resolve looks up a parsed reference in the corpus. A missing book or
// chapter yields a single warning and no verses; a verse past the end of the
// chapter yields a per-verse warning and the rest of the range still
// resolves. The corpus scan is linear, which is fine at 66 books.
func (c Corpus) Resolve(ref Reference) ([]ExtractedVerse, []warning) {
	abbrev, ok := bookAbbrev[ref.Book]
	if !ok {
		return nil, []warning{{Kind: warnUnknownBook, Context: ref.Book}}
	}

	var book *Book
	for i := range c {
		if c[i].Abbrev == abbrev {
			book = &c[i]
			break
		}
	}
	if book == nil {
		return nil, []warning{{Kind: warnBookNotInCorpus, Context: fmt.Sprintf("%s (%s)", ref.Book, abbrev)}}
	}

	if ref.Chapter-1 >= len(book.Chapters) {
		return nil, []warning{{Kind: warnChapterOutOfRange, Context: fmt.Sprintf("%s chapter %d", ref.Book, ref.Chapter)}}
	}
	chapter := book.Chapters[ref.Chapter-1]

	verses := make([]ExtractedVerse, 0, ref.EndVerse-ref.StartVerse+1)
	warnings := make([]warning, 0)
	for v := ref.StartVerse; v <= ref.EndVerse; v++ {
		if v-1 >= len(chapter) {
			warnings = append(warnings, warning{Kind: warnVerseOutOfRange, Context: fmt.Sprintf("%s %d:%d", ref.Book, ref.Chapter, v)})
			continue
		}
		verses = append(verses, ExtractedVerse{
			Reference: fmt.Sprintf("%s %d:%d", ref.Book, ref.Chapter, v),
			Text:      stripAnnotations(chapter[v-1]),
		})
	}
	return verses, warnings
}
