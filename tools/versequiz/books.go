package main

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// bookAbbrev maps canonical English book names to the short identifiers used
// by kjv-full.json. "Psalm" and "Psalms" both resolve; the curated lists use
// the singular for individual psalms.
var bookAbbrev = map[string]string{
	"Genesis": "gn", "Exodus": "ex", "Leviticus": "lv", "Numbers": "nm", "Deuteronomy": "dt",
	"Joshua": "js", "Judges": "jd", "Ruth": "rt", "1 Samuel": "1sm", "2 Samuel": "2sm",
	"1 Kings": "1kgs", "2 Kings": "2kgs", "1 Chronicles": "1chr", "2 Chronicles": "2chr",
	"Ezra": "ezr", "Nehemiah": "neh", "Esther": "est", "Job": "jb", "Psalm": "ps", "Psalms": "ps",
	"Proverbs": "prv", "Ecclesiastes": "eccl", "Song of Solomon": "sng", "Isaiah": "is",
	"Jeremiah": "jer", "Lamentations": "lam", "Ezekiel": "ezk", "Daniel": "dn",
	"Hosea": "hs", "Joel": "jl", "Amos": "am", "Obadiah": "ob", "Jonah": "jnh",
	"Micah": "mi", "Nahum": "na", "Habakkuk": "hb", "Zephaniah": "zep", "Haggai": "hg",
	"Zechariah": "zec", "Malachi": "mal",
	"Matthew": "mt", "Mark": "mk", "Luke": "lk", "John": "jn",
	"Acts": "act", "Romans": "rom", "1 Corinthians": "1cor", "2 Corinthians": "2cor",
	"Galatians": "gal", "Ephesians": "eph", "Philippians": "phi", "Colossians": "col",
	"1 Thessalonians": "1th", "2 Thessalonians": "2th", "1 Timothy": "1tm", "2 Timothy": "2tm",
	"Titus": "ti", "Philemon": "phm", "Hebrews": "heb", "James": "jas",
	"1 Peter": "1pt", "2 Peter": "2pt", "1 John": "1jn", "2 John": "2jn", "3 John": "3jn",
	"Jude": "jude", "Revelation": "rv",
}

func knownBookNames() []string {
	names := maps.Keys(bookAbbrev)
	slices.Sort(names)
	return names
}
