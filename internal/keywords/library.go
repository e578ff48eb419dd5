// Package keywords holds the weighted phrase catalog used for contract risk
// detection and the matching machinery that runs it against clause text.
package keywords

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/caveat-dev/caveat/internal/models"
)

// Entry is a single keyword or phrase to detect. Weight runs from 0.5 for
// neutral or protective language up to 3.0 for critical exposure.
type Entry struct {
	Pattern     string
	Description string
	Weight      float64
	IsRegex     bool
}

// Match is one occurrence of an entry in a piece of text. Start and End are
// byte offsets into the searched string.
type Match struct {
	Text  string
	Start int
	End   int
}

// EntryMatches pairs an entry with every place it matched.
type EntryMatches struct {
	Entry   Entry
	Matches []Match
}

type compiledEntry struct {
	re    *regexp.Regexp
	entry Entry
}

// Library is a compiled keyword catalog, safe for concurrent use once built.
type Library struct {
	entries  map[models.RiskCategory][]Entry
	compiled map[models.RiskCategory][]compiledEntry
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
)

// Default returns the shared library built from the built-in catalog. The
// catalog compiles once on first use.
func Default() *Library {
	defaultOnce.Do(func() {
		lib, err := NewLibrary(catalog())
		if err != nil {
			// The built-in catalog is fixed at compile time, so a bad
			// pattern is a programming error.
			panic(fmt.Sprintf("keywords: built-in catalog failed to compile: %v", err))
		}
		defaultLib = lib
	})
	return defaultLib
}

// NewLibrary compiles a catalog into a searchable library. Plain entries are
// matched case-insensitively on word boundaries; regex entries compile as
// written with case-insensitive multiline flags.
func NewLibrary(entries map[models.RiskCategory][]Entry) (*Library, error) {
	lib := &Library{
		entries:  entries,
		compiled: make(map[models.RiskCategory][]compiledEntry, len(entries)),
	}
	for category, list := range entries {
		compiled := make([]compiledEntry, 0, len(list))
		for _, e := range list {
			var expr string
			if e.IsRegex {
				expr = `(?im)` + e.Pattern
			} else {
				expr = `(?i)\b` + regexp.QuoteMeta(e.Pattern) + `\b`
			}
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("compiling pattern %q for category %s: %w", e.Pattern, category, err)
			}
			compiled = append(compiled, compiledEntry{re: re, entry: e})
		}
		lib.compiled[category] = compiled
	}
	return lib, nil
}

// Entries returns the raw entries for a category.
func (l *Library) Entries(category models.RiskCategory) []Entry {
	return l.entries[category]
}

// Categories returns every category the library covers.
func (l *Library) Categories() []models.RiskCategory {
	cats := make([]models.RiskCategory, 0, len(l.compiled))
	for c := range l.compiled {
		cats = append(cats, c)
	}
	return cats
}

// SearchAll runs every category's patterns over text. Categories with no
// matches are omitted from the result.
func (l *Library) SearchAll(text string) map[models.RiskCategory][]EntryMatches {
	results := make(map[models.RiskCategory][]EntryMatches)
	for category := range l.compiled {
		if found := l.SearchCategory(text, category); len(found) > 0 {
			results[category] = found
		}
	}
	return results
}

// SearchCategory runs a single category's patterns over text. Entries that
// never match are omitted.
func (l *Library) SearchCategory(text string, category models.RiskCategory) []EntryMatches {
	compiled, ok := l.compiled[category]
	if !ok {
		return nil
	}
	var results []EntryMatches
	for _, ce := range compiled {
		locs := ce.re.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}
		matches := make([]Match, 0, len(locs))
		for _, loc := range locs {
			matches = append(matches, Match{
				Text:  text[loc[0]:loc[1]],
				Start: loc[0],
				End:   loc[1],
			})
		}
		results = append(results, EntryMatches{Entry: ce.entry, Matches: matches})
	}
	return results
}

// DefaultContextChars is the window used around a match when extracting its
// surrounding context.
const DefaultContextChars = 100

// Context returns the text surrounding a match, with ellipses marking
// truncation at either end.
func Context(text string, start, end, contextChars int) string {
	ctxStart := start - contextChars
	if ctxStart < 0 {
		ctxStart = 0
	}
	ctxEnd := end + contextChars
	if ctxEnd > len(text) {
		ctxEnd = len(text)
	}

	prefix := ""
	if ctxStart > 0 {
		prefix = "..."
	}
	suffix := ""
	if ctxEnd < len(text) {
		suffix = "..."
	}
	return prefix + text[ctxStart:ctxEnd] + suffix
}
