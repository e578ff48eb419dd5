// Package segment splits raw contract text into ordered clause candidates.
// Structured documents are split on section headers; plain prose falls back
// to paragraph splitting, and as a last resort the whole document becomes a
// single clause.
package segment

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Clause is one segmented unit of contract text. Index is the clause's stable
// position in document order, assigned at segmentation time so parallel
// analysis can be collected back in order.
type Clause struct {
	ID    string
	Text  string
	Index int
}

const (
	// FullDocumentID is the clause ID used when a document cannot be split.
	FullDocumentID = "full_document"

	minSectionLen   = 30
	minParagraphLen = 50
)

// Section header shapes found in real contracts. Numbered headers like
// "12. Term" or "3.2 Payment:", lettered items like "(a)", and spelled-out
// "ARTICLE IV" / "SECTION 5" headings.
var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)(?:^|\n)(\d+(?:\.\d+)*\.?\s*[A-Z][^.]*?[.:])`),
	regexp.MustCompile(`(?m)(?:^|\n)(\([a-z]\)\s+[A-Z][^\n]*)`),
	regexp.MustCompile(`(?m)(?:^|\n)((?:ARTICLE|SECTION)\s+(?:[IVXLC]+|\d+)[.:]?[^\n]*)`),
}

type headerMatch struct {
	header string
	start  int // offset of the full match, including any leading newline
	end    int // offset where section content begins
}

// Split segments text into clauses. At least one clause is always returned
// for non-empty input.
func Split(text string) []Clause {
	headers := findHeaders(text)

	var clauses []Clause
	if len(headers) >= 3 {
		clauses = splitSections(text, headers)
	} else {
		clauses = splitParagraphs(text)
	}

	if len(clauses) == 0 {
		clauses = append(clauses, Clause{ID: FullDocumentID, Text: text, Index: 0})
	}
	return clauses
}

func findHeaders(text string) []headerMatch {
	var headers []headerMatch
	for _, re := range headerPatterns {
		for _, idx := range re.FindAllStringSubmatchIndex(text, -1) {
			headers = append(headers, headerMatch{
				header: strings.TrimSpace(text[idx[2]:idx[3]]),
				start:  idx[0],
				end:    idx[1],
			})
		}
	}
	sort.Slice(headers, func(i, j int) bool { return headers[i].start < headers[j].start })

	// Different patterns can claim the same header line. Keep the first.
	deduped := headers[:0]
	lastStart := -1
	for _, h := range headers {
		if h.start == lastStart {
			continue
		}
		deduped = append(deduped, h)
		lastStart = h.start
	}
	return deduped
}

func splitSections(text string, headers []headerMatch) []Clause {
	var clauses []Clause
	for i, h := range headers {
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1].start
		}
		content := strings.TrimSpace(text[h.end:end])
		if len(content) <= minSectionLen {
			continue
		}
		clauses = append(clauses, Clause{
			ID:    fmt.Sprintf("section_%d", i+1),
			Text:  h.header + "\n" + content,
			Index: len(clauses),
		})
	}
	return clauses
}

func splitParagraphs(text string) []Clause {
	var clauses []Clause
	for i, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if len(para) <= minParagraphLen {
			continue
		}
		clauses = append(clauses, Clause{
			ID:    fmt.Sprintf("paragraph_%d", i+1),
			Text:  para,
			Index: len(clauses),
		})
	}
	return clauses
}
