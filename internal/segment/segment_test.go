package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sectionedContract = `1. Term. This Agreement commences on the Effective Date and continues for an initial term of three years unless terminated earlier.

2. Payment. Customer shall pay all fees within thirty days of invoice. Late payments accrue interest at the default rate.

3. Liability. Vendor shall indemnify and hold harmless Customer from any and all claims arising out of Vendor's performance.

4. Termination. Either party may terminate this Agreement upon ninety days prior written notice to the other party.`

func TestSplit_SectionedDocument(t *testing.T) {
	clauses := Split(sectionedContract)
	require.GreaterOrEqual(t, len(clauses), 3)

	for i, c := range clauses {
		assert.Equal(t, i, c.Index)
		assert.True(t, strings.HasPrefix(c.ID, "section_"), "clause ID %s", c.ID)
		// Header is prepended to the section body.
		assert.Contains(t, c.Text, "\n")
	}
	assert.Contains(t, clauses[0].Text, "Term")
}

func TestSplit_ProseFallsBackToParagraphs(t *testing.T) {
	text := "The parties agree to cooperate in good faith on all matters arising under this agreement.\n\n" +
		"Confidential information shall be protected by both parties for a period of five years after disclosure.\n\n" +
		"Any disputes will first be submitted to mediation before either party may file suit in any court."

	clauses := Split(text)
	require.Len(t, clauses, 3)
	for i, c := range clauses {
		assert.Equal(t, i, c.Index)
		assert.True(t, strings.HasPrefix(c.ID, "paragraph_"), "clause ID %s", c.ID)
	}
}

func TestSplit_ShortParagraphsDiscarded(t *testing.T) {
	text := "Short.\n\n" +
		"This paragraph is comfortably longer than the minimum length threshold and therefore survives segmentation.\n\n" +
		"Tiny."

	clauses := Split(text)
	require.Len(t, clauses, 1)
	// Paragraph IDs keep their original position in the document.
	assert.Equal(t, "paragraph_2", clauses[0].ID)
}

func TestSplit_SingleBlockBecomesFullDocument(t *testing.T) {
	clauses := Split("too short to be a paragraph")
	require.Len(t, clauses, 1)
	assert.Equal(t, FullDocumentID, clauses[0].ID)
	assert.Equal(t, 0, clauses[0].Index)
}

func TestSplit_ArticleHeaders(t *testing.T) {
	text := "ARTICLE I. Definitions\nCapitalized terms used in this Agreement have the meanings given to them in this Article.\n" +
		"ARTICLE II. Services\nProvider shall perform the services described in each statement of work with reasonable care.\n" +
		"ARTICLE III. Fees\nClient shall pay the fees set out in Exhibit A within thirty days of receipt of each invoice.\n" +
		"ARTICLE IV. Termination\nEither party may terminate this Agreement for material breach after a thirty day cure period."

	clauses := Split(text)
	require.GreaterOrEqual(t, len(clauses), 3)
	assert.Contains(t, clauses[0].Text, "ARTICLE I")
}

func TestSplit_FewerThanThreeHeadersUsesParagraphs(t *testing.T) {
	text := "1. Term. This Agreement lasts one year from the Effective Date unless renewed by both parties in writing.\n\n" +
		"The rest of this document is plain prose without any numbering and should be treated as paragraphs instead."

	clauses := Split(text)
	require.NotEmpty(t, clauses)
	for _, c := range clauses {
		assert.True(t, strings.HasPrefix(c.ID, "paragraph_"), "clause ID %s", c.ID)
	}
}
