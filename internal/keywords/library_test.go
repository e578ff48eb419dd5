package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caveat-dev/caveat/internal/models"
)

func TestDefaultCoversAllCategories(t *testing.T) {
	lib := Default()
	require.NotNil(t, lib)

	cats := lib.Categories()
	assert.Len(t, cats, len(models.AllCategories()))
	for _, c := range models.AllCategories() {
		assert.NotEmpty(t, lib.Entries(c), "category %s has no entries", c)
	}
}

func TestSearchCategory_WordBoundaries(t *testing.T) {
	lib := Default()

	// "penalty" should match as a whole word only.
	matches := lib.SearchCategory("A penalty applies to late delivery.", models.CategoryFinancial)
	found := false
	for _, em := range matches {
		if em.Entry.Pattern == "penalty" {
			found = true
			require.Len(t, em.Matches, 1)
			assert.Equal(t, "penalty", strings.ToLower(em.Matches[0].Text))
		}
	}
	assert.True(t, found, "expected penalty to match")

	// Embedded inside another word it should not match.
	matches = lib.SearchCategory("the penaltyfree option", models.CategoryFinancial)
	for _, em := range matches {
		assert.NotEqual(t, "penalty", em.Entry.Pattern)
	}
}

func TestSearchCategory_CaseInsensitive(t *testing.T) {
	lib := Default()
	matches := lib.SearchCategory("Customer agrees to UNLIMITED LIABILITY for all losses.", models.CategoryFinancial)

	var patterns []string
	for _, em := range matches {
		patterns = append(patterns, em.Entry.Pattern)
	}
	assert.Contains(t, patterns, "unlimited liability")
}

func TestSearchCategory_RegexEntries(t *testing.T) {
	lib := Default()

	matches := lib.SearchCategory("Fees increase by 15% each year.", models.CategoryFinancial)
	found := false
	for _, em := range matches {
		if em.Entry.IsRegex && strings.Contains(em.Entry.Pattern, "increase") {
			found = true
			assert.Equal(t, "increase by 15%", em.Matches[0].Text)
		}
	}
	assert.True(t, found, "expected percentage increase regex to match")

	matches = lib.SearchCategory("Either party may terminate upon 30 days' written notice.", models.CategoryTermination)
	found = false
	for _, em := range matches {
		if em.Entry.IsRegex && strings.Contains(em.Entry.Pattern, "notice") {
			found = true
		}
	}
	assert.True(t, found, "expected notice period regex to match")
}

func TestSearchAll_OmitsEmptyCategories(t *testing.T) {
	lib := Default()
	results := lib.SearchAll("The quick brown fox jumps over the lazy dog.")
	assert.Empty(t, results)

	results = lib.SearchAll("Vendor shall indemnify and hold harmless Customer from any claims.")
	require.Contains(t, results, models.CategoryLegalLiability)
	assert.NotEmpty(t, results[models.CategoryLegalLiability])
}

func TestSearchAll_MatchOffsets(t *testing.T) {
	lib := Default()
	text := "This contract includes binding arbitration in Delaware."
	results := lib.SearchAll(text)

	require.Contains(t, results, models.CategoryDisputeResolution)
	for _, em := range results[models.CategoryDisputeResolution] {
		for _, m := range em.Matches {
			assert.GreaterOrEqual(t, m.Start, 0)
			assert.LessOrEqual(t, m.End, len(text))
			assert.Equal(t, text[m.Start:m.End], m.Text)
		}
	}
}

func TestContext(t *testing.T) {
	text := strings.Repeat("a", 300)

	// Match in the middle gets ellipses on both sides.
	ctx := Context(text, 150, 160, 100)
	assert.True(t, strings.HasPrefix(ctx, "..."))
	assert.True(t, strings.HasSuffix(ctx, "..."))

	// Match at the start has no leading ellipsis.
	ctx = Context(text, 0, 10, 100)
	assert.False(t, strings.HasPrefix(ctx, "..."))
	assert.True(t, strings.HasSuffix(ctx, "..."))

	// Short text needs no ellipses at all.
	ctx = Context("short text", 0, 5, 100)
	assert.Equal(t, "short text", ctx)
}
