package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords_EmptyInput(t *testing.T) {
	assert.Equal(t, []string{}, ExtractKeywords(""))
}

func TestExtractKeywords_PunctuationOnly(t *testing.T) {
	assert.Empty(t, ExtractKeywords("... !!! 123 ,,,"))
}

func TestExtractKeywords_Lowercases(t *testing.T) {
	got := ExtractKeywords("FOOTBALL")
	assert.Contains(t, got, "football")
	assert.NotContains(t, got, "FOOTBALL")
}

func TestExtractKeywords_SplitsOnPunctuationAndDigits(t *testing.T) {
	got := ExtractKeywords("chess,hiking123cooking")
	assert.Contains(t, got, "chess")
	assert.Contains(t, got, "hiking")
	assert.Contains(t, got, "cooking")
}

func TestExtractKeywords_DropsStopwordsAndShortTokens(t *testing.T) {
	got := ExtractKeywords("I am so into the art of it")
	assert.NotContains(t, got, "the")
	assert.NotContains(t, got, "into")
	assert.NotContains(t, got, "am")
	assert.NotContains(t, got, "so")
	assert.NotContains(t, got, "it")
	assert.Contains(t, got, "art")
}

func TestExtractKeywords_DedupesPreservingFirstOccurrence(t *testing.T) {
	got := ExtractKeywords("chess chess hiking chess")
	assert.Equal(t, []string{"chess", "hiking", "outdoor"}, got)
}

func TestExtractKeywords_AppendsMatchedCategories(t *testing.T) {
	got := ExtractKeywords("I love playing football and guitar")
	assert.Equal(t, []string{"love", "playing", "football", "guitar", "sports", "music"}, got)
}

func TestExtractKeywords_CategoryNameAlreadyPresent(t *testing.T) {
	// "music" is both a vocabulary term and the category name. The dedupe
	// keeps the first occurrence only.
	got := ExtractKeywords("music music")
	assert.Equal(t, []string{"music"}, got)
}

func TestCategorize_Empty(t *testing.T) {
	assert.Empty(t, Categorize(nil))
	assert.Empty(t, Categorize([]string{}))
}

func TestCategorize_NoMatches(t *testing.T) {
	assert.Empty(t, Categorize([]string{"zzz", "qqq"}))
}

func TestCategorize_TaxonomyOrder(t *testing.T) {
	// guitar -> music, football -> sports. Result follows taxonomy order,
	// not keyword order.
	got := Categorize([]string{"guitar", "football"})
	assert.Equal(t, []string{"sports", "music"}, got)
}

func TestCategorize_BinaryPresence(t *testing.T) {
	// Multiple hits inside one category still yield a single entry.
	got := Categorize([]string{"football", "tennis", "cricket"})
	assert.Equal(t, []string{"sports"}, got)
}

func TestCategories_DeclarationOrder(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 10)
	assert.Equal(t, "sports", cats[0].Name)
	assert.Equal(t, "travel", cats[9].Name)
}
