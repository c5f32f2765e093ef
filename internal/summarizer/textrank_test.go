package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	revenueA = "Quarterly revenue grew strongly across every regional market."
	revenueB = "Quarterly revenue grew strongly across most regional markets."
	weather  = "Weather in every region stayed mild."
	chairs   = "Engineers replaced aging office chairs."
)

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("First sentence here. second part stays.   Third one is here! Short. Is this the last one?")
	assert.Equal(t, []string{
		"First sentence here. second part stays.",
		"Third one is here!",
		"Is this the last one?",
	}, got)
}

func TestSplitSentencesNoTerminal(t *testing.T) {
	assert.Equal(t, []string{"no punctuation at all"}, SplitSentences("  no punctuation at all  "))
	assert.Empty(t, SplitSentences(""))
	assert.Empty(t, SplitSentences("tiny"))
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0/3.0, Similarity("a b", "A c"), 1e-9)
	assert.InDelta(t, 2.0/3.0, Similarity("a a b", "a c"), 1e-9)
	assert.InDelta(t, 1.0/3.0, Similarity("a c", "a a b"), 1e-9)
	assert.Zero(t, Similarity("alpha beta", "gamma delta"))
}

func TestGenerateSummaryShortCircuit(t *testing.T) {
	short := "Too short to summarize. Really."
	assert.Equal(t, short, GenerateSummary(short, 0.3))
	assert.Equal(t, "", GenerateSummary("", 0.3))

	three := strings.Join([]string{revenueA, revenueB, weather}, " ")
	require.GreaterOrEqual(t, len(three), MinTextLength)
	assert.Equal(t, three, GenerateSummary(three, 0.3))
}

func TestGenerateSummaryDropsLowestScoring(t *testing.T) {
	text := strings.Join([]string{revenueA, revenueB, weather, chairs}, " ")
	got := GenerateSummary(text, 0.5)
	assert.Equal(t, strings.Join([]string{revenueA, revenueB, weather}, " "), got)
}

func TestScoresFavourConnectedSentences(t *testing.T) {
	tr := NewTextRank(strings.Join([]string{revenueA, revenueB, weather, chairs}, " "))
	scores := tr.Scores()
	require.Len(t, scores, 4)
	assert.InDelta(t, 1-Damping, scores[3], 1e-12)
	assert.Greater(t, scores[2], scores[3])
	assert.Greater(t, scores[0], scores[2])
	assert.Greater(t, scores[1], scores[2])
}

func TestGenerateSummaryKeepsTextOrder(t *testing.T) {
	sentences := []string{
		"Gardens need water in the dry season.",
		"Solar panels convert light into power.",
		"Solar power output depends on light and panels.",
		"Cats sleep most of the afternoon.",
		"Panels and solar light produce power output daily.",
		"Rivers flood after heavy spring rain.",
	}
	text := strings.Join(sentences, " ")
	got := GenerateSummary(text, 0.5)

	pos := -1
	kept := 0
	for _, s := range sentences {
		if i := strings.Index(got, s); i >= 0 {
			assert.Greater(t, i, pos, "sentence %q out of order", s)
			pos = i
			kept++
		}
	}
	assert.Equal(t, 3, kept)
	assert.Contains(t, got, sentences[1])
	assert.Contains(t, got, sentences[2])
	assert.Contains(t, got, sentences[4])
}

func TestGenerateSummaryDeterministic(t *testing.T) {
	text := strings.Repeat(revenueA+" "+weather+" "+chairs+" ", 3)
	first := GenerateSummary(text, 0.3)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, GenerateSummary(text, 0.3))
	}
}

func TestSummarizeSentenceCount(t *testing.T) {
	parts := []string{revenueA, revenueB, weather, chairs, "Managers approved the annual travel plan.", "Storage costs fell after the migration."}
	tr := NewTextRank(strings.Join(parts, " "))
	require.Len(t, tr.Sentences(), 6)
	// ceil(6*0.2) = 2 is raised to the minimum of three
	assert.Len(t, SplitSentences(tr.Summarize(0.2)), 3)
	// ceil(6*0.75) = 5
	assert.Len(t, SplitSentences(tr.Summarize(0.75)), 5)
	// non-positive ratios fall back to the default
	assert.Len(t, SplitSentences(tr.Summarize(0)), 3)
	assert.Len(t, SplitSentences(tr.Summarize(2)), 6)
}

func TestValidateRatio(t *testing.T) {
	assert.NoError(t, ValidateRatio(0.2))
	assert.NoError(t, ValidateRatio(0.5))
	assert.ErrorIs(t, ValidateRatio(0.1), ErrInvalidRatio)
	assert.ErrorIs(t, ValidateRatio(0.51), ErrInvalidRatio)
}
