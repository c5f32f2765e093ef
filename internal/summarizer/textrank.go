package summarizer

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/KaramelBytes/docarchive-cli/internal/utils"
)

const (
	// Iterations is the fixed number of ranking passes; there is no
	// convergence check.
	Iterations = 30
	// Damping balances a sentence's base score against its neighbours.
	Damping = 0.85
	// MinSentences is the smallest summary, and texts with no more
	// sentences than this are returned as is.
	MinSentences = 3
	// MinTextLength is the shortest text that gets summarized.
	MinTextLength = 100
	// DefaultRatio is used when the caller passes a non-positive ratio.
	DefaultRatio = 0.3

	// Bounds of the ratio offered to users.
	MinUserRatio = 0.20
	MaxUserRatio = 0.50

	minSentenceLength = 11
)

// ErrInvalidRatio is returned by ValidateRatio.
var ErrInvalidRatio = errors.New("summary ratio must be between 0.20 and 0.50")

// ValidateRatio checks a user supplied ratio against the offered range.
// GenerateSummary itself accepts any positive ratio.
func ValidateRatio(ratio float64) error {
	if math.IsNaN(ratio) || ratio < MinUserRatio || ratio > MaxUserRatio {
		return ErrInvalidRatio
	}
	return nil
}

// TextRank ranks the sentences of a text by their centrality in a
// sentence similarity graph.
type TextRank struct {
	text       string
	sentences  []string
	similarity [][]float64
}

// NewTextRank segments text and builds its similarity matrix.
func NewTextRank(text string) *TextRank {
	sentences := SplitSentences(text)
	return &TextRank{
		text:       text,
		sentences:  sentences,
		similarity: similarityMatrix(sentences),
	}
}

// Sentences returns the segmented sentences in text order.
func (tr *TextRank) Sentences() []string { return tr.sentences }

// Scores runs the fixed-point ranking and returns one score per sentence.
func (tr *TextRank) Scores() []float64 {
	n := len(tr.sentences)
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1
	}
	for iter := 0; iter < Iterations; iter++ {
		next := make([]float64, n)
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				if i != j {
					sum += tr.similarity[j][i] * scores[j]
				}
			}
			next[i] = (1 - Damping) + Damping*sum
		}
		scores = next
	}
	return scores
}

// Summarize keeps the top max(3, ceil(n*ratio)) sentences in their original
// order. Texts with three sentences or fewer are returned unchanged.
func (tr *TextRank) Summarize(ratio float64) string {
	n := len(tr.sentences)
	if n <= MinSentences {
		return tr.text
	}
	if !(ratio > 0) {
		ratio = DefaultRatio
	}
	k := max(MinSentences, int(math.Ceil(float64(n)*ratio)))
	k = min(k, n)

	scores := tr.Scores()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// stable, so equal scores keep text order
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })
	picked := order[:k]
	sort.Ints(picked)

	out := make([]string, len(picked))
	for i, idx := range picked {
		out[i] = tr.sentences[idx]
	}
	return strings.Join(out, " ")
}

// GenerateSummary returns an extractive summary of text. Texts shorter than
// 100 characters, or with at most three sentences, are returned unchanged.
func GenerateSummary(text string, ratio float64) string {
	if utils.RuneLen(text) < MinTextLength {
		return text
	}
	return NewTextRank(text).Summarize(ratio)
}

// Similarity is the share of s1's words found in s2, over the number of
// distinct words in both. Repeated words in s1 each count.
func Similarity(s1, s2 string) float64 {
	words1 := utils.LowerTokens(s1)
	words2 := utils.LowerTokens(s2)
	in2 := make(map[string]struct{}, len(words2))
	for _, w := range words2 {
		in2[w] = struct{}{}
	}
	union := make(map[string]struct{}, len(words1)+len(words2))
	for w := range in2 {
		union[w] = struct{}{}
	}
	shared := 0
	for _, w := range words1 {
		union[w] = struct{}{}
		if _, ok := in2[w]; ok {
			shared++
		}
	}
	if len(union) == 0 {
		return 0
	}
	return float64(shared) / float64(len(union))
}

func similarityMatrix(sentences []string) [][]float64 {
	n := len(sentences)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i != j {
				m[i][j] = Similarity(sentences[i], sentences[j])
			}
		}
	}
	return m
}
