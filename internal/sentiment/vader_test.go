package sentiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "see docs now", RemoveLinks("see [docs](https://example.com/x) now"))
	assert.Equal(t, "visit  today", RemoveLinks("visit https://example.com today"))
}

func TestConvertMarkdownToText(t *testing.T) {
	got := ConvertMarkdownToText("# Title\n\nSome **bold** text")
	assert.Equal(t, "Title Some bold text", got)
	assert.Equal(t, "Tom & Jerry", ConvertMarkdownToText("Tom & Jerry"))
	assert.Equal(t, "read docs", ConvertMarkdownToText("read [docs](https://example.com)"))
}

func TestTokenize(t *testing.T) {
	got := Tokenize("I love it, I LOVE it! Don't stop... 'quoted'")
	assert.Equal(t, []string{"I", "love", "it", "Don't", "stop", "quoted"}, got)
	assert.Empty(t, Tokenize("  ...  "))
}

func TestAnalyzeWithVADER(t *testing.T) {
	pos := AnalyzeWithVADER("I love this wonderful product, it is great!")
	assert.Equal(t, "positive", pos.Label())
	assert.Greater(t, pos.ProbabilityPositive, 0.5)
	assert.InDelta(t, 1.0, pos.ProbabilityPositive+pos.ProbabilityNegative, 1e-9)
	assert.Equal(t, pos.ProbabilityPositive, pos.Confidence())

	neg := AnalyzeWithVADER("This is terrible, awful and a total waste of time.")
	assert.Equal(t, "negative", neg.Label())
	assert.Equal(t, neg.ProbabilityNegative, neg.Confidence())
}

func TestScoreTokens(t *testing.T) {
	scores := ScoreTokens("love the bad table")
	require.Len(t, scores, 4)

	byWord := map[string]float64{}
	for _, s := range scores {
		byWord[s.Word] = s.Weight
		assert.LessOrEqual(t, math.Abs(s.Weight), 0.5)
	}
	assert.Greater(t, byWord["love"], 0.0)
	assert.Less(t, byWord["bad"], 0.0)
	assert.Zero(t, byWord["table"])

	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, math.Abs(scores[i-1].Weight), math.Abs(scores[i].Weight))
	}
}

func TestScoreTokens_StripsMarkdown(t *testing.T) {
	scores := ScoreTokens("**love** it's")
	require.Len(t, scores, 2)
	assert.Equal(t, "love", scores[0].Word)
	assert.Greater(t, scores[0].Weight, 0.0)
	assert.Contains(t, []string{"it's", "it’s"}, scores[1].Word)
}

func TestAnalyzeWithVADER_IgnoresMarkup(t *testing.T) {
	plain := AnalyzeWithVADER("I love this")
	marked := AnalyzeWithVADER("I **love** [this](https://example.com)")
	assert.InDelta(t, plain.Compound, marked.Compound, 1e-9)
}
