package sentiment

import (
	"html"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var (
	analyzer    = govader.NewSentimentIntensityAnalyzer()
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := tagPattern.ReplaceAllString(string(output), " ")
	plainText = html.UnescapeString(plainText)
	plainText = strings.Join(strings.Fields(plainText), " ")

	return RemoveLinks(plainText)
}

// Score is the polarity of a whole text, with the VADER compound score
// rescaled into class probabilities.
type Score struct {
	Compound            float64
	ProbabilityPositive float64
	ProbabilityNegative float64
}

func (s Score) Label() string {
	if s.ProbabilityPositive >= 0.5 {
		return "positive"
	}
	return "negative"
}

func (s Score) Confidence() float64 {
	if s.ProbabilityPositive >= s.ProbabilityNegative {
		return s.ProbabilityPositive
	}
	return s.ProbabilityNegative
}

func AnalyzeWithVADER(text string) Score {
	compound := analyzer.PolarityScores(ConvertMarkdownToText(text)).Compound
	pos := (compound + 1) / 2

	return Score{
		Compound:            compound,
		ProbabilityPositive: pos,
		ProbabilityNegative: 1 - pos,
	}
}

type TokenScore struct {
	Word   string
	Weight float64
}

// ScoreTokens scores every distinct word of text on its own. Weights are
// half the word's compound score, so they stay inside [-0.5, 0.5], and the
// result is ordered by descending magnitude.
func ScoreTokens(text string) []TokenScore {
	words := Tokenize(ConvertMarkdownToText(text))
	scores := make([]TokenScore, 0, len(words))
	for _, w := range words {
		scores = append(scores, TokenScore{
			Word:   w,
			Weight: analyzer.PolarityScores(w).Compound / 2,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return abs(scores[i].Weight) > abs(scores[j].Weight)
	})
	return scores
}

// Tokenize splits on anything that is not a letter, digit or apostrophe and
// drops case-insensitive duplicates, keeping first occurrences.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !isApostrophe(r)
	})

	seen := make(map[string]struct{}, len(fields))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimFunc(f, isApostrophe)
		if f == "" {
			continue
		}
		key := strings.ToLower(f)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		words = append(words, f)
	}
	return words
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// isApostrophe also accepts the typographic quote the markdown renderer
// substitutes for straight ones.
func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}
