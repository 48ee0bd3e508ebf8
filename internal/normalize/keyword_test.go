package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathfinderhq/pathfinder/internal/catalog"
	"github.com/pathfinderhq/pathfinder/internal/domain"
)

func defaultCatalogNormalizer() (*KeywordNormalizer, *catalog.Catalog) {
	cat := catalog.Default()
	return NewKeywordNormalizer(cat.Synonyms), cat
}

func TestResolve_YesNoVocabulary(t *testing.T) {
	n, cat := defaultCatalogNormalizer()
	q := cat.Question("q2_likes_math")
	require.NotNil(t, q)

	tests := []struct {
		raw      string
		matched  bool
		confirms bool
	}{
		{"yes", true, true},
		{"Yeah!", true, true},
		{"i think so", true, true},
		{"OF COURSE", true, true},
		{"hell yeah", true, true},
		{"yess", true, true},
		{"y", true, true},
		{"no", true, false},
		{"Nope.", true, false},
		{"not at all", true, false},
		{"n", true, false},
		{"purple", false, false},
		{"", false, false},
		{"   !!!   ", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			res := n.Resolve(q, tt.raw)
			assert.Equal(t, tt.matched, res.Matched)
			assert.Equal(t, tt.confirms, res.Confirms())
			if tt.confirms {
				assert.Equal(t, "math_aptitude", res.AttributeID)
			}
		})
	}
}

func TestResolve_LongerPhraseWins(t *testing.T) {
	n, cat := defaultCatalogNormalizer()
	q := cat.Question("q4_problem_solving")
	require.NotNil(t, q)

	// "not really" and "not a lot" outrank any short affirmative echo.
	res := n.Resolve(q, "not really")
	assert.True(t, res.Matched)
	assert.False(t, res.Confirms())
	assert.Equal(t, "No", res.OptionLabel)

	// "i love" beats the bare "no" inside a hedged positive.
	res = n.Resolve(q, "no doubt about it, i love puzzles")
	assert.True(t, res.Matched)
	assert.Equal(t, "problem_solving", res.AttributeID)

	// "a lot of no" contains the affirmative "a lot" but reads negative.
	res = n.Resolve(q, "a lot of no")
	assert.True(t, res.Matched)
	assert.False(t, res.Confirms())
}

func TestResolve_NegationOfAffirmativePhrase(t *testing.T) {
	n, cat := defaultCatalogNormalizer()
	q := cat.Question("q2_likes_math")
	require.NotNil(t, q)

	res := n.Resolve(q, "i don't")
	assert.True(t, res.Matched)
	assert.False(t, res.Confirms(), `"i don't" must not be read as "i do"`)
}

func TestResolve_WordBoundaries(t *testing.T) {
	n, cat := defaultCatalogNormalizer()
	q := cat.Question("q2_likes_math")
	require.NotNil(t, q)

	// "know" contains "no" only as a substring, not as a word.
	res := n.Resolve(q, "i know")
	assert.False(t, res.Matched)
}

func TestResolve_PerQuestionYesHints(t *testing.T) {
	n, cat := defaultCatalogNormalizer()

	detail := cat.Question("q7_detail_oriented")
	require.NotNil(t, detail)
	res := n.Resolve(detail, "i'm very meticulous")
	assert.True(t, res.Confirms())
	assert.Equal(t, "detail_oriented", res.AttributeID)

	// The hint belongs to one question only.
	math := cat.Question("q2_likes_math")
	require.NotNil(t, math)
	res = n.Resolve(math, "i'm very meticulous")
	assert.False(t, res.Matched)
}

func TestResolve_MultiChoiceKeywords(t *testing.T) {
	n, cat := defaultCatalogNormalizer()
	q := cat.Question("q1_analytical_creative")
	require.NotNil(t, q)

	tests := []struct {
		raw   string
		attr  string
		label string
	}{
		{"analytical", "analytical_thinking", "Analytical"},
		{"definitely more creative", "creative_thinking", "Creative"},
		{"i'd say artistic", "creative_thinking", "Creative"},
		{"Rational, mostly", "analytical_thinking", "Analytical"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			res := n.Resolve(q, tt.raw)
			require.True(t, res.Matched)
			assert.Equal(t, tt.attr, res.AttributeID)
			assert.Equal(t, tt.label, res.OptionLabel)
		})
	}
}

func TestResolve_BothAnswersWithoutConfirming(t *testing.T) {
	n, cat := defaultCatalogNormalizer()
	q := cat.Question("q3_working_preference")
	require.NotNil(t, q)

	for _, raw := range []string{"both", "somewhere in between"} {
		res := n.Resolve(q, raw)
		assert.True(t, res.Matched, raw)
		assert.False(t, res.Confirms(), raw)
		assert.Empty(t, res.OptionLabel, raw)
	}
}

func TestResolve_KeywordsBeatGenericVocabulary(t *testing.T) {
	n, cat := defaultCatalogNormalizer()
	q := cat.Question("q3_working_preference")
	require.NotNil(t, q)

	// "i like" is in the affirmative list, but the question is not Yes/No
	// and the keyword map grabs "team" first.
	res := n.Resolve(q, "i like working in a team")
	require.True(t, res.Matched)
	assert.Equal(t, "working_with_people", res.AttributeID)
	assert.Equal(t, "With people", res.OptionLabel)
}

func TestResolve_FallsBackToOptionLabels(t *testing.T) {
	attrs := []domain.Attribute{{ID: "x", Label: "X"}, {ID: "y", Label: "Y"}}
	q := domain.Question{
		ID:     "q_pick",
		Prompt: "pick one",
		Options: []domain.Option{
			{Label: "Morning person", AttributeID: "x"},
			{Label: "Night owl", AttributeID: "y"},
		},
	}
	cat := catalog.New(attrs, nil, []domain.Question{q}, catalog.Synonyms{})
	n := NewKeywordNormalizer(cat.Synonyms)

	res := n.Resolve(&q, "Night Owl")
	require.True(t, res.Matched)
	assert.Equal(t, "y", res.AttributeID)

	res = n.Resolve(&q, "probably a morning person honestly")
	require.True(t, res.Matched)
	assert.Equal(t, "x", res.AttributeID)

	res = n.Resolve(&q, "neither")
	assert.False(t, res.Matched)
}

func TestResolve_YesNoVocabularyIgnoredOnMultiChoice(t *testing.T) {
	n, cat := defaultCatalogNormalizer()
	q := cat.Question("q1_analytical_creative")
	require.NotNil(t, q)

	res := n.Resolve(q, "yes")
	assert.False(t, res.Matched, "a bare yes cannot pick between two attributes")
}

func TestClean(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"  Hello, World!  ", "hello world"},
		{"don't", "don't"},
		{"well-rounded", "well-rounded"},
		{"a    b\tc", "a b c"},
		{"???", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clean(tt.raw), tt.raw)
	}
}
