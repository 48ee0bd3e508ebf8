package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathfinderhq/pathfinder/internal/domain"
)

func TestDefault_PassesValidation(t *testing.T) {
	cat := Default()

	require.NoError(t, cat.Validate())
	assert.Len(t, cat.Careers, 13)
	assert.Len(t, cat.Questions, 27)
}

func TestDefault_RareAttributesHaveQuestions(t *testing.T) {
	cat := Default()

	// design_aesthetics and situational_awareness are each required by a
	// single career; without a question yielding them, Graphic Designer
	// and Pilot could never be suggested and validation rejects the
	// catalog.
	for attr, questionID := range map[string]string{
		"design_aesthetics":     "q27_design_aesthetics",
		"situational_awareness": "q26_situational_awareness",
	} {
		yielding := cat.QuestionsYielding(attr)
		require.NotEmpty(t, yielding, attr)
		assert.Equal(t, questionID, yielding[0].ID)
	}
}

func TestCatalog_Lookups(t *testing.T) {
	cat := Default()

	attr := cat.Attribute("analytical_thinking")
	require.NotNil(t, attr)
	assert.Equal(t, "analytical thinking", attr.Label)
	assert.Nil(t, cat.Attribute("nope"))

	career := cat.Career("Engineer")
	require.NotNil(t, career)
	assert.Contains(t, career.Required, "math_aptitude")
	assert.Nil(t, cat.Career("Astronaut"))

	q := cat.Question("q2_likes_math")
	require.NotNil(t, q)
	assert.True(t, q.IsYesNo())
	assert.Nil(t, cat.Question("q99"))
}

func TestCatalog_AttributeLabelFallsBackToID(t *testing.T) {
	cat := Default()

	assert.Equal(t, "a strong aptitude for math", cat.AttributeLabel("math_aptitude"))
	assert.Equal(t, "mystery_skill", cat.AttributeLabel("mystery_skill"))
}

func TestCatalog_QuestionsYieldingKeepsOrder(t *testing.T) {
	attrs := []domain.Attribute{{ID: "x", Label: "X"}}
	questions := []domain.Question{
		{ID: "q_late", Prompt: "late?", Options: []domain.Option{{Label: "Yes", AttributeID: "x"}, {Label: "No"}}},
		{ID: "q_later", Prompt: "later?", Options: []domain.Option{{Label: "Yes", AttributeID: "x"}, {Label: "No"}}},
	}
	cat := New(attrs, nil, questions, Synonyms{})

	yielding := cat.QuestionsYielding("x")
	require.Len(t, yielding, 2)
	assert.Equal(t, "q_late", yielding[0].ID)
	assert.Equal(t, "q_later", yielding[1].ID)
	assert.Empty(t, cat.QuestionsYielding("y"))
}

func TestCatalog_QuestionListedOncePerAttribute(t *testing.T) {
	attrs := []domain.Attribute{{ID: "x", Label: "X"}}
	questions := []domain.Question{
		{ID: "q_dup", Prompt: "dup?", Options: []domain.Option{
			{Label: "Strongly yes", AttributeID: "x"},
			{Label: "Mildly yes", AttributeID: "x"},
			{Label: "No"},
		}},
	}
	cat := New(attrs, nil, questions, Synonyms{})

	assert.Len(t, cat.QuestionsYielding("x"), 1)
}

func TestCatalog_CareerNamesInDeclarationOrder(t *testing.T) {
	cat := Default()

	names := cat.CareerNames()
	require.Len(t, names, 13)
	assert.Equal(t, "Engineer", names[0])
	assert.Equal(t, "Psychologist", names[1])
}

func TestDefault_EveryCareerAttributeReachable(t *testing.T) {
	cat := Default()
	for _, career := range cat.Careers {
		for _, id := range append(append([]string{}, career.Required...), career.Preferred...) {
			assert.NotEmpty(t, cat.QuestionsYielding(id),
				"career %s attribute %s must have a question", career.Name, id)
		}
	}
}
