package catalog

import "github.com/pathfinderhq/pathfinder/internal/domain"

// Default returns the built-in career guidance catalog. Question order is
// deliberate: broadly differentiating skills come first so early answers
// prune the career set quickly.
func Default() *Catalog {
	return New(defaultAttributes(), defaultCareers(), defaultQuestions(), defaultSynonyms())
}

func defaultAttributes() []domain.Attribute {
	return []domain.Attribute{
		{ID: "analytical_thinking", Label: "analytical thinking"},
		{ID: "creative_thinking", Label: "creative thinking"},
		{ID: "math_aptitude", Label: "a strong aptitude for math"},
		{ID: "problem_solving", Label: "problem solving"},
		{ID: "working_with_people", Label: "working with people"},
		{ID: "working_alone", Label: "working alone"},
		{ID: "helping_others", Label: "helping others"},
		{ID: "visual_thinking", Label: "visual thinking"},
		{ID: "detail_oriented", Label: "being detail-oriented"},
		{ID: "communication_skills", Label: "strong communication skills"},
		{ID: "scientific_interest", Label: "an interest in scientific research"},
		{ID: "design_aesthetics", Label: "an eye for design and aesthetics"},
		{ID: "hands_on_work", Label: "hands-on practical work"},
		{ID: "research_oriented", Label: "being research-oriented"},
		{ID: "strategic_planning", Label: "strategic planning"},
		{ID: "empathy", Label: "empathy"},
		{ID: "listening", Label: "active listening"},
		{ID: "situational_awareness", Label: "situational awareness"},
		{ID: "calm_under_pressure", Label: "staying calm under pressure"},
		{ID: "technical_proficiency", Label: "technical proficiency"},
		{ID: "memorization_skills", Label: "memorization skills"},
		{ID: "physical_stamina", Label: "physical stamina"},
		{ID: "vocal_technique", Label: "vocal technique"},
		{ID: "observational_skills", Label: "observational skills"},
		{ID: "leadership_skills", Label: "leadership skills"},
		{ID: "resilience", Label: "resilience"},
		{ID: "continuous_learning", Label: "a commitment to continuous learning"},
		{ID: "patience", Label: "patience"},
		{ID: "ability_to_take_direction", Label: "ability to take direction"},
	}
}

func defaultCareers() []domain.CareerProfile {
	return []domain.CareerProfile{
		{
			Name:      "Engineer",
			Required:  []string{"analytical_thinking", "problem_solving", "math_aptitude"},
			Preferred: []string{"hands_on_work", "detail_oriented", "technical_proficiency"},
		},
		{
			Name:      "Psychologist",
			Required:  []string{"communication_skills", "empathy", "listening", "helping_others"},
			Preferred: []string{"working_with_people", "observational_skills", "resilience"},
		},
		{
			Name:      "Graphic Designer",
			Required:  []string{"creative_thinking", "visual_thinking", "design_aesthetics"},
			Preferred: []string{"detail_oriented", "hands_on_work"},
		},
		{
			Name:      "Data Scientist",
			Required:  []string{"analytical_thinking", "problem_solving", "math_aptitude", "research_oriented"},
			Preferred: []string{"detail_oriented", "continuous_learning", "communication_skills"},
		},
		{
			Name:      "Teacher",
			Required:  []string{"communication_skills", "helping_others", "patience"},
			Preferred: []string{"working_with_people", "leadership_skills", "resilience", "continuous_learning"},
		},
		{
			Name:      "Writer/Editor",
			Required:  []string{"creative_thinking", "detail_oriented", "communication_skills"},
			Preferred: []string{"working_alone", "research_oriented"},
		},
		{
			Name:      "Architect",
			Required:  []string{"creative_thinking", "analytical_thinking", "problem_solving", "visual_thinking", "detail_oriented"},
			Preferred: []string{"hands_on_work"},
		},
		{
			Name:      "Researcher",
			Required:  []string{"analytical_thinking", "research_oriented", "problem_solving", "continuous_learning"},
			Preferred: []string{"detail_oriented", "working_alone"},
		},
		{
			Name:      "UX Researcher",
			Required:  []string{"analytical_thinking", "research_oriented", "communication_skills", "problem_solving", "observational_skills"},
			Preferred: []string{"working_with_people", "visual_thinking", "helping_others", "empathy"},
		},
		{
			Name:      "Project Manager",
			Required:  []string{"communication_skills", "problem_solving", "strategic_planning", "leadership_skills", "detail_oriented"},
			Preferred: []string{"working_with_people", "hands_on_work", "resilience"},
		},
		{
			Name: "Pilot",
			Required: []string{
				"analytical_thinking", "problem_solving", "calm_under_pressure",
				"situational_awareness", "communication_skills", "detail_oriented",
				"technical_proficiency", "leadership_skills", "resilience",
			},
			Preferred: []string{"hands_on_work", "working_alone", "physical_stamina"},
		},
		{
			Name: "Doctor",
			Required: []string{
				"empathy", "listening", "communication_skills",
				"problem_solving", "calm_under_pressure", "detail_oriented",
				"resilience", "continuous_learning", "scientific_interest", "helping_others",
			},
			Preferred: []string{"working_with_people", "observational_skills", "physical_stamina"},
		},
		{
			Name: "Actor",
			Required: []string{
				"creative_thinking", "communication_skills", "memorization_skills",
				"ability_to_take_direction", "observational_skills", "resilience",
			},
			Preferred: []string{"working_with_people", "physical_stamina", "vocal_technique", "hands_on_work"},
		},
	}
}

func yesNo(id, prompt, attributeID string) domain.Question {
	return domain.Question{
		ID:     id,
		Prompt: prompt,
		Options: []domain.Option{
			{Label: "Yes", AttributeID: attributeID},
			{Label: "No"},
		},
	}
}

func defaultQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:     "q1_analytical_creative",
			Prompt: "Are you generally more analytical or creative?",
			Options: []domain.Option{
				{Label: "Analytical", AttributeID: "analytical_thinking"},
				{Label: "Creative", AttributeID: "creative_thinking"},
			},
		},
		{
			ID:     "q3_working_preference",
			Prompt: "Do you prefer working with people (teams, clients) or alone (independent tasks)?",
			Options: []domain.Option{
				{Label: "With people", AttributeID: "working_with_people"},
				{Label: "Alone", AttributeID: "working_alone"},
			},
		},
		yesNo("q4_problem_solving", "Do you enjoy tackling complex problems and finding solutions?", "problem_solving"),
		yesNo("q2_likes_math", "Do you enjoy solving math problems or working with numbers?", "math_aptitude"),
		yesNo("q8_communication", "Do you consider yourself to have strong communication skills?", "communication_skills"),
		yesNo("q7_detail_oriented", "Are you generally detail-oriented and precise in your work?", "detail_oriented"),
		yesNo("q10_research", "Are you inclined towards research and deep investigation?", "research_oriented"),
		yesNo("q9_hands_on", "Do you prefer hands-on, practical work over purely theoretical tasks?", "hands_on_work"),
		yesNo("q12_technical_aptitude", "Do you enjoy understanding and working with complex technical systems?", "technical_proficiency"),
		yesNo("q19_continuous_learning", "Are you committed to continuous learning and staying updated in your field?", "continuous_learning"),
		yesNo("q5_helping_others", "Are you interested in helping others and understanding their perspectives?", "helping_others"),
		yesNo("q11_calm_under_pressure", "Can you remain calm and focused under high pressure situations?", "calm_under_pressure"),
		yesNo("q26_situational_awareness", "Do you stay aware of your surroundings and quickly notice when something changes?", "situational_awareness"),
		yesNo("q18_resilience", "Are you resilient and able to bounce back from setbacks?", "resilience"),
		yesNo("q17_leadership", "Do you see yourself as a leader or enjoy guiding others?", "leadership_skills"),
		yesNo("q23_strategic_planning", "Are you good at strategic planning and organizing complex projects?", "strategic_planning"),
		yesNo("q6_visual_design", "Do you have an eye for design and enjoy visual thinking?", "visual_thinking"),
		yesNo("q27_design_aesthetics", "Do you have a strong sense of aesthetics, composition, and visual style?", "design_aesthetics"),
		yesNo("q16_observational_skills", "Do you enjoy observing people and understanding human behavior?", "observational_skills"),
		yesNo("q20_empathy", "Do you have empathy and find it easy to understand others' feelings?", "empathy"),
		yesNo("q21_listening", "Are you a good listener and do you pay close attention when others speak?", "listening"),
		yesNo("q22_patience", "Do you consider yourself a patient person, especially when dealing with others?", "patience"),
		yesNo("q24_scientific_interest", "Do you have a strong interest in scientific research and discovery?", "scientific_interest"),
		yesNo("q13_memorization", "Are you good at memorizing information (e.g., facts, lines, procedures)?", "memorization_skills"),
		yesNo("q14_physical_stamina", "Do you have good physical stamina and energy for demanding tasks?", "physical_stamina"),
		yesNo("q15_vocal_expressiveness", "Are you interested in developing your vocal expressiveness or public speaking?", "vocal_technique"),
		yesNo("q25_take_direction", "Are you comfortable taking direction and adapting to feedback?", "ability_to_take_direction"),
	}
}

func defaultSynonyms() Synonyms {
	return Synonyms{
		Affirmative: []string{
			"yes", "yeah", "yep", "yup", "yupp", "yea", "yess", "sure", "absolutely", "i do",
			"i am", "definitely", "of course", "true", "totally", "agree", "correct",
			"affirmative", "ok", "okay", "positive", "you bet", "go for it", "indeed",
			"that's right", "i think so", "for sure", "with numbers", "oh ya", "oh yaa",
			"i like", "a lot", "i do a lot", "totes", "totally yes", "definitely yes",
			"absolutely yes", "yeah sure", "very much", "i enjoy", "i love", "it's good",
			"sounds good", "great", "awesome", "always", "mostly", "quite a bit",
			"i am usually", "precise", "hell yeah", "yes sir", "ahan", "y",
		},
		Negative: []string{
			"no", "nope", "nah", "not really", "i don't", "i am not", "never", "not at all",
			"disagree", "incorrect", "negative", "by no means", "not for me", "not interested",
			"don't like", "dislike", "a lot of no", "not a lot", "not much", "hardly",
			"rarely", "not my thing", "n",
		},
		MultiChoice: map[string]map[string]string{
			"q1_analytical_creative": {
				"analytical":  "analytical_thinking",
				"logic":       "analytical_thinking",
				"rational":    "analytical_thinking",
				"creative":    "creative_thinking",
				"artistic":    "creative_thinking",
				"innovative":  "creative_thinking",
				"imaginative": "creative_thinking",
			},
			"q3_working_preference": {
				"people":      "working_with_people",
				"team":        "working_with_people",
				"social":      "working_with_people",
				"collaborate": "working_with_people",
				"together":    "working_with_people",
				"alone":       "working_alone",
				"independent": "working_alone",
				"solo":        "working_alone",
				"individual":  "working_alone",
				"myself":      "working_alone",
				"in between":  "",
				"both":        "",
			},
		},
		YesHints: map[string][]string{
			"q7_detail_oriented":       {"precise", "meticulous", "accurate"},
			"q15_vocal_expressiveness": {"vocal", "public speaking", "speaking", "expressive"},
			"q17_leadership":           {"leader", "guiding"},
			"q14_physical_stamina":     {"stamina", "energy", "demanding"},
			"q25_take_direction":       {"feedback", "adapt", "direction"},
		},
	}
}
