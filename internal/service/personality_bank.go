package service

// PersonalityQuestion is one entry of the fixed questionnaire. Option
// weights are scoring input only and are never serialized to clients.
type PersonalityQuestion struct {
	ID      int
	Prompt  string
	Options map[string]int
}

// The questionnaire is a fixed, versioned table: changing weights or adding
// questions shifts the tier thresholds, so treat any edit as a new version.
var personalityQuestions = []PersonalityQuestion{
	{
		ID:      1,
		Prompt:  "When you receive a new assignment or project, what's your typical first reaction?",
		Options: map[string]int{"A": 4, "B": 3, "C": 2, "D": 1},
	},
	{
		ID:      2,
		Prompt:  "How do you approach studying for a test?",
		Options: map[string]int{"A": 4, "B": 3, "C": 2, "D": 1},
	},
	{
		ID:      3,
		Prompt:  "When a teacher explains a new concept in class, how quickly do you usually understand it?",
		Options: map[string]int{"A": 4, "B": 3, "C": 2, "D": 1},
	},
	{
		ID:      4,
		Prompt:  "How do you handle challenging homework problems?",
		Options: map[string]int{"A": 4, "B": 3, "C": 2, "D": 1},
	},
	{
		ID:      5,
		Prompt:  "What best describes your note-taking style in class?",
		Options: map[string]int{"A": 4, "B": 3, "C": 2, "D": 1},
	},
	{
		ID:      6,
		Prompt:  "When working on a group project, what role do you usually take?",
		Options: map[string]int{"A": 4, "B": 3, "C": 2, "D": 1},
	},
	{
		ID:      7,
		Prompt:  "How do you feel about your overall academic performance?",
		Options: map[string]int{"A": 4, "B": 3, "C": 2, "D": 1},
	},
}
