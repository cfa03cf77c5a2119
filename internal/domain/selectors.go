package domain

// Selectors names the markup intents the page adapter looks for. When the
// target site changes its markup, only these values need patching.
type Selectors struct {
	NoPollText    string
	ChoiceCSS     []string
	ChoiceAttr    string
	ChoiceLabels  []string
	SubmitWords   []string
	UsernameHints []string
}

func DefaultSelectors() Selectors {
	return Selectors{
		NoPollText:    "No current poll",
		ChoiceCSS:     []string{"button[data-choice]", ".answer-option", "button[class*='answer']"},
		ChoiceAttr:    "data-choice",
		ChoiceLabels:  []string{"A", "B", "C", "D", "E"},
		SubmitWords:   []string{"login", "log in", "sign in", "submit"},
		UsernameHints: []string{"user", "email"},
	}
}

func (s Selectors) WithDefaults() Selectors {
	defaults := DefaultSelectors()
	if s.NoPollText == "" {
		s.NoPollText = defaults.NoPollText
	}
	if len(s.ChoiceCSS) == 0 {
		s.ChoiceCSS = defaults.ChoiceCSS
	}
	if s.ChoiceAttr == "" {
		s.ChoiceAttr = defaults.ChoiceAttr
	}
	if len(s.ChoiceLabels) == 0 {
		s.ChoiceLabels = defaults.ChoiceLabels
	}
	if len(s.SubmitWords) == 0 {
		s.SubmitWords = defaults.SubmitWords
	}
	if len(s.UsernameHints) == 0 {
		s.UsernameHints = defaults.UsernameHints
	}

	return s
}

func (s Selectors) IsChoiceLabel(text string) bool {
	for _, label := range s.ChoiceLabels {
		if text == label {
			return true
		}
	}
	return false
}
