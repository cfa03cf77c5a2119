package markup

import (
	"strings"

	"github.com/bnema/webclicker/internal/domain"
)

type InputKind int

const (
	InputOther InputKind = iota
	InputUsername
	InputPassword
)

// InputAttrs are the attributes of one <input> as read from the live page.
type InputAttrs struct {
	Type        string
	Name        string
	Placeholder string
}

func ClassifyInput(selectors domain.Selectors, attrs InputAttrs) InputKind {
	inputType := strings.ToLower(strings.TrimSpace(attrs.Type))
	name := strings.ToLower(attrs.Name)
	placeholder := strings.ToLower(attrs.Placeholder)

	if inputType == "password" || strings.Contains(placeholder, "password") || strings.Contains(name, "password") {
		return InputPassword
	}

	switch inputType {
	case "hidden", "submit", "button", "checkbox", "radio":
		return InputOther
	case "text", "email":
		return InputUsername
	}

	for _, hint := range selectors.WithDefaults().UsernameHints {
		if strings.Contains(placeholder, hint) || strings.Contains(name, hint) {
			return InputUsername
		}
	}

	return InputOther
}

func IsSubmitLabel(selectors domain.Selectors, text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return false
	}

	for _, word := range selectors.WithDefaults().SubmitWords {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// ChoiceLabel prefers the choice attribute over the visible text.
func ChoiceLabel(attr *string, text string) string {
	if attr != nil {
		if value := strings.TrimSpace(*attr); value != "" {
			return value
		}
	}
	return strings.TrimSpace(text)
}
