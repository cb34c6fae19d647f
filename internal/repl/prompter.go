package repl

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// Prompter asks the user yes/no questions
type Prompter interface {
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter asks questions on the terminal
type SurveyPrompter struct{}

// Confirm shows a yes/no prompt
func (SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	answer := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, fmt.Errorf("confirm canceled: %w", err)
	}
	return answer, nil
}
