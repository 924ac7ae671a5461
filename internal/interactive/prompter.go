package interactive

import (
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// Prompter abstracts the terminal prompts used during review.
type Prompter interface {
	Confirm(message string, def bool) (bool, error)
	Input(message string) (string, error)
	Select(message string, options []string) (int, error)
	Multiline(message string) ([]string, error)
}

// IsTerminal reports whether stdin and stdout are attached to a TTY.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

type surveyPrompter struct{}

// NewPrompter returns the survey-backed prompter.
func NewPrompter() Prompter {
	return surveyPrompter{}
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var out bool
	prompt := &survey.Confirm{Message: message, Default: def}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, err
	}
	return out, nil
}

func (surveyPrompter) Input(message string) (string, error) {
	var out string
	prompt := &survey.Input{Message: message}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (surveyPrompter) Select(message string, options []string) (int, error) {
	var out int
	prompt := &survey.Select{Message: message, Options: options}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, err
	}
	return out, nil
}

func (surveyPrompter) Multiline(message string) ([]string, error) {
	var out string
	prompt := &survey.Multiline{Message: message}
	if err := survey.AskOne(prompt, &out); err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
