// Package prompt collects selection inputs interactively when the
// corresponding flags were not supplied.
package prompt

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"skype-to-docx/filter"
)

// Sender asks for the target sender identifier.
func Sender() (string, error) {
	value, err := pterm.DefaultInteractiveTextInput.Show("Enter the username to search for")
	if err != nil {
		return "", fmt.Errorf("read sender: %w", err)
	}
	return strings.TrimSpace(value), nil
}

// Conversation asks for an optional conversation id. Empty means all
// conversations.
func Conversation() (string, error) {
	value, err := pterm.DefaultInteractiveTextInput.Show("Conversation id to restrict to (empty for all)")
	if err != nil {
		return "", fmt.Errorf("read conversation: %w", err)
	}
	return strings.TrimSpace(value), nil
}

// Mode asks which selection mode to run.
func Mode() (filter.Mode, error) {
	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions([]string{string(filter.ModeFirstWord), string(filter.ModeReview)}).
		Show("Selection mode")
	if err != nil {
		return "", fmt.Errorf("read mode: %w", err)
	}
	return filter.Mode(choice), nil
}

// Word asks for the first word to match.
func Word() (string, error) {
	value, err := pterm.DefaultInteractiveTextInput.Show("Enter the first word to match")
	if err != nil {
		return "", fmt.Errorf("read match word: %w", err)
	}
	return strings.TrimSpace(value), nil
}
