// Package prompt provides interactive terminal forms.
package prompt

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/encapsulab/encapsulab/internal/domain/values"
)

// PersonDraft holds the raw answers for a new person.
type PersonDraft struct {
	Name    string
	Age     string
	Hobbies string
}

// AgeValue parses the drafted age.
func (d PersonDraft) AgeValue() (int, error) {
	return parseAge(d.Age)
}

// HobbyList splits the drafted hobbies on commas, dropping blanks.
func (d PersonDraft) HobbyList() []string {
	return ParseHobbies(d.Hobbies)
}

// PersonPrompter asks for a person's fields in the terminal.
type PersonPrompter struct{}

// NewPersonPrompter creates a new PersonPrompter.
func NewPersonPrompter() *PersonPrompter {
	return &PersonPrompter{}
}

// IsInteractive checks if we're running in an interactive terminal.
func (p *PersonPrompter) IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	// Character device (terminal), not a pipe or file
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// Prompt fills draft from a form. Fields already set in draft are offered
// as defaults. Each field is validated with the same rules the builder
// enforces, so the form cannot be submitted with an invalid person.
func (p *PersonPrompter) Prompt(draft *PersonDraft) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&draft.Name).
				Validate(ValidateName),
			huh.NewInput().
				Title("Age").
				Value(&draft.Age).
				Validate(ValidateAge),
			huh.NewInput().
				Title("Hobbies").
				Description("Comma-separated, optional").
				Value(&draft.Hobbies),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("person form aborted: %w", err)
	}
	return nil
}

// ValidateName applies the person name rule to raw input.
func ValidateName(raw string) error {
	_, err := values.NewName("name", raw)
	return err
}

// ValidateAge applies the person age rule to raw input.
func ValidateAge(raw string) error {
	_, err := parseAge(raw)
	return err
}

func parseAge(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("age must be a whole number")
	}
	if _, err := values.NewAge(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ParseHobbies splits a comma-separated list, trimming entries and dropping
// blanks.
func ParseHobbies(raw string) []string {
	var hobbies []string
	for _, h := range strings.Split(raw, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hobbies = append(hobbies, h)
		}
	}
	return hobbies
}
