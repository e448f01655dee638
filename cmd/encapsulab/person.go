package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/encapsulab/encapsulab/internal/domain/entities"
	"github.com/encapsulab/encapsulab/internal/infrastructure/prompt"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// PersonOptions holds the flags of person new.
type PersonOptions struct {
	Name          string
	Format        string
	Hobbies       []string
	Age           int
	NoInteractive bool
}

var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Work with immutable people",
}

var personNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Build an immutable person",
	Long: `Build an immutable person with the person builder. In a terminal a form
asks for each field and rejects invalid answers as you type. With
--no-interactive, or when stdin is not a terminal, the flags are used as given
and the builder reports every invalid field at once.`,
	Args: cobra.NoArgs,
	RunE: runPersonNew,
}

func init() {
	rootCmd.AddCommand(personCmd)
	personCmd.AddCommand(personNewCmd)

	personNewCmd.Flags().String("name", "", "person's name")
	personNewCmd.Flags().Int("age", 0, "person's age")
	personNewCmd.Flags().StringSlice("hobby", nil, "hobby (repeatable or comma-separated)")
	personNewCmd.Flags().String("format", "text", "Output format: text, json, yaml")
	personNewCmd.Flags().Bool("no-interactive", false, "never prompt; use flags only")
}

func runPersonNew(cmd *cobra.Command, _ []string) error {
	opts := PersonOptions{}
	opts.Name, _ = cmd.Flags().GetString("name")
	opts.Age, _ = cmd.Flags().GetInt("age")
	opts.Hobbies, _ = cmd.Flags().GetStringSlice("hobby")
	opts.Format, _ = cmd.Flags().GetString("format")
	opts.NoInteractive, _ = cmd.Flags().GetBool("no-interactive")

	draft := prompt.PersonDraft{
		Name:    opts.Name,
		Hobbies: strings.Join(opts.Hobbies, ", "),
	}
	if cmd.Flags().Changed("age") {
		draft.Age = strconv.Itoa(opts.Age)
	}

	prompter := prompt.NewPersonPrompter()
	if !opts.NoInteractive && prompter.IsInteractive() {
		if err := prompter.Prompt(&draft); err != nil {
			return err
		}
	}

	person, err := buildPerson(draft)
	if err != nil {
		return err
	}

	return writePerson(cmd.OutOrStdout(), opts.Format, person)
}

// buildPerson feeds the draft through the builder. Only fields present in
// the draft are set, so a missing name is reported by the builder.
func buildPerson(draft prompt.PersonDraft) (*entities.ImmutablePerson, error) {
	builder := entities.NewPersonBuilder()

	if draft.Name != "" {
		builder.Name(draft.Name)
	}
	if strings.TrimSpace(draft.Age) != "" {
		age, err := strconv.Atoi(strings.TrimSpace(draft.Age))
		if err != nil {
			return nil, fmt.Errorf("age must be a whole number: %q", draft.Age)
		}
		builder.Age(age)
	}
	builder.Hobbies(draft.HobbyList()...)

	return builder.Build()
}

type personView struct {
	Name    string   `json:"name" yaml:"name"`
	Hobbies []string `json:"hobbies" yaml:"hobbies"`
	Age     int      `json:"age" yaml:"age"`
}

func writePerson(w io.Writer, format string, person *entities.ImmutablePerson) error {
	view := personView{Name: person.Name(), Age: person.Age(), Hobbies: person.Hobbies()}
	if view.Hobbies == nil {
		view.Hobbies = []string{}
	}

	switch format {
	case "text":
		_, err := fmt.Fprintf(w, "%s, age %d, hobbies: %s\n",
			view.Name, view.Age, strings.Join(view.Hobbies, ", "))
		return err
	case "json":
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(view)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("invalid format: %s (valid: text, json, yaml)", format)
	}
}
