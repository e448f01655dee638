// Package config provides walkthrough file loading and validation.
// It handles YAML parsing, structural checks, JSON-schema validation and
// tool version compatibility.
package config

// Walkthrough is a scripted sequence of operations on example entities.
type Walkthrough struct {
	Version     string `yaml:"version" json:"version"`
	Requires    string `yaml:"requires,omitempty" json:"requires,omitempty"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Vars are referenced from step args and descriptions as {{ .vars.key }}
	Vars  map[string]interface{} `yaml:"vars,omitempty" json:"vars,omitempty"`
	Steps []Step                 `yaml:"steps" json:"steps"`
}

// Step is a single operation. Exactly one of Create or Call is set: Create
// names the entity kind to construct under Subject, Call names the operation
// to invoke on an existing Subject.
type Step struct {
	ID          string                 `yaml:"id" json:"id"`
	Description string                 `yaml:"description,omitempty" json:"description,omitempty"`
	Subject     string                 `yaml:"subject" json:"subject"`
	Create      string                 `yaml:"create,omitempty" json:"create,omitempty"`
	Call        string                 `yaml:"call,omitempty" json:"call,omitempty"`
	Args        map[string]interface{} `yaml:"args,omitempty" json:"args,omitempty"`
	Expect      []string               `yaml:"expect,omitempty" json:"expect,omitempty"`
	ExpectError string                 `yaml:"expect_error,omitempty" json:"expect_error,omitempty"`
}

// IsCreate reports whether the step constructs a new subject.
func (s Step) IsCreate() bool {
	return s.Create != ""
}

// Operation returns the entity kind for create steps and the operation name
// for call steps.
func (s Step) Operation() string {
	if s.IsCreate() {
		return s.Create
	}
	return s.Call
}
