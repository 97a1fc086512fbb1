package replay

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrEmptyScript is returned for a script without steps
var ErrEmptyScript = errors.New("script has no steps")

// Script is a list of board operations to replay, in order
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is exactly one of Add or Move
type Step struct {
	Add  *AddStep  `yaml:"add,omitempty"`
	Move *MoveStep `yaml:"move,omitempty"`
}

// AddStep adds a project and names it Ref for later steps.
// People is kept as text so it goes through the same rules as form input.
type AddStep struct {
	Ref         string `yaml:"ref"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	People      string `yaml:"people"`
}

// MoveStep drags the project named Ref onto the column for To
type MoveStep struct {
	Ref string `yaml:"ref"`
	To  string `yaml:"to"`
}

// Parse decodes a YAML script. Unknown keys are rejected.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, ErrEmptyScript
	}

	for i, step := range s.Steps {
		if err := step.check(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (s Step) check() error {
	switch {
	case s.Add != nil && s.Move != nil:
		return errors.New("a step is either add or move, not both")
	case s.Add != nil:
		if s.Add.Ref == "" {
			return errors.New("add needs a ref")
		}
	case s.Move != nil:
		if s.Move.Ref == "" {
			return errors.New("move needs a ref")
		}
		if s.Move.To == "" {
			return errors.New("move needs a target status")
		}
	default:
		return errors.New("empty step")
	}
	return nil
}
