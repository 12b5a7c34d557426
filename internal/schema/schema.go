package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSchema wraps every configuration error reported by Validate.
var ErrInvalidSchema = errors.New("invalid schema")

// Kind tells whether a step accepts free text or a single choice.
type Kind string

const (
	// KindInfer is only valid before normalization: the kind is derived from
	// the presence of a branch for the step key.
	KindInfer  Kind = ""
	KindText   Kind = "text"
	KindSelect Kind = "select"
)

// Step is one question in the wizard sequence.
type Step struct {
	Key      string `yaml:"key" json:"key" toml:"key"`
	Prompt   string `yaml:"prompt" json:"prompt" toml:"prompt"`
	Kind     Kind   `yaml:"kind,omitempty" json:"kind,omitempty" toml:"kind,omitempty"`
	Required bool   `yaml:"required,omitempty" json:"required,omitempty" toml:"required,omitempty"`
}

// Option is one selectable choice of a select step.
type Option struct {
	Label string `yaml:"label" json:"label" toml:"label"`
	Value string `yaml:"value" json:"value" toml:"value"`
}

// Branches maps a step key to the options presented when that step is reached.
type Branches map[string][]Option

// Schema is the resolved question sequence plus its branch table.
type Schema struct {
	Steps    []Step   `yaml:"steps" json:"steps" toml:"steps"`
	Branches Branches `yaml:"branches,omitempty" json:"branches,omitempty" toml:"branches,omitempty"`

	// Source describes where the schema was loaded from ("embedded/default.yaml",
	// a file path, ...). It is informational only.
	Source string `yaml:"-" json:"-" toml:"-"`
}

// Len returns the number of steps.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Steps)
}

// Step returns the step at index i.
func (s *Schema) Step(i int) (Step, bool) {
	if s == nil || i < 0 || i >= len(s.Steps) {
		return Step{}, false
	}

	return s.Steps[i], true
}

// Options returns a copy of the branch options for key.
//
// The boolean reports whether the key has a branch entry at all; an entry may
// exist and still be empty.
func (s *Schema) Options(key string) ([]Option, bool) {
	if s == nil || s.Branches == nil {
		return nil, false
	}

	options, ok := s.Branches[key]
	if !ok {
		return nil, false
	}

	cp := make([]Option, len(options))
	copy(cp, options)

	return cp, true
}

// Clone returns a deep copy of the schema.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}

	cp := &Schema{Source: s.Source}
	if s.Steps != nil {
		cp.Steps = make([]Step, len(s.Steps))
		copy(cp.Steps, s.Steps)
	}

	if s.Branches != nil {
		cp.Branches = make(Branches, len(s.Branches))
		for key, options := range s.Branches {
			opts := make([]Option, len(options))
			copy(opts, options)
			cp.Branches[key] = opts
		}
	}

	return cp
}

// Validate checks the schema for configuration errors. It must pass before a
// wizard is started against the schema.
func (s *Schema) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: schema is nil", ErrInvalidSchema)
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: at least one step is required", ErrInvalidSchema)
	}

	seen := make(map[string]int, len(s.Steps))
	for i, step := range s.Steps {
		key := strings.TrimSpace(step.Key)
		if key == "" {
			return fmt.Errorf("%w: step %d key is required", ErrInvalidSchema, i+1)
		}
		if key != step.Key {
			return fmt.Errorf("%w: step %d key %q has surrounding whitespace", ErrInvalidSchema, i+1, step.Key)
		}

		if prev, dup := seen[key]; dup {
			return fmt.Errorf("%w: step %d key %q duplicates step %d", ErrInvalidSchema, i+1, key, prev+1)
		}
		seen[key] = i

		if strings.TrimSpace(step.Prompt) == "" {
			return fmt.Errorf("%w: step %q prompt is required", ErrInvalidSchema, key)
		}

		_, hasBranch := s.Branches[key]

		switch step.Kind {
		case KindInfer:
		case KindSelect:
			if !hasBranch {
				return fmt.Errorf("%w: select step %q has no options", ErrInvalidSchema, key)
			}
		case KindText:
			if hasBranch {
				return fmt.Errorf("%w: text step %q must not have options", ErrInvalidSchema, key)
			}
		default:
			return fmt.Errorf("%w: step %q has unsupported kind %q", ErrInvalidSchema, key, step.Kind)
		}
	}

	for key, options := range s.Branches {
		if _, ok := seen[key]; !ok {
			return fmt.Errorf("%w: options defined for unknown step %q", ErrInvalidSchema, key)
		}

		for i, opt := range options {
			if strings.TrimSpace(opt.Value) == "" {
				return fmt.Errorf("%w: option %d of step %q has no value", ErrInvalidSchema, i+1, key)
			}
		}
	}

	return nil
}

// normalize trims fields, fills option labels and resolves inferred kinds.
func normalize(s *Schema) {
	for i := range s.Steps {
		step := &s.Steps[i]
		step.Key = strings.TrimSpace(step.Key)
		step.Prompt = strings.TrimSpace(step.Prompt)
		step.Kind = Kind(strings.ToLower(strings.TrimSpace(string(step.Kind))))
	}

	if len(s.Branches) > 0 {
		branches := make(Branches, len(s.Branches))
		for rawKey, options := range s.Branches {
			normalized := make([]Option, 0, len(options))
			for _, opt := range options {
				opt.Label = strings.TrimSpace(opt.Label)
				opt.Value = strings.TrimSpace(opt.Value)
				if opt.Label == "" {
					opt.Label = opt.Value
				}
				normalized = append(normalized, opt)
			}
			branches[strings.TrimSpace(rawKey)] = normalized
		}
		s.Branches = branches
	}

	for i := range s.Steps {
		step := &s.Steps[i]
		if step.Kind != KindInfer {
			continue
		}

		if _, ok := s.Branches[step.Key]; ok {
			step.Kind = KindSelect
		} else {
			step.Kind = KindText
		}
	}
}
