package tabledef

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fsm/pkg/statemachine"
	"github.com/dmitrymomot/fsm/pkg/validator"
)

type (
	// State is the state type of machines built from a definition.
	State = statemachine.StringState
	// Event is the event type of machines built from a definition.
	Event = statemachine.StringEvent
)

// Definition describes a machine with string states and events.
type Definition struct {
	Name        string       `yaml:"name" json:"name"`
	Initial     string       `yaml:"initial" json:"initial"`
	Transitions []Transition `yaml:"transitions" json:"transitions"`
}

// Transition is a single table row.
type Transition struct {
	From  string `yaml:"from" json:"from"`
	Event string `yaml:"event" json:"event"`
	To    string `yaml:"to" json:"to"`
}

// Parse decodes and validates a definition. JSON documents are accepted as well.
// Unknown fields are rejected.
func Parse(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d Definition
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Load reads and parses the definition file at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadDefinition, err)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Validate checks that the initial state is set, that there is at least one
// transition and that every name is present and printable. All problems are
// reported together as validator.ValidationErrors wrapped in ErrInvalidDefinition.
// Repeated (from, event) pairs are not an error; see Duplicates.
func (d *Definition) Validate() error {
	rules := validator.Name("name", d.Name, false)
	rules = append(rules, validator.Name("initial", d.Initial, true)...)
	rules = append(rules, validator.RequiredSlice("transitions", d.Transitions))
	for i, t := range d.Transitions {
		prefix := fmt.Sprintf("transitions[%d].", i)
		rules = append(rules, validator.Name(prefix+"from", t.From, true)...)
		rules = append(rules, validator.Name(prefix+"event", t.Event, true)...)
		rules = append(rules, validator.Name(prefix+"to", t.To, true)...)
	}

	if err := validator.Apply(rules...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return nil
}

// Duplicates returns the transitions that overwrite an earlier row with the
// same (from, event) pair. The later row wins when the table is built.
func (d *Definition) Duplicates() []Transition {
	seen := make(map[[2]string]struct{}, len(d.Transitions))
	var out []Transition
	for _, t := range d.Transitions {
		k := [2]string{t.From, t.Event}
		if _, ok := seen[k]; ok {
			out = append(out, t)
			continue
		}
		seen[k] = struct{}{}
	}
	return out
}

// InitialState returns the initial state as a typed value.
func (d *Definition) InitialState() State {
	return State(d.Initial)
}

// Table builds the transition table.
func (d *Definition) Table() *statemachine.TransitionTable[State, Event] {
	b := statemachine.NewTransitionTable[State, Event]()
	for _, t := range d.Transitions {
		b.AddTransition(State(t.From), Event(t.Event), State(t.To))
	}
	return b.Build()
}

// NewMachine builds a machine in the initial state. The definition name is
// used as the machine name unless opts set another one.
func (d *Definition) NewMachine(opts ...statemachine.Option) (*statemachine.Machine[State, Event], error) {
	if d.Name != "" {
		opts = append([]statemachine.Option{statemachine.WithName(d.Name)}, opts...)
	}
	return statemachine.New(d.InitialState(), d.Table(), opts...)
}
