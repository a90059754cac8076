package injector

import (
	"encoding/xml"
	"fmt"

	"github.com/dmitrymomot/statebus/pkg/statemachine"
)

// Definition describes a state machine.
type Definition struct {
	XMLName xml.Name          `xml:"fsm" yaml:"-" json:"-"`
	Initial string            `xml:"initial,attr" yaml:"initial" json:"initial"`
	States  []StateDefinition `xml:"state" yaml:"states" json:"states"`
}

// StateDefinition describes one state.
type StateDefinition struct {
	Name        string                 `xml:"name,attr" yaml:"name" json:"name"`
	Entering    string                 `xml:"entering,attr,omitempty" yaml:"entering,omitempty" json:"entering,omitempty"`
	Exiting     string                 `xml:"exiting,attr,omitempty" yaml:"exiting,omitempty" json:"exiting,omitempty"`
	Transitions []TransitionDefinition `xml:"transition" yaml:"transitions,omitempty" json:"transitions,omitempty"`
}

// TransitionDefinition maps an action to a target state name.
type TransitionDefinition struct {
	Action string `xml:"action,attr" yaml:"action" json:"action"`
	Target string `xml:"target,attr" yaml:"target" json:"target"`
}

// Validate checks that every state is named.
// Targets are not checked: unknown targets are ignored at runtime.
func (d *Definition) Validate() error {
	for i, s := range d.States {
		if s.Name == "" {
			return fmt.Errorf("%w: state #%d has no name", ErrInvalidDefinition, i)
		}
	}
	return nil
}

// IsInitial reports whether name is the initial state.
func (d *Definition) IsInitial(name string) bool {
	return d.Initial != "" && d.Initial == name
}

// BuildStates builds the states in document order. When a state lists the same
// action twice, the first transition wins.
func (d *Definition) BuildStates() []*statemachine.State {
	states := make([]*statemachine.State, 0, len(d.States))
	for _, sd := range d.States {
		states = append(states, sd.State())
	}
	return states
}

// State builds the state described by sd.
func (sd StateDefinition) State() *statemachine.State {
	opts := make([]statemachine.StateOption, 0, len(sd.Transitions)+2)
	if sd.Entering != "" {
		opts = append(opts, statemachine.WithEntering(sd.Entering))
	}
	if sd.Exiting != "" {
		opts = append(opts, statemachine.WithExiting(sd.Exiting))
	}
	for _, t := range sd.Transitions {
		opts = append(opts, statemachine.WithTransition(t.Action, t.Target))
	}
	return statemachine.NewState(sd.Name, opts...)
}
