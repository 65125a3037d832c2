// Package treehouse runs the treehouse doorman: visitors give their name and
// are greeted, refused, or admitted on probation according to a roster.
package treehouse

import (
	"fmt"
	"io"
	"strings"
)

// ActionKind is what the doorman does with a visitor.
type ActionKind int

const (
	ActionAccept ActionKind = iota
	ActionAcceptWithNote
	ActionRefuse
	ActionProbation
)

// String returns the action name.
func (k ActionKind) String() string {
	switch k {
	case ActionAccept:
		return "accept"
	case ActionAcceptWithNote:
		return "accept with note"
	case ActionRefuse:
		return "refuse"
	case ActionProbation:
		return "probation"
	default:
		return "unknown"
	}
}

// Action pairs an ActionKind with its note. Note is only set for
// ActionAcceptWithNote.
type Action struct {
	Kind ActionKind
	Note string
}

// Accept lets the visitor in.
func Accept() Action {
	return Action{Kind: ActionAccept}
}

// Refuse turns the visitor away.
func Refuse() Action {
	return Action{Kind: ActionRefuse}
}

// Probation admits the visitor as a probationary member.
func Probation() Action {
	return Action{Kind: ActionProbation}
}

// AcceptWithNote accepts the visitor and passes on a note.
func AcceptWithNote(note string) Action {
	return Action{Kind: ActionAcceptWithNote, Note: note}
}

// drinkingAge is the age below which noted visitors get a warning.
const drinkingAge = 21

// Visitor is one entry on the roster.
type Visitor struct {
	Name   string
	Action Action
	Age    int
}

// NewVisitor creates a visitor. Names are stored lower-cased.
func NewVisitor(name string, action Action, age int) Visitor {
	return Visitor{
		Name:   strings.ToLower(name),
		Action: action,
		Age:    age,
	}
}

// Greet writes the doorman's response to this visitor.
func (v Visitor) Greet(w io.Writer) error {
	var lines []string
	switch v.Action.Kind {
	case ActionAccept:
		lines = append(lines, fmt.Sprintf("Welcome to the treehouse, %s!", v.Name))
	case ActionAcceptWithNote:
		lines = append(lines, fmt.Sprintf("Welcome to the treehouse, %s!", v.Name), v.Action.Note)
		if v.Age < drinkingAge {
			lines = append(lines, "No booze for u!")
		}
	case ActionProbation:
		lines = append(lines, fmt.Sprintf("%s is now a probationary member.", v.Name))
	case ActionRefuse:
		lines = append(lines, fmt.Sprintf("%s is not allowed. Scram!", v.Name))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("treehouse: greet %s: %w", v.Name, err)
		}
	}
	return nil
}

// String formats the visitor as a roster line.
func (v Visitor) String() string {
	if v.Action.Kind == ActionAcceptWithNote {
		return fmt.Sprintf("%s (%s %q, age %d)", v.Name, v.Action.Kind, v.Action.Note, v.Age)
	}
	return fmt.Sprintf("%s (%s, age %d)", v.Name, v.Action.Kind, v.Age)
}

// Roster is the ordered visitor list.
type Roster struct {
	visitors []Visitor
}

// NewRoster creates a roster from the given visitors.
func NewRoster(visitors ...Visitor) *Roster {
	return &Roster{visitors: append([]Visitor(nil), visitors...)}
}

// DefaultRoster returns the treehouse's standing visitor list.
func DefaultRoster() *Roster {
	return NewRoster(
		NewVisitor("bert", Accept(), 45),
		NewVisitor("steve", AcceptWithNote("Juice in the fridge!"), 11),
		NewVisitor("fred", Refuse(), 30),
	)
}

// Find looks up a visitor by exact (lower-case) name.
func (r *Roster) Find(name string) (Visitor, bool) {
	for _, v := range r.visitors {
		if v.Name == name {
			return v, true
		}
	}
	return Visitor{}, false
}

// Admit adds a new visitor on probation and returns it.
func (r *Roster) Admit(name string) Visitor {
	v := NewVisitor(name, Probation(), 0)
	r.visitors = append(r.visitors, v)
	return v
}

// Visitors returns a copy of the roster in admission order.
func (r *Roster) Visitors() []Visitor {
	return append([]Visitor(nil), r.visitors...)
}

// Len returns the number of visitors.
func (r *Roster) Len() int {
	return len(r.visitors)
}
