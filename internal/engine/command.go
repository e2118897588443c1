package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Verb selects interpreter behavior.
type Verb int

const (
	VerbUnknown Verb = iota
	VerbLook
	VerbMove
	VerbTake
	VerbInventory
	VerbRead
	VerbSearch
	VerbUnlock
)

// Definition describes a recognized verb for the command key.
type Definition struct {
	Verb  Verb
	Name  string
	Usage string
}

// commands is in command key order.
var commands = []Definition{
	{Verb: VerbLook, Name: "look", Usage: "look"},
	{Verb: VerbMove, Name: "move", Usage: "move [direction]"},
	{Verb: VerbTake, Name: "take", Usage: "take [item]"},
	{Verb: VerbInventory, Name: "inventory", Usage: "inventory"},
	{Verb: VerbRead, Name: "read", Usage: "read"},
	{Verb: VerbSearch, Name: "search", Usage: "search"},
	{Verb: VerbUnlock, Name: "unlock", Usage: "unlock [object]"},
}

var verbsByName = func() map[string]Verb {
	m := make(map[string]Verb, len(commands))
	for _, c := range commands {
		m[c.Name] = c.Verb
	}
	return m
}()

// Commands returns the recognized verbs in command key order.
func Commands() []Definition {
	out := make([]Definition, len(commands))
	copy(out, commands)
	return out
}

func (v Verb) String() string {
	for _, c := range commands {
		if c.Verb == v {
			return c.Name
		}
	}
	return "unknown"
}

// Command is a parsed input line.
type Command struct {
	Verb Verb
	Name string // first token as typed, after normalization
	Arg  string
}

var lower = cases.Lower(language.Und)

// ParseCommand trims and lowercases input, then splits it on single spaces.
// The first token is the verb and the rest, rejoined with single spaces, is
// the argument. Runs of spaces leave empty tokens in the argument.
func ParseCommand(input string) Command {
	normalized := lower.String(strings.TrimSpace(input))
	parts := strings.Split(normalized, " ")

	cmd := Command{
		Name: parts[0],
		Arg:  strings.Join(parts[1:], " "),
	}
	if v, ok := verbsByName[cmd.Name]; ok {
		cmd.Verb = v
	}
	return cmd
}
