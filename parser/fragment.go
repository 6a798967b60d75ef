package parser

import (
	"strconv"
	"strings"
)

// Fragment is one contiguous piece of a parsed string: a half-open range of
// codepoint offsets into the source, and the content recognised there.
type Fragment struct {
	Begin   int
	End     int
	Content FragmentContent
}

// FragmentContent is the content of a single fragment. Exactly four types
// implement it: Text, *StringCommand, *GenderDefinition and *ChoiceList.
// Consumers can switch over the concrete type exhaustively.
type FragmentContent interface {
	// Compile renders the content in its canonical written form.
	Compile() string

	fragmentContent()
}

// Text is a run of literal characters between string commands.
type Text string

func (Text) fragmentContent() {}

// Compile returns the text unchanged.
func (t Text) Compile() string { return string(t) }

// StringCommand is a {NAME} span: a command name with an optional argument
// index and an optional case suffix. Two special names exist, the empty
// name ({}, a line break in OpenTTD strings) and a single left brace ({{},
// the escape for a literal '{').
type StringCommand struct {
	// Index is the explicit argument index, or nil when the command binds
	// to the next argument position.
	Index *int
	Name  string
	// Case selects a grammatical case of the referenced string. Empty
	// when absent.
	Case string
}

func (*StringCommand) fragmentContent() {}

// Compile renders the command as {Name}, {Index:Name}, {Name.Case} or
// {Index:Name.Case}.
func (c *StringCommand) Compile() string {
	var b strings.Builder
	b.WriteByte('{')
	if c.Index != nil {
		b.WriteString(strconv.Itoa(*c.Index))
		b.WriteByte(':')
	}
	b.WriteString(c.Name)
	if c.Case != "" {
		b.WriteByte('.')
		b.WriteString(c.Case)
	}
	b.WriteByte('}')
	return b.String()
}

// GenderDefinition is a {G=tag} span declaring the gender of the string it
// appears in.
type GenderDefinition struct {
	Gender string
}

func (*GenderDefinition) fragmentContent() {}

// Compile renders the definition as {G=tag}, dropping any whitespace the
// source carried around the '='.
func (g *GenderDefinition) Compile() string {
	return "{G=" + g.Gender + "}"
}

// ChoiceList is a {P ...} or {G ...} style span selecting one of several
// choices based on an argument, such as the plural forms in {P car cars}.
type ChoiceList struct {
	// Kind is the single uppercase letter naming the selection rule, "P"
	// for plural and "G" for gender in OpenTTD strings.
	Kind string
	// Index and SubIndex name the argument the selection is based on;
	// both nil means the preceding argument. SubIndex is meaningful only
	// while Index is set.
	Index    *int
	SubIndex *int
	Choices  []string
}

func (*ChoiceList) fragmentContent() {}

// Compile renders the list with single spaces between tokens. A choice is
// quoted exactly when it is empty or contains ASCII whitespace; there is no
// escape for '"' inside a choice.
func (c *ChoiceList) Compile() string {
	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(c.Kind)
	if c.Index != nil {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(*c.Index))
		if c.SubIndex != nil {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(*c.SubIndex))
		}
	}
	for _, choice := range c.Choices {
		b.WriteByte(' ')
		if choice == "" || strings.ContainsAny(choice, " \t\n\f\r") {
			b.WriteByte('"')
			b.WriteString(choice)
			b.WriteByte('"')
		} else {
			b.WriteString(choice)
		}
	}
	b.WriteByte('}')
	return b.String()
}
