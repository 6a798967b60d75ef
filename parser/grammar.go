package parser

import (
	"regexp"
	"strconv"
)

var (
	reCommand = regexp.MustCompile(`^\{(?:(\d+):)?(|\{|[A-Z][A-Z0-9_]*)(?:\.(\w+))?\}$`)
	reGender  = regexp.MustCompile(`^\{G\s*=\s*(\w+)\}$`)
	reChoice  = regexp.MustCompile(`^\{([A-Z])(?:\s+(\d+)(?::(\d+))?)?(\s+[^\s0-9].*?)\s*\}$`)
	reToken   = regexp.MustCompile(`^\s+(?:([^\s"]+)|"([^"]*)")`)
)

// parseContent recognises one bracketed span, delimiters included, trying
// the grammars in their fixed order. It reports false when the span matches
// none of them.
func parseContent(span string) (FragmentContent, bool) {
	if command, ok := parseCommand(span); ok {
		return command, true
	}
	if definition, ok := parseGender(span); ok {
		return definition, true
	}
	if list, ok := parseChoice(span); ok {
		return list, true
	}
	return nil, false
}

func parseCommand(span string) (*StringCommand, bool) {
	m := reCommand.FindStringSubmatch(span)
	if m == nil {
		return nil, false
	}
	return &StringCommand{Index: parseIndex(m[1]), Name: m[2], Case: m[3]}, true
}

func parseGender(span string) (*GenderDefinition, bool) {
	m := reGender.FindStringSubmatch(span)
	if m == nil {
		return nil, false
	}
	return &GenderDefinition{Gender: m[1]}, true
}

func parseChoice(span string) (*ChoiceList, bool) {
	m := reChoice.FindStringSubmatch(span)
	if m == nil {
		return nil, false
	}
	list := &ChoiceList{Kind: m[1], Index: parseIndex(m[2]), SubIndex: parseIndex(m[3])}
	// The token region must be consumed entirely. Leftover content that is
	// neither a bare token nor a quoted one fails the whole grammar.
	rest := m[4]
	for rest != "" {
		t := reToken.FindStringSubmatchIndex(rest)
		if t == nil {
			return nil, false
		}
		if t[2] >= 0 {
			list.Choices = append(list.Choices, rest[t[2]:t[3]])
		} else {
			list.Choices = append(list.Choices, rest[t[4]:t[5]])
		}
		rest = rest[t[1]:]
	}
	return list, true
}

// parseIndex converts a captured digit run. An empty capture and a run that
// overflows int both yield nil, an absent index.
func parseIndex(digits string) *int {
	if digits == "" {
		return nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &n
}
