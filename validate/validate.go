// Package validate checks a parsed translation string against the base
// string it translates and the language it is written for. It reports
// structural problems only. It never renders or substitutes arguments.
package validate

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/TrueBrain/nile-validator/parser"
)

// Language is the context a translation is validated in, a subset of a
// language file header.
type Language struct {
	// Plural is the OpenTTD plural rule id, or -1 when not declared.
	Plural int
	// Genders and Cases list the tags the language declares for genders
	// of nouns and grammatical cases.
	Genders []string
	Cases   []string
}

// Translation validates a translated string against the base string it
// translates. Both parsed strings must be non-nil. lang may be nil, which
// skips every check that needs language data: plural form counts, gender
// tags and case tags.
//
// Issues come out in a deterministic order: problems local to a single
// fragment first, in fragment order, then the cross-string comparisons.
func Translation(base, trans *parser.ParsedString, lang *Language) []Issue {
	v := &validator{
		lang:           lang,
		basePositions:  map[int][]string{},
		baseControl:    map[string]int{},
		transPositions: map[int][]string{},
		transSpans:     map[int]span{},
		transControl:   map[string]int{},
	}
	v.collectBase(base)
	v.checkTranslation(trans)
	v.comparePositions()
	v.compareControl()
	v.checkChoiceRefs()
	return v.issues
}

type span struct{ begin, end int }

type choiceRef struct {
	where span
	index int
}

type validator struct {
	lang   *Language
	issues []Issue

	basePositions map[int][]string
	baseControl   map[string]int

	transPositions map[int][]string
	transSpans     map[int]span
	transControl   map[string]int
	choiceRefs     []choiceRef
}

// collectBase builds the argument-position map and the non-argument command
// counts of the base string. The base itself is taken as given; problems in
// it are not reported here.
func (v *validator) collectBase(base *parser.ParsedString) {
	pos := 0
	for _, fragment := range base.Fragments {
		command, ok := fragment.Content.(*parser.StringCommand)
		if !ok {
			continue
		}
		class, known := builtinCommands[command.Name]
		if !known {
			continue
		}
		if class == classParameter {
			p := pos
			if command.Index != nil {
				p = *command.Index
			}
			v.basePositions[p] = append(v.basePositions[p], command.Name)
			pos = p + 1
		} else {
			v.baseControl[displayCommand(command.Name)]++
		}
	}
}

func (v *validator) checkTranslation(trans *parser.ParsedString) {
	pos := 0
	for i, fragment := range trans.Fragments {
		where := span{fragment.Begin, fragment.End}
		switch content := fragment.Content.(type) {
		case *parser.StringCommand:
			class, known := builtinCommands[content.Name]
			if !known {
				v.errorf(where, "unknown string command: '%s'", content.Compile())
				continue
			}
			if content.Case != "" && v.lang != nil && !slices.Contains(v.lang.Cases, content.Case) {
				v.errorf(where, "unknown case: '%s'", content.Case)
			}
			if class == classParameter {
				p := pos
				if content.Index != nil {
					p = *content.Index
				}
				v.transPositions[p] = append(v.transPositions[p], content.Name)
				if _, seen := v.transSpans[p]; !seen {
					v.transSpans[p] = where
				}
				pos = p + 1
			} else {
				v.transControl[displayCommand(content.Name)]++
			}
		case *parser.GenderDefinition:
			if i != 0 {
				v.errorf(where, "gender definition must be at the start of the string")
			}
			if v.lang != nil && !slices.Contains(v.lang.Genders, content.Gender) {
				v.errorf(where, "unknown gender: '%s'", content.Gender)
			}
		case *parser.ChoiceList:
			v.checkChoice(where, content)
		}
	}
}

func (v *validator) checkChoice(where span, list *parser.ChoiceList) {
	switch list.Kind {
	case "P":
		if v.lang != nil {
			if forms, known := pluralFormCount(v.lang.Plural); known && len(list.Choices) != forms {
				v.errorf(where, "plural choice list has %d choices, plural rule %d needs %d",
					len(list.Choices), v.lang.Plural, forms)
			}
		}
	case "G":
		if v.lang != nil && len(list.Choices) != len(v.lang.Genders) {
			v.errorf(where, "gender choice list has %d choices, the language declares %d genders",
				len(list.Choices), len(v.lang.Genders))
		}
	default:
		v.errorf(where, "unknown choice list kind: '%s'", list.Kind)
	}
	if list.Index != nil {
		v.choiceRefs = append(v.choiceRefs, choiceRef{where: where, index: *list.Index})
	}
}

// comparePositions checks that base and translation consume the same
// arguments: every position the base reads must be read by the translation
// with the same command, and the translation must not read positions the
// base does not have.
func (v *validator) comparePositions() {
	for _, p := range sortedKeys(v.basePositions) {
		transNames, ok := v.transPositions[p]
		if !ok {
			v.errorf(span{}, "missing parameter %s at position %d", displayList(v.basePositions[p]), p)
			continue
		}
		if !equalNames(v.basePositions[p], transNames) {
			v.errorf(v.transSpans[p], "parameter at position %d is %s, the base has %s",
				p, displayList(transNames), displayList(v.basePositions[p]))
		}
	}
	for _, p := range sortedKeys(v.transPositions) {
		if _, ok := v.basePositions[p]; !ok {
			v.errorf(v.transSpans[p], "unexpected parameter %s at position %d", displayList(v.transPositions[p]), p)
		}
	}
}

// compareControl warns when colours, fonts or other non-argument commands
// appear a different number of times than in the base.
func (v *validator) compareControl() {
	names := make(map[string]struct{}, len(v.baseControl)+len(v.transControl))
	for name := range v.baseControl {
		names[name] = struct{}{}
	}
	for name := range v.transControl {
		names[name] = struct{}{}
	}
	for _, name := range sortedKeys(names) {
		if v.transControl[name] != v.baseControl[name] {
			v.warnf(span{}, "command %s appears %d times, %d in the base",
				name, v.transControl[name], v.baseControl[name])
		}
	}
}

func (v *validator) checkChoiceRefs() {
	for _, ref := range v.choiceRefs {
		if _, ok := v.transPositions[ref.index]; !ok {
			v.errorf(ref.where, "choice list references parameter %d, which does not exist", ref.index)
		}
	}
}

func (v *validator) errorf(where span, format string, args ...any) {
	v.issues = append(v.issues, Issue{
		Severity: SeverityError,
		Begin:    where.begin,
		End:      where.end,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (v *validator) warnf(where span, format string, args ...any) {
	v.issues = append(v.issues, Issue{
		Severity: SeverityWarning,
		Begin:    where.begin,
		End:      where.end,
		Message:  fmt.Sprintf(format, args...),
	})
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func equalNames(a, b []string) bool {
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

func displayList(names []string) string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	display := make([]string, len(sorted))
	for i, name := range sorted {
		display[i] = displayCommand(name)
	}
	return strings.Join(display, ", ")
}
