package catalog

import (
	"fmt"
	"regexp"

	"github.com/TrueBrain/nile-validator/parser"
)

// Entry is one translation string in a language file.
type Entry struct {
	// ID is the string identifier, STR_NEWS_TRAIN_CRASH and friends.
	ID string
	// Case is the case tag of a .case variant line, empty for the
	// default form.
	Case string
	// Line is the 1-based line number the entry was read from.
	Line int
	// Raw is the value exactly as written in the file.
	Raw string
	// Value is the parsed form of Raw.
	Value *parser.ParsedString
}

var reEntry = regexp.MustCompile(`^(\w+)(?:\.(\w+))?[ \t]*:(.*)$`)

func parseEntry(text string, line int) (*Entry, error) {
	m := reEntry.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("malformed line, want 'IDENTIFIER :text'")
	}
	value, err := parser.Parse(m[3])
	if err != nil {
		return nil, fmt.Errorf("string %s: %w", m[1], err)
	}
	return &Entry{ID: m[1], Case: m[2], Line: line, Raw: m[3], Value: value}, nil
}

// Key is the unique name of the entry within its file: the ID alone for the
// default form, ID.case for a case variant.
func (e *Entry) Key() string {
	if e.Case == "" {
		return e.ID
	}
	return e.ID + "." + e.Case
}
