package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ParsedString is the parsed form of one translation string: its fragments
// in source order. Empty input parses to zero fragments. A ParsedString is
// never modified after Parse returns, so sharing one across goroutines is
// safe.
type ParsedString struct {
	Fragments []Fragment
}

// Parse splits source into literal text and bracketed command spans. Spans
// are recognised by the grammars described in the package documentation;
// the text around them is kept verbatim. Fragment offsets count codepoints,
// not bytes, and tile the source exactly.
//
// The first unterminated '{' or unrecognised span aborts the parse,
// discarding any fragments already recognised. The returned error is always
// a *Error carrying the offending range.
func Parse(source string) (*ParsedString, error) {
	parsed := &ParsedString{}
	rest := source
	pos := 0
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			parsed.Fragments = append(parsed.Fragments, Fragment{
				Begin:   pos,
				End:     pos + utf8.RuneCountInString(rest),
				Content: Text(rest),
			})
			break
		}
		if open > 0 {
			text := rest[:open]
			size := utf8.RuneCountInString(text)
			parsed.Fragments = append(parsed.Fragments, Fragment{
				Begin:   pos,
				End:     pos + size,
				Content: Text(text),
			})
			pos += size
			rest = rest[open:]
		}
		// A span ends at the first '}'; braces do not nest.
		term := strings.IndexByte(rest, '}')
		if term < 0 {
			return nil, &Error{
				Begin:   pos,
				Message: "Unterminated string command, '}' expected.",
			}
		}
		span := rest[:term+1]
		size := utf8.RuneCountInString(span)
		content, ok := parseContent(span)
		if !ok {
			end := pos + size
			return nil, &Error{
				Begin:   pos,
				End:     &end,
				Message: fmt.Sprintf("Invalid string command: '%s'", span),
			}
		}
		parsed.Fragments = append(parsed.Fragments, Fragment{
			Begin:   pos,
			End:     pos + size,
			Content: content,
		})
		pos += size
		rest = rest[term+1:]
	}
	return parsed, nil
}

// MustParse is like Parse but panics on malformed input. It simplifies
// static initialisation and tests.
func MustParse(source string) *ParsedString {
	parsed, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return parsed
}

// Compile renders the fragments back into a single translation string. The
// output is canonical; parsing it again yields the same fragments. Offsets
// play no part, only content is rendered.
func (p *ParsedString) Compile() string {
	var b strings.Builder
	for _, fragment := range p.Fragments {
		b.WriteString(fragment.Content.Compile())
	}
	return b.String()
}
