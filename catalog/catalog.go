// Package catalog reads OpenTTD language files: a header of ## pragmas
// describing the language, followed by one translation string per line.
//
//	##name Dutch
//	##ownname Nederlands
//	##isocode nl_NL
//	##plural 0
//	##gender m f
//
//	STR_CARGO_TRANSFER       :{CARGO_LONG} naar {STATION}
//	STR_CARGO_TRANSFER.gen   :{CARGO_LONG} naar {STATION}
//
// Every value is parsed eagerly, so a loaded Catalog only contains strings
// the parser accepts. Lines starting with a single # are comments.
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Catalog is one loaded language file.
type Catalog struct {
	Language Language
	Entries  []*Entry

	index map[string]*Entry
}

// Load reads the language file at path. Errors carry the file name and line
// number they were found at.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, filepath.Base(path))
}

// Read parses a language file from r. name is used in error messages only.
func Read(r io.Reader, name string) (*Catalog, error) {
	c := &Catalog{
		Language: Language{Plural: -1, Pragmas: map[string]string{}},
		index:    map[string]*Entry{},
	}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		switch {
		case strings.HasPrefix(text, "##"):
			if err := c.Language.applyPragma(text); err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, line, err)
			}
		case strings.HasPrefix(text, "#"), strings.TrimSpace(text) == "":
			// Comment or blank line.
		default:
			entry, err := parseEntry(text, line)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, line, err)
			}
			key := entry.Key()
			if _, dup := c.index[key]; dup {
				return nil, fmt.Errorf("%s:%d: duplicate string %s", name, line, key)
			}
			c.index[key] = entry
			c.Entries = append(c.Entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return c, nil
}

// Lookup finds the entry for id, optionally in a specific case form. The
// empty caseTag means the default form.
func (c *Catalog) Lookup(id, caseTag string) (*Entry, bool) {
	key := id
	if caseTag != "" {
		key = id + "." + caseTag
	}
	entry, ok := c.index[key]
	return entry, ok
}
