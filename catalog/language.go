package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Language holds the ## pragma header of a language file.
type Language struct {
	// Name and OwnName are the English and native names of the language.
	Name    string
	OwnName string
	// Tag is the parsed ##isocode. The zero Tag means none was declared.
	Tag language.Tag
	// GRFLangID is the NewGRF language id from ##grflangid.
	GRFLangID byte
	// Plural is the plural rule id from ##plural, or -1 when not declared.
	Plural int
	// Genders and Cases list the declared gender and case tags.
	Genders []string
	Cases   []string
	// Pragmas keeps the pragmas this package does not interpret, so a
	// file written by a newer tool still loads.
	Pragmas map[string]string
}

func (l *Language) applyPragma(text string) error {
	body := strings.TrimSpace(strings.TrimPrefix(text, "##"))
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return fmt.Errorf("empty pragma")
	}
	key := fields[0]
	value := strings.TrimSpace(strings.TrimPrefix(body, key))
	switch key {
	case "name":
		l.Name = value
	case "ownname":
		l.OwnName = value
	case "isocode":
		// Language files write en_GB, BCP 47 wants en-GB.
		tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
		if err != nil {
			return fmt.Errorf("isocode %q: %w", value, err)
		}
		l.Tag = tag
	case "plural":
		id, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("plural %q: %w", value, err)
		}
		l.Plural = id
	case "gender":
		l.Genders = fields[1:]
	case "case":
		l.Cases = fields[1:]
	case "grflangid":
		id, err := strconv.ParseUint(strings.TrimPrefix(value, "0x"), 16, 8)
		if err != nil {
			return fmt.Errorf("grflangid %q: %w", value, err)
		}
		l.GRFLangID = byte(id)
	default:
		l.Pragmas[key] = value
	}
	return nil
}
