package serve

import (
	"errors"

	"github.com/TrueBrain/nile-validator/parser"
	"github.com/TrueBrain/nile-validator/validate"
)

// ValidateRequest is the body of POST /validate.
type ValidateRequest struct {
	// Base is the string in the base language, usually English.
	Base string `json:"base"`
	// Translation is the string to validate against Base.
	Translation string `json:"translation"`
	// Language optionally describes the language the translation is
	// written in. Without it only structural checks run.
	Language *LanguageSpec `json:"language,omitempty"`
}

// LanguageSpec mirrors the language header fields validation needs.
type LanguageSpec struct {
	Plural  *int     `json:"plural,omitempty"`
	Genders []string `json:"genders,omitempty"`
	Cases   []string `json:"cases,omitempty"`
}

// context converts the wire form to the validation context. A nil spec
// means no language data at all.
func (l *LanguageSpec) context() *validate.Language {
	if l == nil {
		return nil
	}
	lang := &validate.Language{Plural: -1, Genders: l.Genders, Cases: l.Cases}
	if l.Plural != nil {
		lang.Plural = *l.Plural
	}
	return lang
}

// ValidateResponse lists everything found wrong with the translation. An
// empty list means the translation passed.
type ValidateResponse struct {
	Issues []validate.Issue `json:"issues"`
}

// parseIssue turns a parse failure into an issue, keeping the offsets the
// parser reported. prefix marks issues found in the base string rather
// than the translation.
func parseIssue(prefix string, err error) validate.Issue {
	issue := validate.Issue{Severity: validate.SeverityError, Message: prefix + err.Error()}
	var perr *parser.Error
	if errors.As(err, &perr) {
		issue.Begin = perr.Begin
		issue.End = perr.Begin
		if perr.End != nil {
			issue.End = *perr.End
		}
		issue.Message = prefix + perr.Message
	}
	return issue
}
