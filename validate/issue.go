package validate

import (
	"encoding/json"
	"fmt"
)

// Severity grades an Issue. Errors make a translation unusable; warnings
// flag differences a translator should look at but that still render.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalJSON renders the severity as its lowercase name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	default:
		return fmt.Errorf("unknown severity %q", name)
	}
	return nil
}

// Issue is one problem found in a translation. Begin and End are codepoint
// offsets into the translation string; issues about material that is absent
// from the translation carry a zero range.
type Issue struct {
	Severity Severity `json:"severity"`
	Begin    int      `json:"begin"`
	End      int      `json:"end"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", i.Begin, i.End, i.Severity, i.Message)
}
