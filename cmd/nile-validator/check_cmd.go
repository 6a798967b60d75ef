package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/fatih/color"

	"github.com/TrueBrain/nile-validator/catalog"
	"github.com/TrueBrain/nile-validator/validate"
)

type checkCmd struct {
	Base         string   `short:"b" help:"Base language file the translations are checked against." type:"existingfile" placeholder:"FILE"`
	Config       string   `short:"c" help:"Configuration file." default:"nile-validator.yaml" placeholder:"FILE"`
	Ignore       []string `help:"String IDs to skip." placeholder:"ID"`
	Quiet        bool     `short:"q" help:"Only report errors, not warnings."`
	Translations []string `arg:"" optional:"" help:"Translation files to check." type:"existingfile"`
}

func (c *checkCmd) Help() string {
	return `Every string in each translation file is parsed and compared against the
string with the same identifier in the base file. Flags not given on the
command line are taken from the configuration file, if one exists.`
}

// A finding is one issue tied to the string it was found in.
type finding struct {
	key   string
	issue validate.Issue
}

var (
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
)

func (c *checkCmd) Run() error {
	if err := c.applyConfig(); err != nil {
		return err
	}
	if c.Base == "" {
		return fmt.Errorf("no base language file, pass --base or add one to %s", c.Config)
	}
	if len(c.Translations) == 0 {
		return fmt.Errorf("no translation files to check")
	}

	base, err := catalog.Load(c.Base)
	if err != nil {
		return fmt.Errorf("load base: %w", err)
	}

	totalErrors := 0
	for _, path := range c.Translations {
		trans, err := catalog.Load(path)
		if err != nil {
			fmt.Println(red(err.Error()))
			totalErrors++
			continue
		}

		findings, untranslated := checkCatalog(base, trans, c.Ignore)
		errors, warnings := 0, 0
		for _, f := range findings {
			if f.issue.Severity == validate.SeverityError {
				errors++
			} else {
				warnings++
			}
		}
		totalErrors += errors

		if errors == 0 && (c.Quiet || warnings == 0) {
			fmt.Printf("%s: %s\n", path, green("ok"))
			continue
		}
		fmt.Println(path)
		for _, f := range findings {
			if c.Quiet && f.issue.Severity != validate.SeverityError {
				continue
			}
			fmt.Println(formatFinding(f))
		}
		fmt.Printf("%s: %d errors, %d warnings, %d untranslated\n", path, errors, warnings, untranslated)
	}

	if totalErrors > 0 {
		return fmt.Errorf("found %d errors", totalErrors)
	}
	return nil
}

// checkCatalog validates every entry of trans against base and counts the
// base strings that trans does not translate at all. IDs in ignore are
// skipped on both sides.
func checkCatalog(base, trans *catalog.Catalog, ignore []string) ([]finding, int) {
	lang := &validate.Language{
		Plural:  trans.Language.Plural,
		Genders: trans.Language.Genders,
		Cases:   trans.Language.Cases,
	}

	var findings []finding
	for _, entry := range trans.Entries {
		if slices.Contains(ignore, entry.ID) {
			continue
		}
		baseEntry, ok := base.Lookup(entry.ID, "")
		if !ok {
			findings = append(findings, finding{
				key: entry.Key(),
				issue: validate.Issue{
					Severity: validate.SeverityWarning,
					Message:  "not in the base language file",
				},
			})
			continue
		}
		for _, issue := range validate.Translation(baseEntry.Value, entry.Value, lang) {
			findings = append(findings, finding{key: entry.Key(), issue: issue})
		}
	}

	untranslated := 0
	for _, entry := range base.Entries {
		if entry.Case != "" || slices.Contains(ignore, entry.ID) {
			continue
		}
		if _, ok := trans.Lookup(entry.ID, ""); !ok {
			untranslated++
		}
	}
	return findings, untranslated
}

func formatFinding(f finding) string {
	severity := f.issue.Severity.String()
	if f.issue.Severity == validate.SeverityError {
		severity = red(severity)
	} else {
		severity = yellow(severity)
	}
	at := ""
	if f.issue.End > 0 {
		at = fmt.Sprintf(" [%d..%d]", f.issue.Begin, f.issue.End)
	}
	return fmt.Sprintf("  %s: %s: %s%s", f.key, severity, f.issue.Message, at)
}

func (c *checkCmd) applyConfig() error {
	if c.Base != "" && len(c.Translations) > 0 {
		return nil
	}
	cfg, err := loadConfig(c.Config)
	if err != nil {
		if os.IsNotExist(err) && c.Config == defaultConfigFile {
			return nil
		}
		return err
	}
	if c.Base == "" {
		c.Base = cfg.Base
	}
	if len(c.Translations) == 0 {
		c.Translations = expandGlobs(cfg.Translations)
	}
	if len(c.Ignore) == 0 {
		c.Ignore = cfg.Ignore
	}
	return nil
}
