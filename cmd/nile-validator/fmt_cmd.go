package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/TrueBrain/nile-validator/parser"
)

type fmtCmd struct {
	Write bool   `short:"w" help:"Rewrite the file in place instead of printing it."`
	File  string `arg:"" help:"Language file to format." type:"existingfile"`
}

func (c *fmtCmd) Help() string {
	return `Every string value is parsed and written back in its canonical form:
normalised whitespace inside choice lists and gender definitions, and
quotes only around choices that need them. Comments, pragmas and the
layout of identifiers are left untouched.`
}

func (c *fmtCmd) Run() error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := formatFile(&out, data); err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}
	if c.Write {
		return os.WriteFile(c.File, out.Bytes(), 0o644)
	}
	_, err = os.Stdout.Write(out.Bytes())
	return err
}

// Same line shape the catalog reader accepts. Only the value is rewritten,
// the identifier and its padding pass through verbatim.
var reEntryLine = regexp.MustCompile(`^(\w+(?:\.\w+)?[ \t]*:)(.*)$`)

func formatFile(w io.Writer, data []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		formatted, err := formatLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		fmt.Fprintln(w, formatted)
	}
	return scanner.Err()
}

func formatLine(text string) (string, error) {
	if strings.HasPrefix(text, "#") || strings.TrimSpace(text) == "" {
		return text, nil
	}
	m := reEntryLine.FindStringSubmatch(text)
	if m == nil {
		return "", fmt.Errorf("malformed line, want 'IDENTIFIER :text'")
	}
	parsed, err := parser.Parse(m[2])
	if err != nil {
		return "", err
	}
	return m[1] + parsed.Compile(), nil
}
