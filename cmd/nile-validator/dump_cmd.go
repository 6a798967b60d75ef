package main

import (
	"github.com/alecthomas/repr"

	"github.com/TrueBrain/nile-validator/parser"
)

type dumpCmd struct {
	Text string `arg:"" help:"String to parse, e.g. '{G=n}{NUM} item{P \"\" s}'."`
}

func (c *dumpCmd) Run() error {
	parsed, err := parser.Parse(c.Text)
	if err != nil {
		return err
	}
	repr.Println(parsed, repr.Indent("  "))
	return nil
}
