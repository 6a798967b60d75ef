package main

import (
	"github.com/alecthomas/kong"
)

var (
	version string = "dev"

	cli struct {
		Version kong.VersionFlag `help:"Print version and exit."`

		Check checkCmd `cmd:"" help:"Check translation files against a base language file."`
		Fmt   fmtCmd   `cmd:"" help:"Rewrite a language file with canonically formatted strings."`
		Dump  dumpCmd  `cmd:"" help:"Parse a single string and dump its fragments."`
		Serve serveCmd `cmd:"" help:"Run the validation HTTP API."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Validator for OpenTTD-style language files.`),
		kong.Vars{"version": version},
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
