package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/ctfpress/cmd/ctfpress/commands"
	"git.home.luguber.info/inful/ctfpress/internal/config"
	ferrors "git.home.luguber.info/inful/ctfpress/internal/foundation/errors"
	"git.home.luguber.info/inful/ctfpress/internal/version"
)

func main() {
	// Dotenv values must be in the environment before kong resolves env tags.
	config.LoadEnvFiles()

	cli := &commands.CLI{}
	globals := &commands.Global{Out: os.Stdout}
	kctx := kong.Parse(cli,
		kong.Name("ctfpress"),
		kong.Description("Convert CTF write-up folders into Zola or Hugo content pages."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	if err := kctx.Run(globals, cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
