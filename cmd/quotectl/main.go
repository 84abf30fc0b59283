// Command quotectl inspects and maintains the local quoting state.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"

	"github.com/google/subcommands"

	"quotedesk/go_backend/internal/app"
	"quotedesk/go_backend/internal/app/config"
	"quotedesk/go_backend/internal/logging"
)

var commands = []subcommands.Command{
	&nextIDCmd{},
	&pingCmd{},
	&pullCatalogCmd{},
	&exportCmd{},
}

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// open loads configuration and state. Logs go to stderr so stdout stays
// clean for command output.
func open(ctx context.Context) (*app.Runtime, config.Config, error) {
	cfg := config.MustLoad()
	slog.SetDefault(logging.New(os.Stderr, cfg.LogLevel))
	rt, err := app.Open(ctx, cfg)
	return rt, cfg, err
}
