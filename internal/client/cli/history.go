package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type historyCmd struct {
	cli *Cli
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show saved calculations" }
func (*historyCmd) Usage() string {
	return `history

  Shows saved calculations, newest first. Entries older than 24 hours are
  removed.
`
}

func (*historyCmd) SetFlags(*flag.FlagSet) {}

func (c *historyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Load уведомляет наблюдателя: список выводит renderer
	c.cli.store.Observe(c.cli.renderer)
	c.cli.store.Load(ctx)
	return subcommands.ExitSuccess
}
