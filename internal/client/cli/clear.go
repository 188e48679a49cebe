package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type clearCmd struct {
	cli *Cli
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all saved calculations" }
func (*clearCmd) Usage() string {
	return `clear

  Deletes the whole calculation history.
`
}

func (*clearCmd) SetFlags(*flag.FlagSet) {}

func (c *clearCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c.cli.store.Load(ctx)
	c.cli.store.Observe(c.cli.renderer)

	if err := c.cli.store.Clear(ctx); err != nil {
		c.cli.io.Println(msgSaveFailed)
		return subcommands.ExitFailure
	}

	c.cli.io.Println("✓ History cleared.")
	return subcommands.ExitSuccess
}
