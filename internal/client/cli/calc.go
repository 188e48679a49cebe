package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/iudanet/carcost/internal/calc"
)

type calcCmd struct {
	cli   *Cli
	flags inputFlags
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "calculate the landed cost of an imported car" }
func (*calcCmd) Usage() string {
	return `calc -price <amount> [-shipping <amount>] [-tax <percent>] [-port <DZD>] [-vat] [-currency <code>]

  Calculates the landed cost in DZD. Car and shipping are converted at the
  parallel rate, customs tax applies to the car price at the official rate.
  Invalid or empty values fall back to defaults.
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	c.flags.register(f)
}

func (c *calcCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.flags.inputs(c.cli.currency)
	if err != nil {
		c.cli.errorf("%v", err)
		return subcommands.ExitUsageError
	}

	if err := c.cli.renderer.RenderResult(in, calc.Calculate(in)); err != nil {
		c.cli.errorf("%v", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
