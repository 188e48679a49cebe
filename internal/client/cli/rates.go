package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/iudanet/carcost/internal/rates"
)

type ratesCmd struct {
	cli *Cli
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show the reference exchange rates" }
func (*ratesCmd) Usage() string {
	return `rates

  Shows official and parallel DZD rates. Rates are indicative, always verify
  them before purchasing.
`
}

func (*ratesCmd) SetFlags(*flag.FlagSet) {}

func (c *ratesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.cli.renderer.RenderRates(rates.All(), rates.LastUpdated); err != nil {
		c.cli.errorf("%v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
