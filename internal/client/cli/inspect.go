package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"

	"github.com/google/subcommands"

	"github.com/iudanet/carcost/internal/client/history"
)

type inspectCmd struct {
	cli *Cli
}

func (*inspectCmd) Name() string     { return "inspect" }
func (*inspectCmd) Synopsis() string { return "print stored history as JSON" }
func (*inspectCmd) Usage() string {
	return `inspect [jsonpath]

  Prints the persisted history exactly as stored, including expired entries
  not purged yet. An optional JSONPath expression selects a part of it:

    carcost inspect '$[*].carName'
    carcost inspect '$[0].breakdown'
`
}

func (*inspectCmd) SetFlags(*flag.FlagSet) {}

func (c *inspectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		c.cli.io.Println("Usage: inspect [jsonpath]")
		return subcommands.ExitUsageError
	}

	value, err := c.cli.store.Inspect(ctx, f.Arg(0))
	if err != nil {
		c.cli.errorf("%v", err)
		if errors.Is(err, history.ErrInvalidQuery) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		c.cli.errorf("failed to encode result: %v", err)
		return subcommands.ExitFailure
	}

	if _, err := c.cli.io.Write(append(data, '\n')); err != nil {
		c.cli.errorf("failed to write output: %v", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
