package cli

import (
	"context"
	"errors"
	"flag"

	"github.com/google/subcommands"

	"github.com/iudanet/carcost/internal/calc"
	"github.com/iudanet/carcost/internal/client/history"
)

type saveCmd struct {
	cli   *Cli
	name  string
	flags inputFlags
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "calculate and save to history" }
func (*saveCmd) Usage() string {
	return `save -name <car> -price <amount> [calc options]

  Calculates like calc and saves the result to history. Without -name the
  car name is asked interactively. History keeps the 5 most recent
  calculations for 24 hours.
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	c.flags.register(f)
	f.StringVar(&c.name, "name", "", "Car name/model")
}

func (c *saveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.flags.inputs(c.cli.currency)
	if err != nil {
		c.cli.errorf("%v", err)
		return subcommands.ExitUsageError
	}
	res := calc.Calculate(in)

	if err := c.cli.renderer.RenderResult(in, res); err != nil {
		c.cli.errorf("%v", err)
		return subcommands.ExitFailure
	}

	name := c.name
	if name == "" && c.cli.io.IsInteractive() {
		name, err = c.cli.io.ReadInput(msgCarNameAsk)
		if err != nil {
			c.cli.errorf("failed to read car name: %v", err)
			return subcommands.ExitFailure
		}
	}

	// Загружаем молча: просроченные записи удаляются, вывод только после сохранения
	c.cli.store.Load(ctx)
	c.cli.store.Observe(c.cli.renderer)

	entry, err := c.cli.store.Save(ctx, name, in, res)
	switch {
	case errors.Is(err, history.ErrEmptyName):
		c.cli.io.Println(msgEmptyName)
		return subcommands.ExitUsageError
	case errors.Is(err, history.ErrWriteFailed):
		c.cli.io.Println(msgSaveFailed)
		return subcommands.ExitFailure
	case err != nil:
		c.cli.errorf("%v", err)
		return subcommands.ExitFailure
	}

	c.cli.io.Printf("✓ Saved %q (id %d)\n", entry.CarName, entry.ID)
	return subcommands.ExitSuccess
}
