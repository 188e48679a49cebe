// Package cli implements the carcost commands on top of
// github.com/google/subcommands.
package cli

import (
	"github.com/google/subcommands"

	"github.com/iudanet/carcost/internal/client/history"
	"github.com/iudanet/carcost/internal/client/iocli"
	"github.com/iudanet/carcost/internal/client/render"
)

// Группы команд в справке
const (
	groupCalculator = "calculator"
	groupHistory    = "history"
)

const (
	msgEmptyName   = "Please enter a car name/model"
	msgSaveFailed  = "⚠ Could not save history. Please check your storage settings."
	msgCarNameAsk  = "Enter Car Name/Model: "
	msgCancelled   = "Deletion cancelled."
	msgConfirmTmpl = "Delete %q? (yes/no): "
)

type Cli struct {
	io       iocli.IO
	store    *history.Store
	renderer render.Renderer
	currency string
}

// New creates the command set. currency is the default rate table currency
// used when a command does not pass -currency.
func New(io iocli.IO, store *history.Store, renderer render.Renderer, currency string) *Cli {
	return &Cli{
		io:       io,
		store:    store,
		renderer: renderer,
		currency: currency,
	}
}

// Commands returns all commands bound to c.
func (c *Cli) Commands() []subcommands.Command {
	return []subcommands.Command{
		&calcCmd{cli: c},
		&saveCmd{cli: c},
		&ratesCmd{cli: c},
		&historyCmd{cli: c},
		&deleteCmd{cli: c},
		&clearCmd{cli: c},
		&inspectCmd{cli: c},
	}
}

// Register adds the commands and the standard help commands to cdr.
func (c *Cli) Register(cdr *subcommands.Commander) {
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.FlagsCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")

	for _, cmd := range c.Commands() {
		group := groupCalculator
		switch cmd.(type) {
		case *historyCmd, *deleteCmd, *clearCmd, *inspectCmd:
			group = groupHistory
		}
		cdr.Register(cmd, group)
	}
}

func (c *Cli) errorf(format string, a ...any) {
	c.io.Printf("Error: "+format+"\n", a...)
}
