package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/iudanet/carcost/internal/models"
)

type deleteCmd struct {
	cli *Cli
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a saved calculation" }
func (*deleteCmd) Usage() string {
	return `delete [-yes] <id>

  Deletes the saved calculation with the given id (shown by history).
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Do not ask for confirmation")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		c.cli.io.Println("Usage: delete [-yes] <id>")
		return subcommands.ExitUsageError
	}

	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		c.cli.errorf("invalid id %q", f.Arg(0))
		return subcommands.ExitUsageError
	}

	entry, ok := findEntry(c.cli.store.Load(ctx), id)
	if !ok {
		c.cli.errorf("calculation not found with ID: %d", id)
		return subcommands.ExitFailure
	}

	if !c.yes {
		// Запрашиваем подтверждение
		confirm, err := c.cli.io.ReadInput(fmt.Sprintf(msgConfirmTmpl, entry.CarName))
		if err != nil {
			c.cli.errorf("failed to read confirmation: %v", err)
			return subcommands.ExitFailure
		}
		confirm = strings.ToLower(strings.TrimSpace(confirm))
		if confirm != "yes" && confirm != "y" {
			c.cli.io.Println(msgCancelled)
			return subcommands.ExitSuccess
		}
	}

	c.cli.store.Observe(c.cli.renderer)
	if _, err := c.cli.store.Remove(ctx, id); err != nil {
		c.cli.io.Println(msgSaveFailed)
		return subcommands.ExitFailure
	}

	c.cli.io.Println("✓ Calculation deleted.")
	return subcommands.ExitSuccess
}

func findEntry(entries []models.HistoryEntry, id int64) (models.HistoryEntry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.HistoryEntry{}, false
}
