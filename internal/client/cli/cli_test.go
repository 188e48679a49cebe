package cli

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carcost/internal/calc"
	"github.com/iudanet/carcost/internal/client/history"
	"github.com/iudanet/carcost/internal/client/iocli"
	"github.com/iudanet/carcost/internal/client/render"
	"github.com/iudanet/carcost/internal/client/storage/memory"
	"github.com/iudanet/carcost/internal/clock"
	"github.com/iudanet/carcost/internal/models"
	"github.com/iudanet/carcost/internal/rates"
)

var testStart = time.Date(2026, time.February, 17, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	cli      *Cli
	io       *iocli.IOMock
	renderer *render.RendererMock
	store    *history.Store
	kv       *memory.Storage
}

func newMockIO() *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {},
		PrintfFunc:  func(format string, a ...any) {},
		ReadInputFunc: func(prompt string) (string, error) {
			return "", nil
		},
		IsInteractiveFunc: func() bool { return false },
		WriteFunc: func(p []byte) (int, error) {
			return len(p), nil
		},
	}
}

func newMockRenderer() *render.RendererMock {
	return &render.RendererMock{
		HistoryChangedFunc: func(entries []models.HistoryEntry) {},
		RenderHistoryFunc:  func(entries []models.HistoryEntry) error { return nil },
		RenderRatesFunc:    func(currencies []rates.Currency, updated time.Time) error { return nil },
		RenderResultFunc:   func(in models.Inputs, res models.Result) error { return nil },
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	kv := memory.New()
	store := history.NewStore(kv,
		history.WithClock(clock.NewManual(testStart)),
		history.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	mockIO := newMockIO()
	renderer := newMockRenderer()

	return &testEnv{
		cli:      New(mockIO, store, renderer, rates.DefaultCode),
		io:       mockIO,
		renderer: renderer,
		store:    store,
		kv:       kv,
	}
}

// run выполняет команду так же, как main: через Commander
func (e *testEnv) run(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()

	top := flag.NewFlagSet("carcost", flag.ContinueOnError)
	top.SetOutput(io.Discard)
	require.NoError(t, top.Parse(args))

	cdr := subcommands.NewCommander(top, "carcost")
	e.cli.Register(cdr)

	return cdr.Execute(context.Background())
}

func (e *testEnv) seed(t *testing.T, names ...string) []models.HistoryEntry {
	t.Helper()
	ctx := context.Background()

	in := exampleInputs()
	for _, name := range names {
		_, err := e.store.Save(ctx, name, in, calc.Calculate(in))
		require.NoError(t, err)
	}
	return e.store.Entries()
}

func exampleInputs() models.Inputs {
	return models.Inputs{
		CarPrice:          10000,
		Shipping:          1500,
		OfficialRate:      153,
		ParallelRate:      280,
		CustomsTaxPercent: 20,
		PortFees:          90000,
	}
}

func printlnArgs(m *iocli.IOMock) []any {
	var out []any
	for _, call := range m.PrintlnCalls() {
		out = append(out, call.A...)
	}
	return out
}

func printfFormats(m *iocli.IOMock) []string {
	var out []string
	for _, call := range m.PrintfCalls() {
		out = append(out, call.Format)
	}
	return out
}

func TestCli_Commands(t *testing.T) {
	e := newTestEnv(t)

	var names []string
	for _, cmd := range e.cli.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Equal(t, []string{"calc", "save", "rates", "history", "delete", "clear", "inspect"}, names)
}
