// Package render turns calculations, history and the rate table into
// terminal output: markdown built from templates, styled with glamour.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/template"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/iudanet/carcost/internal/calc"
	"github.com/iudanet/carcost/internal/client/history"
	"github.com/iudanet/carcost/internal/models"
	"github.com/iudanet/carcost/internal/rates"
)

// Styles accepted by WithStyle. StylePlain writes the markdown unstyled.
const (
	StyleAuto  = styles.AutoStyle
	StyleDark  = styles.DarkStyle
	StyleLight = styles.LightStyle
	StyleNoTTY = styles.NoTTYStyle
	StyleASCII = styles.AsciiStyle
	StylePlain = "plain"
)

const defaultWordWrap = 80

var ErrUnknownStyle = errors.New("unknown output style")

//go:generate moq -out renderer_mock.go . Renderer

// Renderer displays results, the history list and the rate table.
// It observes the history store and redraws the list on each change.
type Renderer interface {
	history.Observer
	RenderResult(in models.Inputs, res models.Result) error
	RenderHistory(entries []models.HistoryEntry) error
	RenderRates(currencies []rates.Currency, updated time.Time) error
}

var _ Renderer = (*Terminal)(nil)

// Terminal renders to a writer, usually the terminal.
type Terminal struct {
	out      io.Writer
	md       *glamour.TermRenderer
	f        *Formatter
	logger   *slog.Logger
	result   *template.Template
	history  *template.Template
	rates    *template.Template
	style    string
	lang     string
	currency string
	wrap     int
	limit    int
}

type Option func(*Terminal)

func WithStyle(style string) Option {
	return func(t *Terminal) {
		if style != "" {
			t.style = style
		}
	}
}

func WithLanguage(lang string) Option {
	return func(t *Terminal) {
		t.lang = lang
	}
}

// WithCurrency sets the foreign currency used for prices and totals.
func WithCurrency(code string) Option {
	return func(t *Terminal) {
		if code != "" {
			t.currency = code
		}
	}
}

func WithWordWrap(n int) Option {
	return func(t *Terminal) {
		if n > 0 {
			t.wrap = n
		}
	}
}

// WithLimit sets the history capacity shown next to the entry count.
func WithLimit(n int) Option {
	return func(t *Terminal) {
		if n > 0 {
			t.limit = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Terminal) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTerminal creates a renderer writing to out.
func NewTerminal(out io.Writer, opts ...Option) (*Terminal, error) {
	t := &Terminal{
		out:      out,
		logger:   slog.Default(),
		style:    StyleAuto,
		currency: rates.DefaultCode,
		wrap:     defaultWordWrap,
		limit:    history.DefaultLimit,
	}
	for _, opt := range opts {
		opt(t)
	}

	if !ValidStyle(t.style) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, t.style)
	}

	if t.style != StylePlain {
		md, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(t.style),
			glamour.WithWordWrap(t.wrap),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		t.md = md
	}

	t.f = NewFormatter(t.lang, t.currency)
	funcs := template.FuncMap{
		"t":       t.f.T,
		"local":   t.f.Local,
		"foreign": t.f.Foreign,
		"percent": t.f.Percent,
	}
	t.result = template.Must(template.New("result").Funcs(funcs).Parse(resultTemplate))
	t.history = template.Must(template.New("history").Funcs(funcs).Parse(historyTemplate))
	t.rates = template.Must(template.New("rates").Funcs(funcs).Parse(ratesTemplate))

	return t, nil
}

// ValidStyle reports whether style can be passed to WithStyle.
func ValidStyle(style string) bool {
	switch style {
	case StyleAuto, StyleDark, StyleLight, StyleNoTTY, StyleASCII, StylePlain:
		return true
	}
	return false
}

// RenderResult shows the landed cost and its breakdown.
func (t *Terminal) RenderResult(in models.Inputs, res models.Result) error {
	in = calc.Normalize(in)
	data := struct {
		In            models.Inputs
		Res           models.Result
		Currency      string
		VATSavedLocal float64
	}{
		In:            in,
		Res:           res,
		Currency:      t.f.CurrencyCode(),
		VATSavedLocal: calc.VATSavedLocal(in, res),
	}
	return t.execute(t.result, data)
}

// RenderHistory shows saved calculations, newest first.
func (t *Terminal) RenderHistory(entries []models.HistoryEntry) error {
	data := struct {
		Currency string
		Entries  []models.HistoryEntry
		Limit    int
	}{
		Currency: t.f.CurrencyCode(),
		Entries:  entries,
		Limit:    t.limit,
	}
	return t.execute(t.history, data)
}

// RenderRates shows the reference rate table.
func (t *Terminal) RenderRates(currencies []rates.Currency, updated time.Time) error {
	data := struct {
		Updated    string
		Currencies []rates.Currency
	}{
		Updated:    updated.Format(layoutsFor(t.f.Language()).date),
		Currencies: currencies,
	}
	return t.execute(t.rates, data)
}

// HistoryChanged redraws the history list.
func (t *Terminal) HistoryChanged(entries []models.HistoryEntry) {
	if err := t.RenderHistory(entries); err != nil {
		t.logger.Error("failed to render history", "error", err)
	}
}

func (t *Terminal) execute(tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute %s template: %w", tmpl.Name(), err)
	}

	out := buf.String()
	if t.md != nil {
		styled, err := t.md.Render(out)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		out = styled
	}

	if _, err := io.WriteString(t.out, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
