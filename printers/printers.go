// Package printers renders a batch of departures: as plain text, as a table
// or on a remote pixel clock.
//
// A Printer accumulates departures with AddDeparture and renders them once
// with GenerateOutput. It is single use: after GenerateOutput further
// departures are ignored and a second GenerateOutput returns ErrFlushed.
package printers

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/arunsworld/nstimes"
	"github.com/pkg/errors"
)

var (
	ErrUnknownPrinter = errors.New("unknown printer")
	ErrFlushed        = errors.New("printer output already generated")
)

type Printer interface {
	Title() string
	SetTitle(string)
	AddDeparture(nstimes.Departure)
	GenerateOutput(ctx context.Context) error
}

type Choice string

const (
	ASCII      Choice = "ascii"
	Table      Choice = "table"
	PixelClock Choice = "pixelclock"
)

func Choices() []Choice {
	return []Choice{ASCII, Table, PixelClock}
}

func ParseChoice(value string) (Choice, error) {
	for _, c := range Choices() {
		if string(c) == value {
			return c, nil
		}
	}
	names := make([]string, 0, len(Choices()))
	for _, c := range Choices() {
		names = append(names, string(c))
	}
	return "", errors.Wrapf(ErrUnknownPrinter, "%q is not one of %s", value, strings.Join(names, ", "))
}

type Options struct {
	// Now is the reference for "leaves in" minutes; NS local time.
	// Required by the ascii and table printers.
	Now time.Time
	// Out receives console output; os.Stdout when nil.
	Out io.Writer
	// PixelClockHost is the network address of the pixel clock.
	PixelClockHost string
	// HTTPClient talks to the pixel clock; a client with nstimes.DefaultTimeout when nil.
	HTTPClient *http.Client
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o Options) httpClient() *http.Client {
	if o.HTTPClient == nil {
		return &http.Client{Timeout: nstimes.DefaultTimeout}
	}
	return o.HTTPClient
}

func (o Options) reference() (time.Time, error) {
	if o.Now.IsZero() {
		return time.Time{}, errors.Wrap(nstimes.ErrConfiguration, "printer needs a reference time (Options.Now)")
	}
	return o.Now, nil
}

func New(choice Choice, opts Options) (Printer, error) {
	switch choice {
	case ASCII:
		p, err := NewConsolePrinter(opts)
		if err != nil {
			return nil, err
		}
		return p, nil
	case Table:
		p, err := NewTablePrinter(opts)
		if err != nil {
			return nil, err
		}
		return p, nil
	case PixelClock:
		p, err := NewPixelClockPrinter(opts)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, errors.Wrapf(ErrUnknownPrinter, "%q", string(choice))
}

// batch holds what every printer shares: the title and the single use guard.
type batch struct {
	title   string
	flushed bool
}

func (b *batch) Title() string {
	return b.title
}

func (b *batch) SetTitle(title string) {
	b.title = title
}

func (b *batch) flush() error {
	if b.flushed {
		return ErrFlushed
	}
	b.flushed = true
	return nil
}
