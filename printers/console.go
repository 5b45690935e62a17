package printers

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/arunsworld/nstimes"
)

// ConsolePrinter prints one plain text line per departure.
type ConsolePrinter struct {
	batch
	out   io.Writer
	now   time.Time
	lines []string
}

// NewConsolePrinter fails with nstimes.ErrConfiguration when opts.Now is zero.
func NewConsolePrinter(opts Options) (*ConsolePrinter, error) {
	now, err := opts.reference()
	if err != nil {
		return nil, err
	}
	return &ConsolePrinter{
		out: opts.out(),
		now: now,
	}, nil
}

func (p *ConsolePrinter) AddDeparture(d nstimes.Departure) {
	if p.flushed {
		return
	}
	line := fmt.Sprintf("%-3s p.%3s in %2d min %s -> %s",
		d.TrainType, d.Platform, d.TimeLeftMinutes(p.now),
		formatTime(d.DepartureTime), formatTime(d.ArrivalTime))
	if d.Cancelled {
		line = cancelled(line)
	}
	p.lines = append(p.lines, line)
}

func (p *ConsolePrinter) GenerateOutput(ctx context.Context) error {
	if err := p.flush(); err != nil {
		return err
	}
	fmt.Fprintln(p.out, p.title)
	fmt.Fprintln(p.out)
	for _, line := range p.lines {
		fmt.Fprintln(p.out, line)
	}
	p.lines = nil
	return nil
}
