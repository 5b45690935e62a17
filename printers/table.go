package printers

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/arunsworld/nstimes"
	"github.com/olekukonko/tablewriter"
)

var tableHeader = []string{"Train", "Platform", "Leaves in", "Departure time", "Arrival time"}

// TablePrinter renders the departures as rows of a console table.
type TablePrinter struct {
	batch
	out   io.Writer
	now   time.Time
	table *tablewriter.Table
}

// NewTablePrinter fails with nstimes.ErrConfiguration when opts.Now is zero.
func NewTablePrinter(opts Options) (*TablePrinter, error) {
	now, err := opts.reference()
	if err != nil {
		return nil, err
	}
	out := opts.out()
	table := tablewriter.NewWriter(out)
	table.SetHeader(tableHeader)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})
	return &TablePrinter{
		out:   out,
		now:   now,
		table: table,
	}, nil
}

func (p *TablePrinter) AddDeparture(d nstimes.Departure) {
	if p.flushed {
		return
	}
	leavesIn := d.TimeLeftMinutes(p.now)
	if d.Cancelled {
		p.table.Append([]string{
			cancelled(d.TrainType),
			cancelled(d.Platform),
			cancelled(fmt.Sprintf("%d min", leavesIn)),
			cancelled(formatTime(d.DepartureTime)),
			cancelled(formatTime(d.ArrivalTime)),
		})
		return
	}
	p.table.Append([]string{
		d.TrainType,
		cyan(d.Platform),
		fmt.Sprintf("%s min", cyan(leavesIn)),
		formatTime(d.DepartureTime),
		formatTime(d.ArrivalTime),
	})
}

func (p *TablePrinter) GenerateOutput(ctx context.Context) error {
	if err := p.flush(); err != nil {
		return err
	}
	if p.title != "" {
		fmt.Fprintln(p.out, p.title)
	}
	p.table.Render()
	return nil
}
