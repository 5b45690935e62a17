package printers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/arunsworld/nstimes"
	"github.com/pkg/errors"
)

const (
	pixelClockWhite = "FFFFFF"
	pixelClockRed   = "FF0000"
	pixelClockGreen = "00FF00"

	pixelClockDurationSeconds = 10
)

type pixelClockText struct {
	Text  string `json:"t"`
	Color string `json:"c"`
}

type pixelClockNotification struct {
	Text     []pixelClockText `json:"text"`
	Stack    bool             `json:"stack"`
	Duration int              `json:"duration"`
	NoScroll bool             `json:"noScroll"`
}

// PixelClockPrinter shows the next departure on a pixel clock instead of
// printing anything locally.
type PixelClockPrinter struct {
	batch
	c          *http.Client
	notifyURL  string
	departures []nstimes.Departure
}

// NewPixelClockPrinter fails with nstimes.ErrConfiguration when no host is
// configured. It does not contact the device.
func NewPixelClockPrinter(opts Options) (*PixelClockPrinter, error) {
	if opts.PixelClockHost == "" {
		return nil, errors.Wrap(nstimes.ErrConfiguration, "pixel clock host is not set (PIXELCLOCK_HOST)")
	}
	return &PixelClockPrinter{
		c:         opts.httpClient(),
		notifyURL: fmt.Sprintf(nstimes.PixelClockNotifyAPI, opts.PixelClockHost),
	}, nil
}

func (p *PixelClockPrinter) AddDeparture(d nstimes.Departure) {
	if p.flushed {
		return
	}
	p.departures = append(p.departures, d)
}

// next is the departure that actually leaves first.
func (p *PixelClockPrinter) next() (nstimes.Departure, error) {
	if len(p.departures) == 0 {
		return nstimes.Departure{}, nstimes.ErrEmptyResult
	}
	sorted := make([]nstimes.Departure, len(p.departures))
	copy(sorted, p.departures)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DepartureTime.Actual.Before(sorted[j].DepartureTime.Actual)
	})
	return sorted[0], nil
}

func notificationFor(d nstimes.Departure) pixelClockNotification {
	timeColor := pixelClockWhite
	if d.DepartureTime.Delayed() {
		timeColor = pixelClockRed
	}
	return pixelClockNotification{
		Text: []pixelClockText{
			{Text: d.DepartureTime.Actual.Format("15:04"), Color: timeColor},
			{Text: d.Platform, Color: pixelClockGreen},
		},
		Stack:    false,
		Duration: pixelClockDurationSeconds,
		NoScroll: true,
	}
}

func (p *PixelClockPrinter) GenerateOutput(ctx context.Context) error {
	if err := p.flush(); err != nil {
		return err
	}
	d, err := p.next()
	if err != nil {
		return err
	}
	p.departures = nil
	body, err := json.Marshal(notificationFor(d))
	if err != nil {
		return errors.Wrap(err, "problem encoding pixel clock notification")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.notifyURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "problem creating request for %s", p.notifyURL)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := p.c.Do(req)
	if err != nil {
		return nstimes.TransportError(ctx, p.notifyURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &nstimes.UpstreamError{URL: p.notifyURL, StatusCode: resp.StatusCode}
	}
	return nil
}
