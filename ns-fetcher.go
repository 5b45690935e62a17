package nstimes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DefaultTimeout = 5 * time.Second

// Fetcher talks to the NS travel information API.
type Fetcher struct {
	c           *http.Client
	stations    Stations
	tripsURL    func() string
	stationsURL func() string
	now         func() time.Time
}

type FetcherOption struct {
	f func(*Fetcher)
}

func NewFetcher(stations Stations, options ...FetcherOption) *Fetcher {
	f := &Fetcher{
		c:        &http.Client{Timeout: DefaultTimeout},
		stations: stations,
		now:      time.Now,
	}
	WithBaseURL(NSAPIBaseURL).f(f)
	for _, option := range options {
		option.f(f)
	}
	return f
}

func WithHTTPClient(c *http.Client) FetcherOption {
	return FetcherOption{
		func(f *Fetcher) {
			f.c = c
		},
	}
}

func WithBaseURL(base string) FetcherOption {
	base = strings.TrimSuffix(base, "/")
	return FetcherOption{
		func(f *Fetcher) {
			f.tripsURL = func() string {
				return fmt.Sprintf(TripsAPI, base)
			}
			f.stationsURL = func() string {
				return fmt.Sprintf(StationsAPI, base)
			}
		},
	}
}

// WithClock replaces the clock used to drop departures that already left.
func WithClock(now func() time.Time) FetcherOption {
	return FetcherOption{
		func(f *Fetcher) {
			f.now = now
		},
	}
}

func (f *Fetcher) Stations() Stations {
	return f.stations
}

func (f *Fetcher) get(ctx context.Context, rawURL, token string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "problem creating request for %s", rawURL)
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Ocp-Apim-Subscription-Key", token)

	resp, err := f.c.Do(req)
	if err != nil {
		return nil, TransportError(ctx, rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{URL: rawURL, StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, TransportError(ctx, rawURL, err)
	}
	return body, nil
}
