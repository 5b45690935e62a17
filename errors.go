package nstimes

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrTimeout covers transport level failures talking to a remote
	// service, such as an exceeded deadline, a refused connection or a DNS
	// error. A cancelled context is returned as context.Canceled instead.
	ErrTimeout = errors.New("remote service unreachable or timed out")

	ErrConfiguration  = errors.New("missing configuration")
	ErrEmptyResult    = errors.New("no departures to render")
	ErrUpstreamFormat = errors.New("malformed upstream response")
)

type UnknownStationError struct {
	Name string
}

func (e *UnknownStationError) Error() string {
	return fmt.Sprintf("unknown station %q", e.Name)
}

// UpstreamError is a non-2xx answer from a remote service.
type UpstreamError struct {
	URL        string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s answered with HTTP %d", e.URL, e.StatusCode)
}

func formatError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUpstreamFormat, format, args...)
}

// TransportError classifies a failed round trip to url: context.Canceled when
// the caller gave up, ErrTimeout otherwise.
func TransportError(ctx context.Context, url string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return errors.Wrapf(context.Canceled, "request to %s", url)
	}
	return errors.Wrapf(ErrTimeout, "problem fetching data from %s: %v", url, err)
}
