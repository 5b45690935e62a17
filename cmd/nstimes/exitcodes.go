package main

import (
	"github.com/arunsworld/nstimes"
	"github.com/arunsworld/nstimes/printers"
	"github.com/pkg/errors"
)

const (
	exitError          = 1
	exitTimeout        = 2
	exitUpstream       = 3
	exitUnknownPrinter = 4
	exitUnknownStation = 5
	exitConfiguration  = 6
	exitEmptyResult    = 7
	exitUpstreamFormat = 8
)

func exitCode(err error) int {
	var unknown *nstimes.UnknownStationError
	var upstream *nstimes.UpstreamError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, nstimes.ErrTimeout):
		return exitTimeout
	case errors.As(err, &upstream):
		return exitUpstream
	case errors.Is(err, printers.ErrUnknownPrinter):
		return exitUnknownPrinter
	case errors.As(err, &unknown):
		return exitUnknownStation
	case errors.Is(err, nstimes.ErrConfiguration):
		return exitConfiguration
	case errors.Is(err, nstimes.ErrEmptyResult):
		return exitEmptyResult
	case errors.Is(err, nstimes.ErrUpstreamFormat):
		return exitUpstreamFormat
	}
	return exitError
}
