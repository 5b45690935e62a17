package main

import (
	"fmt"

	"github.com/arunsworld/nstimes"
	"github.com/arunsworld/nstimes/printers"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type journeyOptions struct {
	start   string
	end     string
	token   string
	clock   string
	date    string
	printer string
	maxLen  int
}

func newJourneyCmd(a *app) *cobra.Command {
	opts := journeyOptions{}
	cmd := &cobra.Command{
		Use:   "journey",
		Short: "Provide train type, platform and departure times of an A -> B journey",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runJourney(cmd, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.start, "start", "", "start station")
	flags.StringVar(&opts.end, "end", "", "stop station")
	flags.StringVar(&opts.token, "token", "", "token to talk with the NS API (env NS_API_TOKEN)")
	flags.StringVar(&opts.clock, "time", "", "departure time as HH:MM, now when empty")
	flags.StringVar(&opts.date, "date", "", "departure date as DD-MM-YYYY, today when empty")
	flags.StringVar(&opts.printer, "printer", string(printers.Table), "output: ascii, table or pixelclock")
	flags.IntVar(&opts.maxLen, "max-len", 0, "show at most this many departures, all when 0")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	cmd.RegisterFlagCompletionFunc("start", a.completeStations)
	cmd.RegisterFlagCompletionFunc("end", a.completeStations)
	cmd.RegisterFlagCompletionFunc("printer", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		result := []string{}
		for _, c := range printers.Choices() {
			result = append(result, string(c))
		}
		return result, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func (a *app) runJourney(cmd *cobra.Command, opts journeyOptions) error {
	choice, err := printers.ParseChoice(opts.printer)
	if err != nil {
		return err
	}
	token := opts.token
	if token == "" {
		token = a.cfg.Token
	}
	if token == "" {
		return errors.Wrap(nstimes.ErrConfiguration, "no NS API token, pass --token or set NS_API_TOKEN")
	}
	if opts.maxLen < 0 {
		return errors.New("--max-len must not be negative")
	}

	now := nstimes.InAmsterdam(a.now())
	date, clock := nstimes.CurrentDateAndTime(now)
	if opts.date != "" {
		date = opts.date
	}
	if opts.clock != "" {
		clock = opts.clock
	}
	dateTime, err := nstimes.ToRFC3339(clock, date)
	if err != nil {
		return err
	}

	printer, err := printers.New(choice, printers.Options{
		Now:            now,
		Out:            cmd.OutOrStdout(),
		PixelClockHost: a.cfg.PixelClockHost,
	})
	if err != nil {
		return err
	}

	stations, err := a.stations()
	if err != nil {
		return err
	}
	departures, err := a.fetcher(stations).Departures(cmd.Context(), nstimes.TripQuery{
		Start:    opts.start,
		End:      opts.end,
		Token:    token,
		DateTime: dateTime,
		MaxLen:   opts.maxLen,
	})
	if err != nil {
		return err
	}

	printer.SetTitle(fmt.Sprintf("Journeys from %s -> %s", opts.start, opts.end))
	for _, d := range departures {
		printer.AddDeparture(d)
	}
	return printer.GenerateOutput(cmd.Context())
}
