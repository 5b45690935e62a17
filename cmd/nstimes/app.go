package main

import (
	"net/http"
	"time"

	"github.com/arunsworld/nstimes"
	"github.com/arunsworld/nstimes/config"
	"github.com/spf13/cobra"
)

type app struct {
	cfg *config.Config
	now func() time.Time
}

func newApp(cfg *config.Config) *app {
	return &app{
		cfg: cfg,
		now: time.Now,
	}
}

func (a *app) stations() (nstimes.Stations, error) {
	return nstimes.LoadStations(a.cfg.StationsFile)
}

func (a *app) fetcher(stations nstimes.Stations) *nstimes.Fetcher {
	return nstimes.NewFetcher(stations,
		nstimes.WithBaseURL(a.cfg.BaseURL),
		nstimes.WithHTTPClient(&http.Client{Timeout: a.cfg.RequestTimeout}),
		nstimes.WithClock(a.now),
	)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "nstimes",
		Short:         "Find your next train home while you are in the CLI",
		Long:          "Find your next train home while you are in the CLI. Uses the Dutch Railways (Nederlandse Spoorwegen) travel information API.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.cfg.StationsFile, "stations", a.cfg.StationsFile,
		"station mapping file (.json or .db); the built-in list when empty (env NS_STATIONS_FILE)")

	root.AddCommand(
		newJourneyCmd(a),
		newServeCmd(a),
		newStationsCmd(a),
		newUpdateStationsCmd(a),
	)
	return root
}

// completeStations offers station names for --start and --end.
func (a *app) completeStations(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	stations, err := a.stations()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return stations.Complete(toComplete), cobra.ShellCompDirectiveNoFileComp
}
