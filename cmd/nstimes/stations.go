package main

import (
	"fmt"
	"log"

	"github.com/arunsworld/nstimes"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newStationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stations [prefix]",
		Short: "List the station names journey accepts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stations, err := a.stations()
			if err != nil {
				return err
			}
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			for _, name := range stations.Complete(prefix) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newUpdateStationsCmd(a *app) *cobra.Command {
	var token, output string
	cmd := &cobra.Command{
		Use:    "update-stations",
		Short:  "Download the station list from the NS API",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = a.cfg.Token
			}
			if token == "" {
				return errors.Wrap(nstimes.ErrConfiguration, "no NS API token, pass --token or set NS_API_TOKEN")
			}
			if output == "" {
				output = a.cfg.StationsFile
			}
			if output == "" {
				output = "stations.json"
			}
			stations, err := a.fetcher(nil).FetchStations(cmd.Context(), token)
			if err != nil {
				return err
			}
			if err := nstimes.SaveStations(output, stations); err != nil {
				return err
			}
			log.Printf("wrote %d stations to %s", len(stations), output)
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "token to talk with the NS API (env NS_API_TOKEN)")
	cmd.Flags().StringVar(&output, "output", "", "file to write, --stations or stations.json when empty")
	return cmd
}
