package main

import (
	"log"

	"github.com/arunsworld/nstimes/handlers"
	"github.com/arunsworld/nstimes/webserver"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	port := a.cfg.Port
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /journey and /stations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stations, err := a.stations()
			if err != nil {
				return err
			}
			if a.cfg.Token == "" {
				log.Printf("NS_API_TOKEN is not set, /journey will answer 500")
			}

			handler := mux.NewRouter()
			handlers.RegisterHandlers(handler, a.fetcher(stations), handlers.Settings{
				Token:          a.cfg.Token,
				AllowedOrigins: a.cfg.AllowedOrigins,
				Now:            a.now,
			})
			return webserver.NewHTTPWebServer(handler).Serve(cmd.Context(), port)
		},
	}
	cmd.Flags().IntVar(&port, "port", port, "port to serve on (env PORT)")
	return cmd
}
