package handlers

import (
	"net/http"
)

func (h handlers) registerStationsHandler() {
	stations := h.fetcher.Stations()
	h.handler.Handle("/stations", cacheable(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, stations)
	}))).Methods("GET")
}
