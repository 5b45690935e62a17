package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/arunsworld/nstimes"
	"github.com/pkg/errors"
)

const missingTokenDetail = "Could not find NS_API_TOKEN"

func (h handlers) registerJourneyHandler() {
	h.handler.HandleFunc("/journey", func(w http.ResponseWriter, r *http.Request) {
		if h.token == "" {
			writeError(w, http.StatusInternalServerError, missingTokenDetail)
			return
		}
		params := r.URL.Query()
		start, end := params.Get("start"), params.Get("end")
		if start == "" || end == "" {
			writeError(w, http.StatusBadRequest, "start and end are required")
			return
		}
		date, clock := nstimes.CurrentDateAndTime(h.now())
		if v := params.Get("date"); v != "" {
			date = v
		}
		if v := params.Get("time"); v != "" {
			clock = v
		}
		dateTime, err := nstimes.ToRFC3339(clock, date)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		maxLen := 0
		if v := params.Get("max_len"); v != "" {
			maxLen, err = strconv.Atoi(v)
			if err != nil || maxLen < 0 {
				writeError(w, http.StatusBadRequest, "max_len must be a non-negative integer")
				return
			}
		}

		departures, err := h.fetcher.Departures(r.Context(), nstimes.TripQuery{
			Start:    start,
			End:      end,
			Token:    h.token,
			DateTime: dateTime,
			MaxLen:   maxLen,
		})
		if errors.Is(err, context.Canceled) {
			// the client went away
			return
		}
		if err != nil {
			status := statusFor(err)
			if status >= http.StatusInternalServerError {
				log.Printf("journey %s -> %s failed: %v", start, end, err)
			}
			writeError(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, departures)
	}).Methods("GET")
}

func statusFor(err error) int {
	var unknown *nstimes.UnknownStationError
	var upstream *nstimes.UpstreamError
	switch {
	case errors.As(err, &unknown):
		return http.StatusBadRequest
	case errors.Is(err, nstimes.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.As(err, &upstream), errors.Is(err, nstimes.ErrUpstreamFormat):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
