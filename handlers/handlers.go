package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/arunsworld/nstimes"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/unrolled/logger"
)

// DepartureFetcher is what the handlers need from *nstimes.Fetcher.
type DepartureFetcher interface {
	Departures(ctx context.Context, q nstimes.TripQuery) ([]nstimes.Departure, error)
	Stations() nstimes.Stations
}

type Settings struct {
	// Token for the NS API; /journey answers 500 when empty.
	Token          string
	AllowedOrigins []string
	// LogOutput receives the access log; os.Stdout when nil.
	LogOutput io.Writer
	// Now defaults the date and time of a journey query; time.Now when nil.
	Now func() time.Time
}

func RegisterHandlers(handler *mux.Router, fetcher DepartureFetcher, settings Settings) {
	h := handlers{
		handler: handler,
		fetcher: fetcher,
		token:   settings.Token,
		now:     settings.Now,
	}
	if h.now == nil {
		h.now = time.Now
	}

	l := logger.New(logger.Options{
		Prefix:               "nstimes",
		Out:                  settings.LogOutput,
		RemoteAddressHeaders: []string{"X-Forwarded-For"},
		IgnoredRequestURIs:   []string{"/healthz"},
	})
	handler.Use(l.Handler)
	handler.Use(cors.Handler(cors.Options{
		AllowedOrigins: settings.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	h.registerIndex()
	h.registerHealth()
	h.registerStationsHandler()
	h.registerJourneyHandler()
}

type handlers struct {
	handler *mux.Router
	fetcher DepartureFetcher
	token   string
	now     func() time.Time
}

func (h handlers) registerIndex() {
	h.handler.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/stations", http.StatusFound)
	})
}

func (h handlers) registerHealth() {
	h.handler.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods("GET")
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
