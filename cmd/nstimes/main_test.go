package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arunsworld/nstimes"
	"github.com/arunsworld/nstimes/config"
	"github.com/arunsworld/nstimes/printers"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tripsResponse = `{"trips": [
	{"legs": [{
		"product": {"categoryCode": "IC"},
		"origin": {"plannedDateTime": "2023-10-12T10:00:00+0200", "actualDateTime": "2023-10-12T10:05:00+0200", "actualTrack": "14b"},
		"destination": {"plannedDateTime": "2023-10-12T10:30:00+0200"}
	}]},
	{"legs": [{
		"product": {"categoryCode": "SPR"},
		"origin": {"plannedDateTime": "2023-10-12T10:10:00+0200", "plannedTrack": "7"},
		"destination": {"plannedDateTime": "2023-10-12T10:40:00+0200"}
	}]}
]}`

var cliNow = time.Date(2023, 10, 12, 9, 50, 0, 0, time.FixedZone("", 7200))

type fakeNS struct {
	hits int32
	srv  *httptest.Server
}

func newFakeNS(t *testing.T, handler http.HandlerFunc) *fakeNS {
	f := &fakeNS{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.hits, 1)
		handler(w, r)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Token:          "secret",
		BaseURL:        baseURL,
		RequestTimeout: time.Second,
		Port:           8000,
		AllowedOrigins: []string{"*"},
	}
}

func runCLI(cfg *config.Config, args ...string) (string, error) {
	a := newApp(cfg)
	a.now = func() time.Time { return cliNow }
	out := &bytes.Buffer{}
	root := newRootCmd(a)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func journeyArgs(extra ...string) []string {
	args := []string{"journey", "--start", "Amersfoort Centraal", "--end", "Utrecht Centraal"}
	return append(args, extra...)
}

func TestJourneyASCII(t *testing.T) {
	ns := newFakeNS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "8400055", r.URL.Query().Get("originUicCode"))
		assert.Equal(t, "8400621", r.URL.Query().Get("destinationUicCode"))
		assert.Equal(t, "2023-10-12T09:50:00+02:00", r.URL.Query().Get("dateTime"))
		assert.Equal(t, "secret", r.Header.Get("Ocp-Apim-Subscription-Key"))
		w.Write([]byte(tripsResponse))
	})

	out, err := runCLI(testConfig(ns.srv.URL), journeyArgs("--printer", "ascii")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Journeys from Amersfoort Centraal -> Utrecht Centraal")
	assert.Contains(t, out, "p.14b in 15 min")
	assert.Contains(t, out, "p.  7 in 20 min")
}

func TestJourneyExplicitDateTimeAndMaxLen(t *testing.T) {
	ns := newFakeNS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2023-10-12T08:15:00+02:00", r.URL.Query().Get("dateTime"))
		w.Write([]byte(tripsResponse))
	})

	out, err := runCLI(testConfig(ns.srv.URL), journeyArgs("--printer", "ascii", "--date", "12-10-2023", "--time", "08:15", "--max-len", "1")...)
	require.NoError(t, err)
	assert.Contains(t, out, "p.14b")
	assert.NotContains(t, out, "SPR")
}

func TestJourneyTable(t *testing.T) {
	ns := newFakeNS(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tripsResponse))
	})

	out, err := runCLI(testConfig(ns.srv.URL), journeyArgs()...)
	require.NoError(t, err)
	assert.Contains(t, out, "Leaves in")
	assert.Contains(t, out, "14b")
}

func TestJourneyExitCodes(t *testing.T) {
	ok := func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(tripsResponse)) }

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		mutate   func(*config.Config)
		args     []string
		exitCode int
		noCalls  bool
	}{
		{
			name:     "unknown printer",
			handler:  ok,
			args:     journeyArgs("--printer", "html"),
			exitCode: exitUnknownPrinter,
			noCalls:  true,
		},
		{
			name:     "unknown station",
			handler:  ok,
			args:     []string{"journey", "--start", "Atlantis", "--end", "Utrecht Centraal", "--printer", "ascii"},
			exitCode: exitUnknownStation,
			noCalls:  true,
		},
		{
			name:     "missing token",
			handler:  ok,
			mutate:   func(c *config.Config) { c.Token = "" },
			args:     journeyArgs(),
			exitCode: exitConfiguration,
			noCalls:  true,
		},
		{
			name:     "pixel clock without host",
			handler:  ok,
			args:     journeyArgs("--printer", "pixelclock"),
			exitCode: exitConfiguration,
			noCalls:  true,
		},
		{
			name: "upstream timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
			},
			mutate:   func(c *config.Config) { c.RequestTimeout = 20 * time.Millisecond },
			args:     journeyArgs("--printer", "ascii"),
			exitCode: exitTimeout,
		},
		{
			name: "upstream rejects token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			args:     journeyArgs("--printer", "ascii"),
			exitCode: exitUpstream,
		},
		{
			name: "malformed upstream",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"trips": [{"legs": []}]}`))
			},
			args:     journeyArgs("--printer", "ascii"),
			exitCode: exitUpstreamFormat,
		},
		{
			name:     "bad time",
			handler:  ok,
			args:     journeyArgs("--time", "25:99"),
			exitCode: exitError,
			noCalls:  true,
		},
		{
			name:     "missing end",
			handler:  ok,
			args:     []string{"journey", "--start", "Amersfoort Centraal"},
			exitCode: exitError,
			noCalls:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns := newFakeNS(t, tt.handler)
			cfg := testConfig(ns.srv.URL)
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			_, err := runCLI(cfg, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, exitCode(err), err.Error())
			if tt.noCalls {
				assert.Zero(t, atomic.LoadInt32(&ns.hits))
			}
		})
	}
}

func TestJourneyPixelClockEmptyResult(t *testing.T) {
	ns := newFakeNS(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"trips": []}`))
	})
	cfg := testConfig(ns.srv.URL)
	cfg.PixelClockHost = "127.0.0.1:1"

	_, err := runCLI(cfg, journeyArgs("--printer", "pixelclock")...)
	require.Error(t, err)
	assert.Equal(t, exitEmptyResult, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, exitError, exitCode(errors.New("boom")))
	assert.Equal(t, exitTimeout, exitCode(errors.Wrap(nstimes.ErrTimeout, "trips")))
	assert.Equal(t, exitUpstream, exitCode(errors.Wrap(&nstimes.UpstreamError{URL: "x", StatusCode: 503}, "trips")))
	assert.Equal(t, exitUnknownPrinter, exitCode(errors.Wrap(printers.ErrUnknownPrinter, "html")))
	assert.Equal(t, exitUnknownStation, exitCode(&nstimes.UnknownStationError{Name: "Atlantis"}))
	assert.Equal(t, exitConfiguration, exitCode(nstimes.ErrConfiguration))
	assert.Equal(t, exitEmptyResult, exitCode(nstimes.ErrEmptyResult))
	assert.Equal(t, exitUpstreamFormat, exitCode(errors.Wrap(nstimes.ErrUpstreamFormat, "no legs")))
}

func TestStationsCommand(t *testing.T) {
	out, err := runCLI(testConfig("http://unused"), "stations", "Utrecht")
	require.NoError(t, err)
	assert.Contains(t, out, "Utrecht Centraal\n")
	assert.NotContains(t, out, "Amersfoort")
}

func TestUpdateStations(t *testing.T) {
	ns := newFakeNS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/stations", r.URL.Path)
		w.Write([]byte(`{"payload": [
			{"UICCode": "8400058", "namen": {"lang": "Amsterdam Centraal"}},
			{"UICCode": "8400530", "namen": {"lang": "Rotterdam Centraal"}}
		]}`))
	})
	output := filepath.Join(t.TempDir(), "stations.db")

	_, err := runCLI(testConfig(ns.srv.URL), "update-stations", "--output", output)
	require.NoError(t, err)

	stations, err := nstimes.LoadStations(output)
	require.NoError(t, err)
	assert.Equal(t, nstimes.Stations{
		"Amsterdam Centraal": "8400058",
		"Rotterdam Centraal": "8400530",
	}, stations)

	// the new file drives lookups through the persistent --stations flag
	out, err := runCLI(testConfig(ns.srv.URL), "--stations", output, "stations")
	require.NoError(t, err)
	assert.Equal(t, "Amsterdam Centraal\nRotterdam Centraal\n", out)
}

func TestVersion(t *testing.T) {
	out, err := runCLI(testConfig("http://unused"), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}
