package nstimes

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

//go:embed embed/stations.json
var defaultStationsJSON []byte

// Stations maps a human readable station name to its UIC code. It is loaded
// once and only read afterwards, so it can be shared between requests.
type Stations map[string]string

func (s Stations) Lookup(name string) (string, error) {
	code, ok := s[name]
	if !ok {
		return "", &UnknownStationError{Name: name}
	}
	return code, nil
}

func (s Stations) Names() []string {
	result := make([]string, 0, len(s))
	for name := range s {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Complete returns the sorted station names starting with prefix.
func (s Stations) Complete(prefix string) []string {
	result := []string{}
	for _, name := range s.Names() {
		if strings.HasPrefix(name, prefix) {
			result = append(result, name)
		}
	}
	return result
}

// DefaultStations is the mapping shipped with the binary.
func DefaultStations() Stations {
	stations := Stations{}
	if err := json.Unmarshal(defaultStationsJSON, &stations); err != nil {
		panic(err)
	}
	return stations
}

func isSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// LoadStations reads a mapping from path; SQLite databases are recognised by
// their extension, anything else is read as a JSON object. An empty path
// yields DefaultStations.
func LoadStations(path string) (Stations, error) {
	if path == "" {
		return DefaultStations(), nil
	}
	if isSQLitePath(path) {
		return loadStationsSQLite(path)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "problem reading stations file %s", path)
	}
	stations := Stations{}
	if err := json.Unmarshal(body, &stations); err != nil {
		return nil, errors.Wrapf(err, "problem parsing stations file %s", path)
	}
	return stations, nil
}

func SaveStations(path string, stations Stations) error {
	if isSQLitePath(path) {
		return saveStationsSQLite(path, stations)
	}
	body, err := json.MarshalIndent(stations, "", "  ")
	if err != nil {
		return errors.Wrap(err, "problem encoding stations")
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return errors.Wrapf(err, "problem writing stations file %s", path)
	}
	return nil
}
