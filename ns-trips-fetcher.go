package nstimes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"time"
)

// TripQuery asks for the departures from Start to End around DateTime.
type TripQuery struct {
	Start    string
	End      string
	Token    string
	DateTime string // RFC3339, see ToRFC3339
	MaxLen   int    // 0 means no limit
}

type nsTripsResponse struct {
	Trips *[]nsTrip `json:"trips"`
}

type nsTrip struct {
	Legs []nsLeg `json:"legs"`
}

type nsLeg struct {
	Product struct {
		CategoryCode string `json:"categoryCode"`
	} `json:"product"`
	Cancelled   bool   `json:"cancelled"`
	Origin      nsStop `json:"origin"`
	Destination nsStop `json:"destination"`
}

type nsStop struct {
	PlannedDateTime string  `json:"plannedDateTime"`
	ActualDateTime  string  `json:"actualDateTime"`
	PlannedTrack    nsTrack `json:"plannedTrack"`
	ActualTrack     nsTrack `json:"actualTrack"`
}

// nsTrack accepts both "14b" and 14.
type nsTrack string

func (t *nsTrack) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = nsTrack(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = nsTrack(n.String())
	return nil
}

func (s nsStop) platform() string {
	if s.ActualTrack != "" {
		return string(s.ActualTrack)
	}
	if s.PlannedTrack != "" {
		return string(s.PlannedTrack)
	}
	return UnknownPlatform
}

func parseNSDateTime(value string) (time.Time, error) {
	t, err := time.Parse(NSDateTimeLayout, value)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (s nsStop) asTime(what string) (Time, error) {
	if s.PlannedDateTime == "" {
		return Time{}, formatError("%s has no plannedDateTime", what)
	}
	planned, err := parseNSDateTime(s.PlannedDateTime)
	if err != nil {
		return Time{}, formatError("%s plannedDateTime %q: %v", what, s.PlannedDateTime, err)
	}
	var actual time.Time
	if s.ActualDateTime != "" {
		actual, err = parseNSDateTime(s.ActualDateTime)
		if err != nil {
			return Time{}, formatError("%s actualDateTime %q: %v", what, s.ActualDateTime, err)
		}
	}
	return NewTime(planned, actual), nil
}

func (l nsLeg) asDeparture() (Departure, error) {
	departure, err := l.Origin.asTime("origin")
	if err != nil {
		return Departure{}, err
	}
	arrival, err := l.Destination.asTime("destination")
	if err != nil {
		return Departure{}, err
	}
	return NewDeparture(l.Product.CategoryCode, l.Origin.platform(), departure, arrival, l.Cancelled), nil
}

// Departures returns the upcoming departures between two stations, in the
// order the API returned them. Departures that already left are dropped.
// A malformed trip rejects the whole batch.
func (f *Fetcher) Departures(ctx context.Context, q TripQuery) ([]Departure, error) {
	originCode, err := f.stations.Lookup(q.Start)
	if err != nil {
		return nil, err
	}
	destinationCode, err := f.stations.Lookup(q.End)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("originUicCode", originCode)
	params.Set("destinationUicCode", destinationCode)
	params.Set("dateTime", q.DateTime)

	body, err := f.get(ctx, f.tripsURL(), q.Token, params)
	if err != nil {
		return nil, err
	}
	resp := nsTripsResponse{}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, formatError("problem parsing trips response: %v", err)
	}
	if resp.Trips == nil {
		return nil, formatError("trips response has no trips")
	}

	now := amsc.convert(f.now())
	result := make([]Departure, 0, len(*resp.Trips))
	for i, trip := range *resp.Trips {
		if len(trip.Legs) == 0 {
			return nil, formatError("trip %d has no legs", i)
		}
		departure, err := trip.Legs[0].asDeparture()
		if err != nil {
			return nil, err
		}
		if departure.Departed(now) {
			continue
		}
		result = append(result, departure)
	}
	if q.MaxLen > 0 && len(result) > q.MaxLen {
		result = result[:q.MaxLen]
	}
	return result, nil
}
