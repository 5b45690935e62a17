package nstimes

import "time"

// UnknownPlatform is shown when a leg carries neither an actual nor a planned track.
const UnknownPlatform = "?"

type Departure struct {
	TrainType     string `json:"train_type"`
	Platform      string `json:"platform"`
	DepartureTime Time   `json:"departure_time"`
	ArrivalTime   Time   `json:"arrival_time"`
	Cancelled     bool   `json:"cancelled"`
}

func NewDeparture(trainType, platform string, departure, arrival Time, cancelled bool) Departure {
	if platform == "" {
		platform = UnknownPlatform
	}
	return Departure{
		TrainType:     trainType,
		Platform:      platform,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Cancelled:     cancelled,
	}
}

// TimeLeftMinutes returns the whole minutes between reference and the actual
// departure. Only the wall clock of reference is used: it is read as if it
// were in the departure's own timezone, so callers should pass a reference
// already expressed in NS local time (see InAmsterdam).
func (d Departure) TimeLeftMinutes(reference time.Time) int {
	actual := d.DepartureTime.Actual
	ref := time.Date(reference.Year(), reference.Month(), reference.Day(),
		reference.Hour(), reference.Minute(), reference.Second(), reference.Nanosecond(),
		actual.Location())
	return int(actual.Sub(ref) / time.Minute)
}

func (d Departure) Departed(reference time.Time) bool {
	return d.TimeLeftMinutes(reference) < 0
}
