package nstimes

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2023, 10, 12, hour, minute, 0, 0, cest)
}

func departureAt(planned, actual time.Time) Departure {
	trip := 30 * time.Minute
	return NewDeparture("IC", "14b",
		NewTime(planned, actual),
		NewTime(planned.Add(trip), actual.Add(trip)),
		false)
}

func TestDepartureTimeLeftAndDelay(t *testing.T) {
	d := departureAt(at(10, 0), at(10, 5))
	assert.Equal(t, 15, d.TimeLeftMinutes(at(9, 50)))
	assert.Equal(t, 5, d.DepartureTime.DelayMinutes())
	assert.False(t, d.Departed(at(9, 50)))
	assert.True(t, d.Departed(at(10, 7)))
}

func TestDepartureTimeLeftMatchesOffset(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, cest)
	for i := 0; i < 500; i++ {
		reference := start.Add(time.Duration(r.Int63n(int64(365*24*time.Hour))) / time.Second * time.Second)
		delay := r.Intn(121)
		d := departureAt(reference, reference.Add(time.Duration(delay)*time.Minute))
		if !assert.Equal(t, delay, d.TimeLeftMinutes(reference), "reference %s", reference) {
			return
		}
	}
}

func TestDepartureTimeLeftUsesWallClockOfReference(t *testing.T) {
	d := departureAt(at(10, 0), time.Time{})
	// 09:40 in UTC is read as 09:40 in the departure's own offset.
	reference := time.Date(2023, 10, 12, 9, 40, 0, 0, time.UTC)
	assert.Equal(t, 20, d.TimeLeftMinutes(reference))
	assert.Equal(t, 20, d.TimeLeftMinutes(InAmsterdam(at(9, 40))))
}

func TestNewDepartureNormalisesEmptyPlatform(t *testing.T) {
	d := NewDeparture("SPR", "", NewTime(at(10, 0), time.Time{}), NewTime(at(10, 30), time.Time{}), false)
	assert.Equal(t, UnknownPlatform, d.Platform)
	assert.False(t, d.Cancelled)
}

func TestDepartureJSON(t *testing.T) {
	d := departureAt(at(10, 0), at(10, 5))
	body, err := json.Marshal(d)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "IC", decoded["train_type"])
	assert.Equal(t, "14b", decoded["platform"])
	assert.Equal(t, false, decoded["cancelled"])
	assert.Equal(t, map[string]interface{}{
		"planned": "2023-10-12T10:00:00+02:00",
		"actual":  "2023-10-12T10:05:00+02:00",
	}, decoded["departure_time"])
}
