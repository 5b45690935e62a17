package nstimes

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const (
	DateLayout = "02-01-2006"
	TimeLayout = "15:04"

	// accepts 2-1-2024 as well as 02-01-2024
	dateInputLayout = "2-1-2006"
)

type amsterdamConverter struct {
	loc *time.Location
}

func newAmsterdamConverter() *amsterdamConverter {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		panic(err)
	}
	return &amsterdamConverter{
		loc: loc,
	}
}

func (a *amsterdamConverter) convert(input time.Time) time.Time {
	return input.In(a.loc)
}

var amsc = newAmsterdamConverter()

// InAmsterdam returns t in the timezone the NS API reports its times in.
func InAmsterdam(t time.Time) time.Time {
	return amsc.convert(t)
}

// ToRFC3339 turns the CLI/query representation of a moment ("15:04" and
// "02-01-2006", Amsterdam local time) into the dateTime parameter of the
// trips API.
func ToRFC3339(clock, date string) (string, error) {
	t, err := time.ParseInLocation(dateInputLayout+" "+TimeLayout, date+" "+clock, amsc.loc)
	if err != nil {
		return "", fmt.Errorf("invalid date %q or time %q: %v", date, clock, err)
	}
	return t.Format(time.RFC3339), nil
}

// CurrentDateAndTime formats now as the date and time defaults of a journey query.
func CurrentDateAndTime(now time.Time) (date, clock string) {
	local := amsc.convert(now)
	return local.Format(DateLayout), local.Format(TimeLayout)
}
