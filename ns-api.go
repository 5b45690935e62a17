package nstimes

const NSAPIBaseURL = "https://gateway.apiportal.ns.nl/reisinformatie-api/api"

const TripsAPI = "%s/v3/trips"
const StationsAPI = "%s/v2/stations?countryCodes=nl"

const PixelClockNotifyAPI = "http://%s/api/notify"

// layout of plannedDateTime / actualDateTime in NS responses, e.g. 2023-10-12T10:05:00+0200
const NSDateTimeLayout = "2006-01-02T15:04:05-0700"
