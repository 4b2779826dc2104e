// Package model holds the VATSIM v3 datafeed records the application works
// with. Only the sections the traffic table reads are modeled.
package model

import (
	"fmt"
	"time"
)

// compactUpdateLayout is the legacy general.update format (YYYYMMDDhhmmss, UTC).
const compactUpdateLayout = "20060102150405"

// Datafeed is one snapshot of the VATSIM v3 data file.
type Datafeed struct {
	General     General      `json:"general"`
	Pilots      []Pilot      `json:"pilots"`
	Controllers []Controller `json:"controllers"`
}

// General carries the feed metadata used for staleness checks.
type General struct {
	Version int `json:"version"`
	// Reload is the feed refresh interval in minutes.
	Reload float64 `json:"reload"`
	// Update is the compact UTC timestamp of the last refresh.
	Update string `json:"update"`
	// UpdateTimestamp is the same instant in RFC3339 form.
	UpdateTimestamp  string `json:"update_timestamp"`
	ConnectedClients int    `json:"connected_clients"`
	UniqueUsers      int    `json:"unique_users"`
}

// UpdatedAt returns the instant the feed was last refreshed. It prefers the
// RFC3339 update_timestamp and falls back to the compact update field.
func (g General) UpdatedAt() (time.Time, error) {
	if g.UpdateTimestamp != "" {
		if t, err := time.Parse(time.RFC3339, g.UpdateTimestamp); err == nil {
			return t.UTC(), nil
		}
	}
	if g.Update != "" {
		if t, err := time.Parse(compactUpdateLayout, g.Update); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("datafeed carries no parseable update time (update=%q, update_timestamp=%q)", g.Update, g.UpdateTimestamp)
}

// ReloadInterval returns the feed refresh interval as a duration.
func (g General) ReloadInterval() time.Duration {
	return time.Duration(g.Reload * float64(time.Minute))
}

// Pilot is one connected pilot session.
type Pilot struct {
	CID         int         `json:"cid"`
	Name        string      `json:"name"`
	Callsign    string      `json:"callsign"`
	Server      string      `json:"server"`
	PilotRating int         `json:"pilot_rating"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	Altitude    int         `json:"altitude"`
	Groundspeed int         `json:"groundspeed"`
	Transponder string      `json:"transponder"`
	Heading     int         `json:"heading"`
	FlightPlan  *FlightPlan `json:"flight_plan"`
	LogonTime   string      `json:"logon_time"`
	LastUpdated string      `json:"last_updated"`
}

// FlightPlan is the filed plan attached to a pilot. Pilots flying without a
// plan carry none.
type FlightPlan struct {
	FlightRules   string `json:"flight_rules"`
	Aircraft      string `json:"aircraft"`
	AircraftShort string `json:"aircraft_short"`
	Departure     string `json:"departure"`
	Arrival       string `json:"arrival"`
	Alternate     string `json:"alternate"`
	CruiseTAS     string `json:"cruise_tas"`
	Altitude      string `json:"altitude"`
	Deptime       string `json:"deptime"`
	Route         string `json:"route"`
	Remarks       string `json:"remarks"`
}

// Controller is one connected ATC session.
type Controller struct {
	CID         int    `json:"cid"`
	Name        string `json:"name"`
	Callsign    string `json:"callsign"`
	Frequency   string `json:"frequency"`
	Facility    int    `json:"facility"`
	Rating      int    `json:"rating"`
	Server      string `json:"server"`
	VisualRange int    `json:"visual_range"`
	LogonTime   string `json:"logon_time"`
	LastUpdated string `json:"last_updated"`
}
