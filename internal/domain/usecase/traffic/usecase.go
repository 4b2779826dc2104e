package traffic

import (
	"context"

	"vatsim-traffic/internal/domain/model"
)

type UseCase interface {
	// Init loads the initial datafeed: stored snapshot first, then a live
	// fetch (or the bundled sample in local mode) when missing or stale
	Init(ctx context.Context) error

	// Departures returns the pilots whose flight plan departs the airport
	Departures(ctx context.Context, icao string) ([]model.Pilot, error)

	// Arrivals returns the pilots whose flight plan arrives at the airport
	Arrivals(ctx context.Context, icao string) ([]model.Pilot, error)

	// Controllers returns the ATC sessions staffing positions at the airport
	Controllers(ctx context.Context, icao string) ([]model.Controller, error)

	// UpdatedAt returns the refresh instant of the currently loaded feed
	UpdatedAt() (string, error)
}
