package traffic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"vatsim-traffic/internal/domain/gateway/api"
	"vatsim-traffic/internal/domain/gateway/store"
	"vatsim-traffic/internal/domain/model"
	"vatsim-traffic/pkg/log"
)

type trafficUseCase struct {
	apiGateway    api.DatafeedGateway
	snapshotStore store.SnapshotStore
	samplePath    string
	// updateDelay widens the staleness window because the feed sometimes
	// publishes later than its own reload interval promises.
	updateDelay time.Duration
	// localMode serves the bundled sample instead of the live feed. The
	// fail-safe flips it on for the rest of the session after a fetch failure.
	localMode bool

	feed *model.Datafeed
}

// NewTrafficUseCase wires the datafeed lifecycle: gateway for live fetches,
// snapshot store for reuse between runs, sample file for local mode.
func NewTrafficUseCase(apiGateway api.DatafeedGateway, snapshotStore store.SnapshotStore, samplePath string, updateDelay time.Duration, localMode bool) UseCase {
	return &trafficUseCase{
		apiGateway:    apiGateway,
		snapshotStore: snapshotStore,
		samplePath:    samplePath,
		updateDelay:   updateDelay,
		localMode:     localMode,
	}
}

// Init loads the initial datafeed: stored snapshot first, then a live fetch
// (or the bundled sample in local mode) when missing or stale
func (uc *trafficUseCase) Init(ctx context.Context) error {
	snapshot, err := uc.snapshotStore.Load(ctx)
	switch {
	case err == nil:
		log.Debug("snapshot found, reusing stored datafeed")
		uc.feed = snapshot
	case errors.Is(err, store.ErrNoSnapshot):
		log.Debug("no snapshot stored, fetching datafeed")
		if err := uc.refresh(ctx); err != nil {
			return err
		}
	default:
		log.Warnw("snapshot load failed, fetching datafeed", "error", err)
		if err := uc.refresh(ctx); err != nil {
			return err
		}
	}

	return uc.ensureFresh(ctx)
}

// Departures returns the pilots whose flight plan departs the airport
func (uc *trafficUseCase) Departures(ctx context.Context, icao string) ([]model.Pilot, error) {
	if err := uc.ensureFresh(ctx); err != nil {
		return nil, err
	}

	departures := make([]model.Pilot, 0)
	for _, pilot := range uc.feed.Pilots {
		if pilot.FlightPlan != nil && pilot.FlightPlan.Departure == icao {
			departures = append(departures, pilot)
		}
	}

	return departures, nil
}

// Arrivals returns the pilots whose flight plan arrives at the airport
func (uc *trafficUseCase) Arrivals(ctx context.Context, icao string) ([]model.Pilot, error) {
	if err := uc.ensureFresh(ctx); err != nil {
		return nil, err
	}

	arrivals := make([]model.Pilot, 0)
	for _, pilot := range uc.feed.Pilots {
		if pilot.FlightPlan != nil && pilot.FlightPlan.Arrival == icao {
			arrivals = append(arrivals, pilot)
		}
	}

	return arrivals, nil
}

// Controllers returns the ATC sessions staffing positions at the airport.
// Positions are matched by callsign prefix (EGLL_TWR, EGLL_N_APP, ...).
func (uc *trafficUseCase) Controllers(ctx context.Context, icao string) ([]model.Controller, error) {
	if err := uc.ensureFresh(ctx); err != nil {
		return nil, err
	}

	controllers := make([]model.Controller, 0)
	for _, controller := range uc.feed.Controllers {
		if strings.HasPrefix(controller.Callsign, icao+"_") {
			controllers = append(controllers, controller)
		}
	}

	return controllers, nil
}

// UpdatedAt returns the refresh instant of the currently loaded feed
func (uc *trafficUseCase) UpdatedAt() (string, error) {
	if uc.feed == nil {
		return "", fmt.Errorf("datafeed not initialized")
	}

	updatedAt, err := uc.feed.General.UpdatedAt()
	if err != nil {
		return "", err
	}

	return updatedAt.Format(time.RFC3339), nil
}

// ensureFresh refreshes the feed when the loaded snapshot is older than the
// feed's own reload interval plus the update delay.
func (uc *trafficUseCase) ensureFresh(ctx context.Context) error {
	if uc.feed == nil {
		return uc.refresh(ctx)
	}

	updatedAt, err := uc.feed.General.UpdatedAt()
	if err != nil {
		log.Warnw("loaded datafeed has no usable update time, refreshing", "error", err)
		return uc.refresh(ctx)
	}

	maxAge := uc.feed.General.ReloadInterval() + uc.updateDelay
	age := time.Now().UTC().Sub(updatedAt)
	if age <= maxAge {
		log.Debugw("datafeed is up to date", "age", age, "maxAge", maxAge)
		return nil
	}

	log.Debugw("datafeed is outdated, refreshing", "age", age, "maxAge", maxAge)
	return uc.refresh(ctx)
}

// refresh replaces the loaded feed from the live API or the bundled sample
// and writes it back to the snapshot store.
func (uc *trafficUseCase) refresh(ctx context.Context) error {
	if uc.localMode {
		return uc.loadSample(ctx)
	}

	feed, err := uc.apiGateway.FetchDatafeed(ctx)
	if err != nil {
		// Fail-safe: stay usable offline by switching the session to the
		// bundled sample data.
		log.Warnw("live fetch failed, switching to local mode", "error", err)
		uc.localMode = true
		return uc.loadSample(ctx)
	}

	uc.feed = feed
	uc.storeSnapshot(ctx)
	return nil
}

// loadSample reads the bundled sample datafeed from disk.
func (uc *trafficUseCase) loadSample(ctx context.Context) error {
	data, err := os.ReadFile(uc.samplePath)
	if err != nil {
		return fmt.Errorf("failed to read sample datafeed %s: %w", uc.samplePath, err)
	}

	var feed model.Datafeed
	if err := json.Unmarshal(data, &feed); err != nil {
		return fmt.Errorf("sample datafeed %s is not valid json: %w", uc.samplePath, err)
	}

	uc.feed = &feed
	uc.storeSnapshot(ctx)
	return nil
}

// storeSnapshot persists the loaded feed. Failures only log: a broken cache
// must not take the dialog down.
func (uc *trafficUseCase) storeSnapshot(ctx context.Context) {
	if err := uc.snapshotStore.Save(ctx, uc.feed); err != nil {
		log.Warnw("failed to store datafeed snapshot", "error", err)
	}
}
