package console

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"vatsim-traffic/internal/domain/model"
	"vatsim-traffic/pkg/msg"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	msg.Init("testdata/messages.yml")
	os.Exit(m.Run())
}

type fakeUseCase struct {
	feed      *model.Datafeed
	updatedAt string
	err       error
}

func (f *fakeUseCase) Init(_ context.Context) error { return f.err }

func (f *fakeUseCase) Departures(_ context.Context, icao string) ([]model.Pilot, error) {
	if f.err != nil {
		return nil, f.err
	}
	var pilots []model.Pilot
	for _, p := range f.feed.Pilots {
		if p.FlightPlan != nil && p.FlightPlan.Departure == icao {
			pilots = append(pilots, p)
		}
	}
	return pilots, nil
}

func (f *fakeUseCase) Arrivals(_ context.Context, icao string) ([]model.Pilot, error) {
	if f.err != nil {
		return nil, f.err
	}
	var pilots []model.Pilot
	for _, p := range f.feed.Pilots {
		if p.FlightPlan != nil && p.FlightPlan.Arrival == icao {
			pilots = append(pilots, p)
		}
	}
	return pilots, nil
}

func (f *fakeUseCase) Controllers(_ context.Context, icao string) ([]model.Controller, error) {
	if f.err != nil {
		return nil, f.err
	}
	var controllers []model.Controller
	for _, c := range f.feed.Controllers {
		if strings.HasPrefix(c.Callsign, icao+"_") {
			controllers = append(controllers, c)
		}
	}
	return controllers, nil
}

func (f *fakeUseCase) UpdatedAt() (string, error) {
	if f.updatedAt == "" {
		return "", errors.New("datafeed not initialized")
	}
	return f.updatedAt, nil
}

func testFeed() *model.Datafeed {
	return &model.Datafeed{
		Pilots: []model.Pilot{
			{Callsign: "BAW123", FlightPlan: &model.FlightPlan{Departure: "EGLL", Arrival: "EHAM"}},
			{Callsign: "DLH9TK", FlightPlan: &model.FlightPlan{Departure: "EDDF", Arrival: "EGLL"}},
		},
		Controllers: []model.Controller{
			{Callsign: "EGLL_TWR", Frequency: "118.505"},
		},
	}
}

func TestRun_RendersTrafficTables(t *testing.T) {
	var out bytes.Buffer
	dialog := NewDialog(&fakeUseCase{feed: testFeed()}, strings.NewReader("egll\n"), &out)

	if !assert.NoError(t, dialog.Run(context.Background())) {
		return
	}

	output := out.String()
	assert.Contains(t, output, "Enter airport icao (e.g. EGLL) ")
	assert.Contains(t, output, "Loading traffic at EGLL...")
	assert.Contains(t, output, "EGLL DEPARTURES")
	assert.Contains(t, output, "| BAW123 | EHAM   |")
	assert.Contains(t, output, "EGLL ARRIVALS")
	assert.Contains(t, output, "| DLH9TK | EDDF   |")
	assert.Contains(t, output, "EGLL CONTROLLERS")
	assert.Contains(t, output, "| EGLL_TWR  | 118.505   |")
	assert.Contains(t, output, "2 flights (1 departures and 1 arrivals)")
}

func TestRun_RejectsInvalidCodeAndReprompts(t *testing.T) {
	var out bytes.Buffer
	dialog := NewDialog(&fakeUseCase{feed: testFeed()}, strings.NewReader("heathrow\nEGLL\n"), &out)

	if !assert.NoError(t, dialog.Run(context.Background())) {
		return
	}

	output := out.String()
	assert.Contains(t, output, "Icao must be alphanumeric and 4 characters long.")
	assert.Contains(t, output, "EGLL DEPARTURES")
	assert.Equal(t, 3, strings.Count(output, "Enter airport icao"))
}

func TestRun_SkipsControllerTableWhenUnstaffed(t *testing.T) {
	feed := testFeed()
	feed.Controllers = nil

	var out bytes.Buffer
	dialog := NewDialog(&fakeUseCase{feed: feed}, strings.NewReader("EGLL\n"), &out)

	if !assert.NoError(t, dialog.Run(context.Background())) {
		return
	}

	assert.NotContains(t, out.String(), "EGLL CONTROLLERS")
}

func TestRun_SurfacesQueryErrorsAndKeepsGoing(t *testing.T) {
	var out bytes.Buffer
	dialog := NewDialog(&fakeUseCase{err: errors.New("sample data missing")}, strings.NewReader("EGLL\nEGLL\n"), &out)

	if !assert.NoError(t, dialog.Run(context.Background())) {
		return
	}

	output := out.String()
	assert.Contains(t, output, "Could not load traffic: sample data missing")
	assert.Equal(t, 3, strings.Count(output, "Enter airport icao"))
}

func TestRun_ShowsFeedTimestamp(t *testing.T) {
	var out bytes.Buffer
	dialog := NewDialog(&fakeUseCase{feed: testFeed(), updatedAt: "2024-01-12T18:48:53Z"}, strings.NewReader(""), &out)

	if !assert.NoError(t, dialog.Run(context.Background())) {
		return
	}

	assert.Contains(t, out.String(), "Vatsim data last updated 2024-01-12T18:48:53Z.")
}

func TestRun_SkipsFeedTimestampWhenUnavailable(t *testing.T) {
	var out bytes.Buffer
	dialog := NewDialog(&fakeUseCase{feed: testFeed()}, strings.NewReader(""), &out)

	if !assert.NoError(t, dialog.Run(context.Background())) {
		return
	}

	assert.NotContains(t, out.String(), "Vatsim data last updated")
}

func TestRun_EndsCleanlyOnEOF(t *testing.T) {
	var out bytes.Buffer
	dialog := NewDialog(&fakeUseCase{feed: testFeed()}, strings.NewReader(""), &out)

	assert.NoError(t, dialog.Run(context.Background()))
}
