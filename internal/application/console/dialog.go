// Package console implements the interactive traffic-table dialog.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"vatsim-traffic/internal/domain/usecase/traffic"
	"vatsim-traffic/pkg/msg"
	"vatsim-traffic/pkg/style"
	"vatsim-traffic/pkg/table"
)

// Dialog prompts for airport codes and prints the matching traffic tables.
type Dialog struct {
	useCase traffic.UseCase
	in      *bufio.Scanner
	out     io.Writer
}

// NewDialog creates a dialog reading airport codes from in and writing
// tables to out.
func NewDialog(useCase traffic.UseCase, in io.Reader, out io.Writer) *Dialog {
	return &Dialog{
		useCase: useCase,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run shows the feed timestamp and loops the prompt until the input stream
// ends.
func (d *Dialog) Run(ctx context.Context) error {
	if updatedAt, err := d.useCase.UpdatedAt(); err == nil {
		fmt.Fprintln(d.out, style.Blue(msg.GetMessage("dialog.updated", updatedAt)))
	}

	for {
		fmt.Fprint(d.out, msg.GetMessage("dialog.prompt"))

		if !d.in.Scan() {
			fmt.Fprintln(d.out)
			return d.in.Err()
		}

		icao, err := traffic.NormalizeICAO(strings.TrimSpace(d.in.Text()))
		if err != nil {
			fmt.Fprintln(d.out, style.Yellow(msg.GetMessage("dialog.invalid-icao")))
			continue
		}

		if err := d.showTraffic(ctx, icao); err != nil {
			fmt.Fprintln(d.out, style.Yellow(msg.GetMessage("dialog.error", err)))
		}
	}
}

// showTraffic renders the departure, arrival and controller tables for one
// airport, followed by the totals line.
func (d *Dialog) showTraffic(ctx context.Context, icao string) error {
	fmt.Fprintln(d.out, style.Blue(msg.GetMessage("dialog.loading", icao)))

	departures, err := d.useCase.Departures(ctx, icao)
	if err != nil {
		return err
	}
	arrivals, err := d.useCase.Arrivals(ctx, icao)
	if err != nil {
		return err
	}
	controllers, err := d.useCase.Controllers(ctx, icao)
	if err != nil {
		return err
	}

	departureTable := table.New(msg.GetMessage("table.departures-title", icao), "Flight", "To")
	for _, pilot := range departures {
		departureTable.AddRow(pilot.Callsign, pilot.FlightPlan.Arrival)
	}

	arrivalTable := table.New(msg.GetMessage("table.arrivals-title", icao), "Flight", "From")
	for _, pilot := range arrivals {
		arrivalTable.AddRow(pilot.Callsign, pilot.FlightPlan.Departure)
	}

	fmt.Fprint(d.out, departureTable.Render())
	fmt.Fprint(d.out, arrivalTable.Render())

	// The controller table only shows when the airport is staffed.
	if len(controllers) > 0 {
		controllerTable := table.New(msg.GetMessage("table.controllers-title", icao), "Position", "Frequency")
		for _, controller := range controllers {
			controllerTable.AddRow(controller.Callsign, controller.Frequency)
		}
		fmt.Fprint(d.out, controllerTable.Render())
	}

	total := len(departures) + len(arrivals)
	fmt.Fprintln(d.out, msg.GetMessage("dialog.summary", total, len(departures), len(arrivals)))
	fmt.Fprintln(d.out)

	return nil
}
