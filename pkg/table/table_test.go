package table

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestRender_AlignsAllColumnsToWidestCell(t *testing.T) {
	tbl := New("EGLL DEPARTURES", "Flight", "To")
	tbl.AddRow("BAW123", "EHAM")
	tbl.AddRow("VIR5E", "KJFK")

	lines := strings.Split(strings.Trim(tbl.Render(), "\n"), "\n")

	if !assert.Len(t, lines, 7) {
		return
	}
	assert.Equal(t, "EGLL DEPARTURES", lines[0])
	assert.Equal(t, "| Flight | To     |", lines[2])
	assert.Equal(t, "| BAW123 | EHAM   |", lines[4])
	assert.Equal(t, "| VIR5E  | KJFK   |", lines[5])

	rule := strings.Repeat("-", len(lines[2]))
	assert.Equal(t, rule, lines[1])
	assert.Equal(t, rule, lines[3])
	assert.Equal(t, rule, lines[6])
}

func TestRender_RuleMatchesHeadWidth(t *testing.T) {
	tbl := New("EGLL ARRIVALS", "Flight", "From")
	tbl.AddRow("VERYLONGCALLSIGN", "EGLL")

	lines := strings.Split(strings.Trim(tbl.Render(), "\n"), "\n")

	head := lines[2]
	assert.Contains(t, head, "| Flight")
	assert.Equal(t, strings.Repeat("-", len(head)), lines[1])
	assert.Equal(t, len(head), len(lines[4]))
}

func TestRender_EmptyTableStillShowsHead(t *testing.T) {
	tbl := New("KJFK DEPARTURES", "Flight", "To")

	lines := strings.Split(strings.Trim(tbl.Render(), "\n"), "\n")

	if !assert.Len(t, lines, 5) {
		return
	}
	assert.Equal(t, "KJFK DEPARTURES", lines[0])
	assert.Equal(t, "| Flight | To     |", lines[2])
	assert.Zero(t, tbl.Len())
}

func TestAddRow_PadsShortRows(t *testing.T) {
	tbl := New("EGLL DEPARTURES", "Flight", "To")
	tbl.AddRow("BAW123")

	lines := strings.Split(strings.Trim(tbl.Render(), "\n"), "\n")
	assert.Equal(t, "| BAW123 |        |", lines[4])
	assert.Equal(t, 1, tbl.Len())
}
