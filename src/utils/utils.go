package utils

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"elevsim/src/types"
)

// ForEachStop calls action for every floor in stops, lowest floor first.
func ForEachStop(stops types.Stops, action func(floor, count int)) {
	for _, floor := range slices.Sorted(maps.Keys(stops)) {
		action(floor, stops[floor])
	}
}

// FormatStops renders stops as "floor:count" pairs in floor order, e.g. "[2:1 9:2]".
func FormatStops(stops types.Stops) string {
	var parts []string
	ForEachStop(stops, func(floor, count int) {
		parts = append(parts, fmt.Sprintf("%d:%d", floor, count))
	})
	return "[" + strings.Join(parts, " ") + "]"
}

func FormatStatus(state types.State) string {
	requests := make([]string, len(state.Requests))
	for i, req := range state.Requests {
		requests[i] = req.String()
	}
	return fmt.Sprintf("Floor: %2d | %-11s | Queue: [%s] | Up: %s | Down: %s",
		state.Floor,
		state.Behaviour(),
		strings.Join(requests, " "),
		FormatStops(state.StopsAbove),
		FormatStops(state.StopsBelow))
}

// PrintStatus redraws the status line in place.
func PrintStatus(w io.Writer, state types.State) {
	fmt.Fprintf(w, "\r\033[K%s", FormatStatus(state))
}
