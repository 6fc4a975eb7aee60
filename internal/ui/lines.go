package ui

import (
	"fmt"
	"strings"

	"gol-ca/internal/core"
)

// hudLine is one row of HUD text; headers are drawn brighter.
type hudLine struct {
	text   string
	header bool
}

// buildTitle names the panel after the simulation.
func buildTitle(name string) string {
	if name == "" {
		return "Status"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Status"
}

// snapshotLines flattens a parameter snapshot into HUD rows.
func snapshotLines(title string, snap core.ParameterSnapshot) []hudLine {
	lines := []hudLine{{text: title, header: true}}
	for _, g := range snap.Groups {
		header := g.Name
		if g.Summary != "" {
			header = fmt.Sprintf("%s (%s)", g.Name, g.Summary)
		}
		lines = append(lines, hudLine{}, hudLine{text: header, header: true})
		for _, p := range g.Params {
			lines = append(lines, hudLine{text: fmt.Sprintf("%-11s %s", p.Label, p.Value)})
		}
	}
	return lines
}

// keyHelp lists the keyboard and mouse bindings shown under the status rows.
var keyHelp = []string{
	"LMB   paint cell",
	"RMB   run/pause",
	"Space run/pause",
	"N     step once",
	"C     clear",
	"R     reset seed",
	"S     random soup",
	"G     grid lines",
	"Q     quit",
}
