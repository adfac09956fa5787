package ui

import (
	"fmt"
	"strings"
	"time"

	"tileroam/internal/core"
)

// KeyHelp lists the key bindings shown under the parameters.
var KeyHelp = []string{
	"N/M step  Space auto",
	"1-4 spawn O/T/G/M",
	"  Shift slow  Ctrl fast",
	"K kill all",
	"R reset  S new seed",
	"C E D G terrain passes",
	"+/- speed  Q quit",
}

// Lines lays out the panel text: a title, each parameter group, the stepping
// mode and the key help. Group headers are bracketed.
func Lines(name string, snap core.ParameterSnapshot, auto bool, delay time.Duration) []string {
	title := "Controls"
	if name != "" {
		title = strings.ToUpper(name[:1]) + name[1:]
	}
	lines := []string{title}
	for _, g := range snap.Groups {
		lines = append(lines, "["+g.Name+"]")
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	mode := "manual"
	if auto {
		mode = "auto " + delay.String()
	}
	lines = append(lines, "[Stepping]", mode, "[Keys]")
	return append(lines, KeyHelp...)
}
