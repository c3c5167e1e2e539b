package simulation

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/powergrab/geo"
)

// Move records one step of a flight and the drone balances after it.
type Move struct {
	Before    geo.Position
	Direction geo.Direction
	After     geo.Position
	Coins     float64
	Power     float64
}

// String formats m as "lat,lng,DIR,lat,lng,coins,power".
func (m Move) String() string {
	var b strings.Builder
	b.WriteString(m.Before.String())
	b.WriteByte(',')
	b.WriteString(m.Direction.String())
	b.WriteByte(',')
	b.WriteString(m.After.String())
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(m.Coins, 'f', -1, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(m.Power, 'f', -1, 64))

	return b.String()
}

// Path returns the flight trace: the first position and every position reached.
func Path(moves []Move) []geo.Position {
	if len(moves) == 0 {
		return nil
	}
	out := make([]geo.Position, 0, len(moves)+1)
	out = append(out, moves[0].Before)
	for _, m := range moves {
		out = append(out, m.After)
	}

	return out
}

// Log joins the moves one per line without a trailing newline.
func Log(moves []Move) string {
	lines := make([]string, len(moves))
	for i, m := range moves {
		lines[i] = m.String()
	}

	return strings.Join(lines, "\n")
}
