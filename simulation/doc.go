// Package simulation flies a drone under the control of a pilot.
//
// A run asks the pilot for a direction, moves the drone and records a Move,
// for at most MaxMoves moves and only while the drone can afford another
// move. The context is checked between moves; a cancelled run returns the
// moves made so far together with the context error.
//
// Moves are logged at debug level and the outcome at info level through a
// github.com/charmbracelet/log Logger.
package simulation
