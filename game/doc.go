// Package game implements the PowerGrab rules: stations holding coins and
// power, a map of stations, and a drone that moves a fixed step per turn.
//
// Resource transfer:
//
//	When a drone ends a move strictly within Rules.CloseDistance of its
//	nearest station, it connects to that station and takes all of the
//	station's coins and power. Negative stations drain the drone; the drone
//	never goes below zero and the station keeps whatever the drone could not
//	absorb, so a station never ends with a positive balance.
//
// Movement:
//
//	A move costs Rules.PowerPerMove. A drone with less power than that does
//	not move and its power drops to zero.
//
// Errors (sentinel):
//
//   - ErrEmptyStationID:    station without an identifier.
//   - ErrNegativeResources: drone created with negative coins or power.
//   - ErrNilMap:            drone created without a map.
//   - ErrInvalidRules:      non-positive distances or power cost, empty play area.
//
// Thread safety:
//
//	Maps, stations and drones are mutable and not safe for concurrent use.
//	Map.Clone and Drone.Clone produce independent copies for look-ahead.
package game
