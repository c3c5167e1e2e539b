// Package pilot decides where a drone flies next.
//
// Overview:
//
//	A Pilot looks at a drone (its position, resources and the map it flies
//	over) and returns one of the 16 compass directions. Pilots never move the
//	drone themselves; the simulation does that and asks again.
//
// Pilots:
//
//   - Stateless: looks one move ahead. Among the moves that stay inside the
//     play area it takes the one landing next to the richest station, with
//     ties broken by a seeded random shuffle.
//   - Attraction: scores every legal move by inverse-distance attraction to
//     positive stations and repulsion from negative ones, and avoids the last
//     ten positions it visited.
//   - Stateful: orders the positive stations with the tsp solver, anchored at
//     the drone, then best-first searches for a move sequence that collects
//     them in that order while losing as few coins as possible. The sequence
//     is replayed move by move; when the drone is not where the sequence
//     expects it, the pilot replans. Without a usable plan it flies away from
//     negative stations.
//
// Errors (sentinel):
//
//   - ErrUnknownPilot: New called with a name other than stateless, stateful or attraction.
//
// Thread safety:
//
//	Pilots keep per-flight state and are not safe for concurrent use.
package pilot
