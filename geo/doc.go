// Package geo models movement on the flight plane.
//
// Positions are (latitude, longitude) pairs in degrees and distances are
// Euclidean in degree space, which is adequate at the scale of a campus.
// A move advances a fixed step along one of sixteen compass directions;
// direction i points i·π/8 radians clockwise from north, so a step of d
// from (lat, lng) lands on (lat + d·cos, lng + d·sin).
//
// Position.Key quantizes coordinates to 1e-7 degrees (about 1 cm) and is
// used wherever positions must be compared for "same place".
package geo
