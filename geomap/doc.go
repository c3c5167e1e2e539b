// Package geomap reads PowerGrab maps published as GeoJSON and writes flight
// traces back into them.
//
// Format:
//
//	A map is a FeatureCollection of Point features, one per station. Each
//	feature carries the properties "id", "coins" and "power"; the daily maps
//	encode coins and power as decimal strings, plain JSON numbers are
//	accepted as well. Coordinates are [longitude, latitude]. Any other
//	properties (marker symbols, colours) are preserved on output.
//
// Sources:
//
//	Maps live in a tree <dir>/YYYY/MM/DD/powergrabmap.geojson or behind a
//	URL built from a template with the year, month and day (DefaultURLTemplate).
//	Source.Load prefers the local tree and falls back to the URL, caching a
//	downloaded map in the tree so later runs read it locally.
//
// Traces:
//
//	Document.AddPath appends one LineString feature with empty properties
//	holding the positions the drone visited, in order.
//
// Errors (sentinel):
//
//   - ErrMalformedFeature: a feature without a point geometry, an id or a numeric coins/power.
//   - ErrFetch:            the remote map could not be downloaded.
//
// Decoding and encoding use github.com/paulmach/orb/geojson.
package geomap
