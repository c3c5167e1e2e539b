package geomap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/powergrab/game"
	"github.com/katalvlaran/powergrab/geo"
)

// Sentinel errors.
var (
	// ErrMalformedFeature indicates a station feature that cannot be decoded.
	ErrMalformedFeature = errors.New("geomap: malformed station feature")

	// ErrFetch indicates a failed download of a remote map.
	ErrFetch = errors.New("geomap: fetch failed")
)

const (
	// FileName is the name of a daily map file.
	FileName = "powergrabmap.geojson"

	// DefaultURLTemplate is the published location of the daily maps; it is
	// formatted with the year, month and day.
	DefaultURLTemplate = "http://homepages.inf.ed.ac.uk/stg/powergrab/%04d/%02d/%02d/" + FileName
)

// Document is a decoded map file.
type Document struct {
	fc *geojson.FeatureCollection
}

// Parse decodes a GeoJSON FeatureCollection.
func Parse(data []byte) (*Document, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("geomap: decode: %w", err)
	}

	return &Document{fc: fc}, nil
}

// ReadFile decodes the map stored at path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geomap: read %s: %w", path, err)
	}

	return Parse(data)
}

// Len returns the number of features, traces included.
func (d *Document) Len() int { return len(d.fc.Features) }

// Map decodes the station features into a fresh game map. Features with a
// non-point geometry, such as traces added by AddPath, are skipped.
func (d *Document) Map() (*game.Map, error) {
	var (
		m   = game.NewMap()
		f   *geojson.Feature
		i   int
		s   *game.Station
		err error
	)
	for i, f = range d.fc.Features {
		if _, isLine := f.Geometry.(orb.LineString); isLine {
			continue
		}
		if s, err = station(f); err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		m.Stations = append(m.Stations, s)
	}

	return m, nil
}

// station decodes one Point feature.
func station(f *geojson.Feature) (*game.Station, error) {
	pt, ok := f.Geometry.(orb.Point)
	if !ok {
		return nil, fmt.Errorf("%w: geometry %T", ErrMalformedFeature, f.Geometry)
	}
	id, ok := f.Properties["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: missing id", ErrMalformedFeature)
	}
	coins, err := number(f.Properties, "coins")
	if err != nil {
		return nil, err
	}
	power, err := number(f.Properties, "power")
	if err != nil {
		return nil, err
	}

	return game.NewStation(id, geo.Position{Lat: pt.Lat(), Lng: pt.Lon()}, coins, power)
}

// number reads a property that is either a JSON number or a decimal string.
func number(props geojson.Properties, key string) (float64, error) {
	switch v := props[key].(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q", ErrMalformedFeature, key, v)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedFeature, key)
	default:
		return 0, fmt.Errorf("%w: %s has type %T", ErrMalformedFeature, key, v)
	}
}

// AddPath appends the visited positions as a LineString feature with empty
// properties. Fewer than two positions still produce a (degenerate) line.
func (d *Document) AddPath(path []geo.Position) {
	line := make(orb.LineString, 0, len(path))
	for _, p := range path {
		line = append(line, orb.Point{p.Lng, p.Lat})
	}
	d.fc.Append(geojson.NewFeature(line))
}

// MarshalJSON encodes the document as a FeatureCollection.
func (d *Document) MarshalJSON() ([]byte, error) { return d.fc.MarshalJSON() }

// WriteFile encodes the document to path.
func (d *Document) WriteFile(path string) error {
	data, err := d.MarshalJSON()
	if err != nil {
		return fmt.Errorf("geomap: encode: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("geomap: write %s: %w", path, err)
	}

	return nil
}

// LocalPath returns <dir>/YYYY/MM/DD/powergrabmap.geojson for date.
func LocalPath(dir string, date time.Time) string {
	return filepath.Join(dir,
		fmt.Sprintf("%04d", date.Year()),
		fmt.Sprintf("%02d", int(date.Month())),
		fmt.Sprintf("%02d", date.Day()),
		FileName)
}

// URL formats template with the year, month and day of date.
func URL(template string, date time.Time) string {
	return fmt.Sprintf(template, date.Year(), int(date.Month()), date.Day())
}
