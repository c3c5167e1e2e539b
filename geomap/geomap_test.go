package geomap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/powergrab/geo"
	"github.com/katalvlaran/powergrab/geomap"
)

const fixture = `{
  "type": "FeatureCollection",
  "date-generated": "Tue Jan 01 2019",
  "features": [
    {
      "type": "Feature",
      "properties": {"id": "a1", "coins": "22.42", "power": "-10.5", "marker-symbol": "lighthouse"},
      "geometry": {"type": "Point", "coordinates": [-3.1885, 55.9445]}
    },
    {
      "type": "Feature",
      "properties": {"id": "b2", "coins": -3, "power": 40},
      "geometry": {"type": "Point", "coordinates": [-3.1870, 55.9433]}
    }
  ]
}`

var day = time.Date(2019, time.January, 2, 0, 0, 0, 0, time.UTC)

// ------------------------------------------------------------------------
// Decoding
// ------------------------------------------------------------------------

func TestParse_Stations(t *testing.T) {
	doc, err := geomap.Parse([]byte(fixture))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Len())

	m, err := doc.Map()
	require.NoError(t, err)
	require.Len(t, m.Stations, 2)

	a := m.Station("a1")
	require.NotNil(t, a)
	assert.Equal(t, geo.Position{Lat: 55.9445, Lng: -3.1885}, a.Position)
	assert.InDelta(t, 22.42, a.Coins, 1e-12)
	assert.InDelta(t, -10.5, a.Power, 1e-12)

	b := m.Station("b2")
	require.NotNil(t, b)
	assert.Equal(t, -3.0, b.Coins)
	assert.Equal(t, 40.0, b.Power)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := geomap.Parse([]byte(`{"type":`))
	assert.Error(t, err)
}

func TestMap_MalformedFeatures(t *testing.T) {
	cases := map[string]string{
		"missing id": `{"type":"Feature","properties":{"coins":"1","power":"1"},
			"geometry":{"type":"Point","coordinates":[0,0]}}`,
		"bad coins": `{"type":"Feature","properties":{"id":"x","coins":"lots","power":"1"},
			"geometry":{"type":"Point","coordinates":[0,0]}}`,
		"missing power": `{"type":"Feature","properties":{"id":"x","coins":"1"},
			"geometry":{"type":"Point","coordinates":[0,0]}}`,
		"boolean power": `{"type":"Feature","properties":{"id":"x","coins":"1","power":true},
			"geometry":{"type":"Point","coordinates":[0,0]}}`,
		"polygon": `{"type":"Feature","properties":{"id":"x","coins":"1","power":"1"},
			"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}}`,
	}
	for name, feature := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := geomap.Parse([]byte(`{"type":"FeatureCollection","features":[` + feature + `]}`))
			require.NoError(t, err)
			_, err = doc.Map()
			assert.ErrorIs(t, err, geomap.ErrMalformedFeature)
		})
	}
}

// ------------------------------------------------------------------------
// Encoding
// ------------------------------------------------------------------------

func TestAddPath_AppendsLineString(t *testing.T) {
	doc, err := geomap.Parse([]byte(fixture))
	require.NoError(t, err)

	doc.AddPath([]geo.Position{{Lat: 55.944, Lng: -3.188}, {Lat: 55.9443, Lng: -3.188}})
	assert.Equal(t, 3, doc.Len())

	m, err := doc.Map()
	require.NoError(t, err)
	assert.Len(t, m.Stations, 2, "traces are not stations")

	data, err := doc.MarshalJSON()
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)

	line, ok := fc.Features[2].Geometry.(orb.LineString)
	require.True(t, ok, "trace is a LineString, got %T", fc.Features[2].Geometry)
	assert.Equal(t, orb.LineString{{-3.188, 55.944}, {-3.188, 55.9443}}, line)
	assert.Empty(t, fc.Features[2].Properties)

	_, ok = fc.Features[0].Geometry.(orb.Point)
	assert.True(t, ok)
	assert.Equal(t, "lighthouse", fc.Features[0].Properties["marker-symbol"])
}

// ------------------------------------------------------------------------
// Sources
// ------------------------------------------------------------------------

func TestLocalPathAndURL(t *testing.T) {
	assert.Equal(t, filepath.Join("maps", "2019", "01", "02", geomap.FileName), geomap.LocalPath("maps", day))
	assert.Equal(t,
		"http://homepages.inf.ed.ac.uk/stg/powergrab/2019/01/02/powergrabmap.geojson",
		geomap.URL(geomap.DefaultURLTemplate, day))
}

func TestSource_LoadPrefersLocalTree(t *testing.T) {
	dir := t.TempDir()
	doc, err := geomap.Parse([]byte(fixture))
	require.NoError(t, err)
	src := geomap.Source{Dir: dir, Template: "http://127.0.0.1:1/%04d/%02d/%02d"}
	require.NoError(t, src.Save(doc, day))

	got, err := src.Load(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
}

func TestSource_LoadFallsBackToRemote(t *testing.T) {
	var requested string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		_, _ = w.Write([]byte(fixture))
	}))
	defer server.Close()

	src := geomap.Source{
		Dir:      t.TempDir(),
		Template: server.URL + "/%04d/%02d/%02d/" + geomap.FileName,
		Client:   server.Client(),
	}
	doc, err := src.Load(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, "/2019/01/02/"+geomap.FileName, requested)
	assert.Equal(t, 2, doc.Len())
}

func TestSource_LoadCachesRemoteMap(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(fixture))
	}))

	dir := t.TempDir()
	src := geomap.Source{
		Dir:      dir,
		Template: server.URL + "/%04d/%02d/%02d/" + geomap.FileName,
		Client:   server.Client(),
	}
	_, err := src.Load(context.Background(), day)
	require.NoError(t, err)
	assert.FileExists(t, geomap.LocalPath(dir, day))
	server.Close()

	doc, err := src.Load(context.Background(), day)
	require.NoError(t, err, "second load reads the cached copy")
	assert.Equal(t, 1, hits)

	m, err := doc.Map()
	require.NoError(t, err)
	a := m.Station("a1")
	require.NotNil(t, a)
	assert.InDelta(t, 22.42, a.Coins, 1e-12)

	cached, err := os.ReadFile(geomap.LocalPath(dir, day))
	require.NoError(t, err)
	assert.Contains(t, string(cached), "lighthouse", "extra properties survive the cache")
}

func TestSource_FetchStatus(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := geomap.Source{Client: server.Client()}.Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, geomap.ErrFetch)
}

func TestSource_FetchCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fixture))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := geomap.Source{}.Fetch(ctx, server.URL)
	assert.ErrorIs(t, err, geomap.ErrFetch)
}

func TestSource_LocalDecodeErrorIsReported(t *testing.T) {
	dir := t.TempDir()
	path := geomap.LocalPath(dir, day)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := geomap.Source{Dir: dir}.Load(context.Background(), day)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, geomap.ErrFetch)
}
