package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/powergrab/game"
	"github.com/katalvlaran/powergrab/geo"
)

var origin = geo.Position{Lat: 55.944, Lng: -3.188}

func station(t *testing.T, id string, pos geo.Position, coins, power float64) *game.Station {
	t.Helper()
	s, err := game.NewStation(id, pos, coins, power)
	require.NoError(t, err)
	return s
}

func drone(t *testing.T, m *game.Map, coins, power float64) *game.Drone {
	t.Helper()
	d, err := game.NewDrone(origin, m, coins, power, game.DefaultRules())
	require.NoError(t, err)
	return d
}

// ------------------------------------------------------------------------
// Stations
// ------------------------------------------------------------------------

func TestStation_ConnectPositive(t *testing.T) {
	s := station(t, "a", origin, 40, 20)
	d := drone(t, game.NewMap(s), 10, 100)

	s.Connect(d)
	assert.Equal(t, 50.0, d.Coins())
	assert.Equal(t, 120.0, d.Power())
	assert.Zero(t, s.Coins)
	assert.Zero(t, s.Power)
}

func TestStation_ConnectNegativeClampsDrone(t *testing.T) {
	s := station(t, "b", origin, -30, -5)
	d := drone(t, game.NewMap(s), 10, 100)

	s.Connect(d)
	assert.Zero(t, d.Coins())
	assert.Equal(t, 95.0, d.Power())
	assert.Equal(t, -20.0, s.Coins, "the station keeps what the drone could not absorb")
	assert.Zero(t, s.Power)
}

func TestStation_ConnectRequiresClose(t *testing.T) {
	far := origin.Next(geo.N, 0.0003)
	s := station(t, "c", far, 40, 20)
	d := drone(t, game.NewMap(s), 0, 100)

	s.Connect(d)
	assert.Zero(t, d.Coins())
	assert.Equal(t, 40.0, s.Coins)
}

func TestNewStation_EmptyID(t *testing.T) {
	_, err := game.NewStation("", origin, 1, 1)
	assert.ErrorIs(t, err, game.ErrEmptyStationID)
}

// ------------------------------------------------------------------------
// Map
// ------------------------------------------------------------------------

func TestMap_NearestAndClose(t *testing.T) {
	m := game.NewMap()
	assert.Nil(t, m.Nearest(origin))
	assert.Nil(t, m.Close(origin, 1))

	a := station(t, "a", origin.Next(geo.N, 0.0001), 1, 0)
	b := station(t, "b", origin.Next(geo.S, 0.0002), 2, 0)
	c := station(t, "c", origin.Next(geo.E, 0.001), -3, 0)
	m = game.NewMap(a, b, c)

	assert.Same(t, a, m.Nearest(origin))
	assert.Same(t, a, m.Close(origin, 0.00025))
	assert.Nil(t, m.Close(origin.Next(geo.E, 0.0005), 0.00025))
	assert.Same(t, c, m.Station("c"))
	assert.Nil(t, m.Station("zz"))

	assert.Equal(t, []*game.Station{a, b}, m.Positive())
	assert.Equal(t, 3.0, m.TotalPositiveCoins())
	assert.False(t, m.OnlyNegative())
}

func TestMap_CloneIsDeep(t *testing.T) {
	a := station(t, "a", origin, 5, 5)
	m := game.NewMap(a)
	cp := m.Clone()
	cp.Stations[0].Coins = 0

	assert.Equal(t, 5.0, a.Coins)
	assert.True(t, cp.OnlyNegative())
}

// ------------------------------------------------------------------------
// Drone
// ------------------------------------------------------------------------

func TestDrone_MoveConsumesPowerAndConnects(t *testing.T) {
	rules := game.DefaultRules()
	target := origin.Next(geo.E, rules.MoveDistance)
	s := station(t, "s", target, 12.5, 3)
	d := drone(t, game.NewMap(s), 0, 250)

	require.True(t, d.Move(geo.E))
	assert.Equal(t, 1, d.Moves())
	assert.InDelta(t, 250-1.25+3, d.Power(), 1e-12)
	assert.Equal(t, 12.5, d.Coins())
	assert.InDelta(t, 0, target.Distance(d.Position()), 1e-15)
	assert.Zero(t, s.Coins)
}

func TestDrone_OutOfPower(t *testing.T) {
	d := drone(t, game.NewMap(), 0, 1.0)
	assert.False(t, d.CanMove())
	assert.False(t, d.Move(geo.N))
	assert.Zero(t, d.Power())
	assert.Equal(t, origin, d.Position())
	assert.Zero(t, d.Moves())
}

func TestDrone_Clamping(t *testing.T) {
	d := drone(t, game.NewMap(), 3, 3)
	d.AddCoins(-10)
	d.AddPower(-10)
	assert.Zero(t, d.Coins())
	assert.Zero(t, d.Power())
}

func TestDrone_CloneIsIndependent(t *testing.T) {
	s := station(t, "s", origin.Next(geo.N, 0.0003), 10, 0)
	d := drone(t, game.NewMap(s), 0, 250)

	cp := d.Clone()
	require.True(t, cp.Move(geo.N))
	assert.Equal(t, 10.0, cp.Coins())
	assert.Zero(t, d.Coins())
	assert.Equal(t, 10.0, s.Coins, "the original map is untouched")
	assert.Equal(t, origin, d.Position())
}

func TestNewDrone_Validation(t *testing.T) {
	_, err := game.NewDrone(origin, nil, 0, 0, game.DefaultRules())
	assert.ErrorIs(t, err, game.ErrNilMap)
	_, err = game.NewDrone(origin, game.NewMap(), -1, 0, game.DefaultRules())
	assert.ErrorIs(t, err, game.ErrNegativeResources)
}

func TestRules_Validate(t *testing.T) {
	require.NoError(t, game.DefaultRules().Validate())

	r := game.DefaultRules()
	r.PowerPerMove = 0
	assert.ErrorIs(t, r.Validate(), game.ErrInvalidRules)

	r = game.DefaultRules()
	r.PlayArea = geo.NewRectangle(1, 1, 2, 2)
	assert.ErrorIs(t, r.Validate(), game.ErrInvalidRules)

	assert.True(t, game.DefaultRules().InPlayArea(origin))
}

func TestScore(t *testing.T) {
	assert.Equal(t, 0.5, game.Score(50, 100))
	assert.Zero(t, game.Score(10, 0))
}
