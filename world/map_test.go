package world

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestLoadDefaultMap(t *testing.T) {
	m, err := LoadMap(DefaultMap, 1)
	require.NoError(t, err)
	require.Equal(t, int64(10), m.Width)
	require.Equal(t, int64(10), m.Height)

	require.Len(t, m.Tiles, 100)
	require.Equal(t, spawnTile, m.Tiles[4*10+5])

	w := NewWorld()
	m.Build(w)
	require.Equal(t, 2, w.SpawnPoints.Len())
	require.Equal(t, 1, w.Surfaces.Len())

	var spots []Vector
	w.SpawnPoints.ForEach(func(e Entity, _ SpawnPoint) {
		at, _ := w.Transforms.Get(e)
		spots = append(spots, at.Position)
	})
	require.Equal(t, []Vector{{X: 0.5, Y: 0.5, Z: -0.5}, {X: 4.5, Y: 0.5, Z: 3.5}}, spots)
}

func TestLoadMapWalls(t *testing.T) {
	m, err := LoadMap("3\n2\n#S#\n...\n", 2)
	require.NoError(t, err)

	w := NewWorld()
	m.Build(w)

	var walls int
	w.Colliders.ForEach(func(e Entity, c Collider) {
		if w.Surfaces.Has(e) {
			require.Equal(t, Vector{X: 3, Y: 0.25, Z: 2}, c.Half)
			return
		}
		walls++
		require.Equal(t, BodyStatic, c.Body)
		require.Equal(t, Vector{X: 1, Y: 0.5, Z: 1}, c.Half)
	})
	require.Equal(t, 2, walls)
}

func TestLoadMapErrors(t *testing.T) {
	for name, contents := range map[string]string{
		"width":    "x\n1\n.\n",
		"height":   "1\n\n.\n",
		"row size": "2\n1\n...\n",
		"tile":     "2\n1\n.?\n",
		"rows":     "2\n2\n..\n",
		"empty":    "0\n0\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadMap(contents, 1)
			require.Error(t, err)
		})
	}
	_, err := LoadMap(DefaultMap, 0)
	require.Error(t, err)
}

func TestSnapshot(t *testing.T) {
	s, _ := newTestSim(t)
	tank := spawnOn(t, s, 1, 2, SpawnTank{Team: TeamBlue})
	s.FireAt(tank)
	s.spawnPaint(3, 3, TeamBlue)
	s.Tick(frame)

	snap := s.Snapshot()
	require.Equal(t, int64(1), snap.Tick)
	require.Len(t, snap.Tanks, 1)
	require.Equal(t, tank, snap.Tanks[0].ID)
	require.Equal(t, MaxHealth, snap.Tanks[0].Health)
	require.Equal(t, TeamBlue, snap.Tanks[0].Team)
	require.InDelta(t, 1, snap.Tanks[0].Turret.Position.Y, 1e-6)
	require.Len(t, snap.Bullets, 1)
	require.Len(t, snap.Paints, 1)
	require.Len(t, snap.SpawnPoints, 1)
	require.True(t, snap.SpawnPoints[0].Active)

	pb, err := snap.ToProto()
	require.NoError(t, err)
	require.Equal(t, float64(1), pb.Fields["tick"].GetNumberValue())
	tanks := pb.Fields["tanks"].GetListValue().GetValues()
	require.Len(t, tanks, 1)
	require.Equal(t, TeamBlue.Hex(), tanks[0].GetStructValue().Fields["team"].GetStringValue())

	raw, err := protojson.Marshal(pb)
	require.NoError(t, err)
	var back structpb.Struct
	require.NoError(t, protojson.Unmarshal(raw, &back))
	require.Len(t, back.Fields["paints"].GetListValue().GetValues(), 1)
}

func TestColorHex(t *testing.T) {
	require.Equal(t, "#ff0000ff", Color{R: 1, A: 1}.Hex())
	require.Equal(t, "#00000000", Color{}.Hex())
	require.True(t, Color{}.IsZero())
}
