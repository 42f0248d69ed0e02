package assets

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="1" name="Solids">
  <object id="1" name="floor" x="0" y="0" width="160" height="128">
   <properties>
    <property name="bottom" type="float" value="-1"/>
    <property name="top" type="float" value="0"/>
   </properties>
  </object>
  <object id="2" name="crate" x="32" y="48" width="16" height="32">
   <properties>
    <property name="bottom" type="float" value="0"/>
    <property name="top" type="float" value="1.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" name="start" x="80" y="64">
   <properties>
    <property name="y" type="float" value="0.5"/>
    <property name="yaw" type="float" value="180"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="1">
 <objectgroup id="1" name="Solids"/>
</map>
`

func TestLoadArenaConvertsPixelsToMetres(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testTMX)}}

	a, err := LoadArena(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, "test", a.Name)
	assert.Equal(t, 10.0, a.Width)
	assert.Equal(t, 8.0, a.Depth)

	require.Len(t, a.Boxes, 2)
	crate := a.Boxes[1]
	assert.Equal(t, 2.0, crate.Min.X())
	assert.Equal(t, 3.0, crate.Min.Z())
	assert.Equal(t, 3.0, crate.Max.X())
	assert.Equal(t, 5.0, crate.Max.Z())
	assert.Equal(t, 0.0, crate.Min.Y())
	assert.Equal(t, 1.5, crate.Max.Y())

	require.Len(t, a.Spawns, 1)
	s := a.Spawns[0]
	assert.Equal(t, "start", s.Name)
	assert.Equal(t, 5.0, s.Position.X())
	assert.Equal(t, 0.5, s.Position.Y())
	assert.Equal(t, 4.0, s.Position.Z())
	assert.Equal(t, 180.0, s.Yaw)
}

func TestLoadArenaRequiresSpawn(t *testing.T) {
	fsys := fstest.MapFS{"levels/empty.tmx": {Data: []byte(noSpawnTMX)}}
	_, err := LoadArena(fsys, "levels/empty.tmx")
	assert.ErrorIs(t, err, ErrNoSpawn)
}

func TestLoadArenaMissingFile(t *testing.T) {
	_, err := LoadArena(fstest.MapFS{}, "levels/missing.tmx")
	assert.Error(t, err)
}

func TestLoadArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(testTMX)},
		"levels/a.tmx": {Data: []byte(testTMX)},
	}
	arenas, names, err := LoadArenas(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, arenas, 2)

	_, _, err = LoadArenas(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}

func TestEmbeddedArena(t *testing.T) {
	a := MustLoadArena(DefaultArena)
	assert.Equal(t, DefaultArena, a.Name)
	assert.NotEmpty(t, a.Boxes)
	assert.NotEmpty(t, a.Spawns)

	for _, b := range a.Boxes {
		assert.Less(t, b.Min.Y(), b.Max.Y())
		assert.GreaterOrEqual(t, b.Min.X(), 0.0)
		assert.LessOrEqual(t, b.Max.X(), a.Width)
	}
}
