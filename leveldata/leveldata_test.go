package leveldata

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTiles(t *testing.T) {
	tiles, err := ParseTiles(strings.NewReader(".#.\n..#"), 16)
	require.NoError(t, err)

	assert.Equal(t, []Tile{
		{Index: 0, X: 16, Y: 8, W: 16, H: 16},
		{Index: 1, X: 32, Y: 24, W: 16, H: 16},
	}, tiles)
}

func TestParseTilesStorageOrder(t *testing.T) {
	tiles, err := ParseTiles(strings.NewReader("#.#\n###\n"), 16)
	require.NoError(t, err)
	require.Len(t, tiles, 5)

	for i, tile := range tiles {
		assert.Equal(t, i, tile.Index)
	}
	assert.Equal(t, 32.0, tiles[1].X)
	assert.Equal(t, 8.0, tiles[1].Y)
	assert.Equal(t, 0.0, tiles[2].X)
	assert.Equal(t, 24.0, tiles[2].Y)
}

func TestParseTilesBlankLines(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		tiles, err := ParseTiles(strings.NewReader(""), 16)
		require.NoError(t, err)
		assert.Empty(t, tiles)
	})

	t.Run("empty lines keep their row", func(t *testing.T) {
		tiles, err := ParseTiles(strings.NewReader("\n#\n\n\n"), 16)
		require.NoError(t, err)
		require.Len(t, tiles, 1)
		assert.Equal(t, 24.0, tiles[0].Y)
	})

	t.Run("crlf", func(t *testing.T) {
		tiles, err := ParseTiles(strings.NewReader("..#\r\n#..\r\n"), 16)
		require.NoError(t, err)
		require.Len(t, tiles, 2)
		assert.Equal(t, 32.0, tiles[0].X)
		assert.Equal(t, 0.0, tiles[1].X)
	})
}

func TestParseTilesMalformed(t *testing.T) {
	t.Run("non-ascii", func(t *testing.T) {
		_, err := ParseTiles(strings.NewReader("..\n.é"), 16)
		require.ErrorIs(t, err, ErrNonASCII)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, 2, perr.Line)
		assert.Equal(t, 2, perr.Column)
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := ParseTiles(strings.NewReader("...\n....\n"), 16)
		require.ErrorIs(t, err, ErrRaggedRow)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, 2, perr.Line)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestBounds(t *testing.T) {
	tiles, err := ParseTiles(strings.NewReader(".#.\n..#"), 16)
	require.NoError(t, err)

	w, h := Bounds(tiles)
	assert.Equal(t, 48.0, w)
	assert.Equal(t, 40.0, h)

	w, h = Bounds(nil)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestLoadTiles(t *testing.T) {
	fsys := fstest.MapFS{
		"res/map.txt": {Data: []byte(".#.\n..#\n")},
	}

	tiles, err := LoadTiles(fsys, "res/map.txt", 16)
	require.NoError(t, err)
	assert.Len(t, tiles, 2)

	_, err = LoadTiles(fsys, "res/missing.txt", 16)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "res/missing.txt")
}

func TestLoadTilesParseError(t *testing.T) {
	fsys := fstest.MapFS{"bad.txt": {Data: []byte("..\n...\n")}}

	_, err := LoadTiles(fsys, "bad.txt", 16)
	assert.ErrorIs(t, err, ErrRaggedRow)
}

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="2">
 <tileset firstgid="1" name="blocks" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="blocks.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="ground" width="3" height="2">
  <data encoding="csv">
0,1,0,
0,0,1
</data>
 </layer>
 <objectgroup id="2" name="Enemies">
  <object id="1" x="48" y="184" width="16" height="16">
   <properties>
    <property name="vx" type="float" value="-0.5"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"levels/one.tmx": {Data: []byte(testTMX)}}

	lvl, err := LoadLevel(fsys, "levels/one.tmx", 16, "")
	require.NoError(t, err)

	assert.Equal(t, []Tile{
		{Index: 0, X: 16, Y: 8, W: 16, H: 16},
		{Index: 1, X: 32, Y: 24, W: 16, H: 16},
	}, lvl.Tiles)
	assert.Equal(t, []Spawn{{X: 48, Y: 184, VX: -0.5}}, lvl.Spawns)

	tiles, err := LoadTiles(fsys, "levels/one.tmx", 16)
	require.NoError(t, err)
	assert.Len(t, tiles, 2)
}

func TestLoadTMXErrors(t *testing.T) {
	fsys := fstest.MapFS{"one.tmx": {Data: []byte(testTMX)}}

	_, err := LoadTMX(fsys, "one.tmx", 16, "missing")
	assert.ErrorContains(t, err, `no tile layer "missing"`)

	_, err = LoadTMX(fsys, "one.tmx", 32, "")
	assert.ErrorContains(t, err, "tile size")

	_, err = LoadTMX(fsys, "nope.tmx", 16, "")
	assert.Error(t, err)
}
