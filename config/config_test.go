package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 254, cfg.Window.Width)
	assert.Equal(t, 224, cfg.Window.Height)
	assert.Equal(t, 16.0, cfg.World.TileSize)
	assert.Equal(t, 3392.0, cfg.World.Width)
	assert.InDelta(t, 9.80665/2/60, cfg.GravityPerTick(), 1e-12)
	assert.Equal(t, 3392.0-254, cfg.MaxScroll())
	assert.Equal(t, 238.0, cfg.MaxX())
	assert.Equal(t, 184.0, cfg.GroundY())
}

func TestDefaultKeyNames(t *testing.T) {
	bindings := Default().Input.Bindings()
	assert.Contains(t, bindings[ActionMoveLeft], "A")
	for action, names := range bindings {
		for _, name := range names {
			// ebiten key names have no "Key" prefix: "A", not "KeyA"
			assert.False(t, strings.HasPrefix(name, "Key"), "%s bound to %q", action, name)
		}
	}
}

func TestDefaultIsFresh(t *testing.T) {
	a := Default()
	a.Player.MaxSpeed = 9
	a.Enemy.Spawns[0].X = -1

	b := Default()
	assert.Equal(t, 1.0, b.Player.MaxSpeed)
	assert.Equal(t, 480.0, b.Enemy.Spawns[0].X)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero tile", func(c *Config) { c.World.TileSize = 0 }, ErrTileSize},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, ErrWindow},
		{"zero tps", func(c *Config) { c.Physics.TicksPerSecond = 0 }, ErrTPS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}

	t.Run("narrow world", func(t *testing.T) {
		cfg := Default()
		cfg.World.Width = 100
		assert.ErrorContains(t, cfg.Validate(), "narrower than the window")
	})

	t.Run("dead zone past edge", func(t *testing.T) {
		cfg := Default()
		cfg.Camera.DeadZoneX = 300
		assert.Error(t, cfg.Validate())
	})
}

func TestParseOverlay(t *testing.T) {
	cfg, err := Parse([]byte(`
player:
  max_speed: 2.5
camera:
  dead_zone_x: 100
enemy:
  spawns:
    - {x: 64, y: 184, vx: 0.5}
`))
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.Player.MaxSpeed)
	assert.Equal(t, 100.0, cfg.Camera.DeadZoneX)
	require.Len(t, cfg.Enemy.Spawns, 1)
	assert.Equal(t, EnemySpawn{X: 64, Y: 184, VX: 0.5}, cfg.Enemy.Spawns[0])

	// untouched keys keep their defaults
	assert.Equal(t, 0.02, cfg.Player.Acceleration)
	assert.Equal(t, 254, cfg.Window.Width)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("world: [not, a, map]"))
	assert.Error(t, err)

	_, err = Parse([]byte("world:\n  tile_size: 0\n"))
	assert.ErrorIs(t, err, ErrTileSize)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  scale: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Window.Scale)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
